package ai

import "context"

// Completer is the single capability a model session must expose to the
// loop: turn the accumulated prompt into the next response. A returned error
// is fatal to the run that issued the request; retry policy, if any, belongs
// to the implementation behind this interface.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to [Completer].
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
