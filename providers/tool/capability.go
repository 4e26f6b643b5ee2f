package tool

import "context"

// Info is the metadata a capability advertises: its unique name and a
// human-readable description the host may surface in prompts.
type Info struct {
	Name        string
	Description string
}

// Capability is an invocable external operation registered under a unique
// name. Invoke receives the flat named-argument mapping parsed from the
// model's action and returns observation text. A returned error is caught at
// the [Executor] boundary and converted into an observation; it never aborts
// a run.
type Capability interface {
	// Info returns the capability's advertised metadata.
	Info() Info

	// Invoke runs the capability with the given named arguments.
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// funcOptions holds optional configuration shared by [NewFunc] and [New].
type funcOptions struct {
	Description string
}

// Option configures a capability constructor.
type Option func(*funcOptions)

// WithDescription sets a human-readable description for the capability.
func WithDescription(description string) Option {
	return func(o *funcOptions) {
		o.Description = description
	}
}

// Func is a Capability backed by a plain function over the argument map.
type Func struct {
	info Info
	fn   func(ctx context.Context, args map[string]any) (string, error)
}

// NewFunc wraps fn as a capability named name.
func NewFunc(name string, fn func(ctx context.Context, args map[string]any) (string, error), options ...Option) *Func {
	opts := &funcOptions{}
	for _, option := range options {
		option(opts)
	}
	return &Func{
		info: Info{Name: name, Description: opts.Description},
		fn:   fn,
	}
}

var _ Capability = (*Func)(nil)

// Info returns the capability's metadata.
func (f *Func) Info() Info {
	return f.info
}

// Invoke calls the wrapped function.
func (f *Func) Invoke(ctx context.Context, args map[string]any) (string, error) {
	return f.fn(ctx, args)
}
