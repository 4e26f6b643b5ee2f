package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leofalp/reactor/core/parse"
)

// Tool binds a name to a strongly-typed Go function. The model's argument
// map is re-encoded as JSON and decoded into the input type I with a repair
// pass, so minor shape mismatches from the model do not fail the call.
// Outputs of type string are returned verbatim; any other O is JSON-encoded.
type Tool[I, O any] struct {
	info Info
	fn   func(ctx context.Context, input I) (O, error)
}

// New constructs a typed capability with the given name and handler.
//
// Example:
//
//	files := tool.New("list_files", listfiles.List,
//	    tool.WithDescription("Lists the files in a directory."),
//	)
func New[I, O any](name string, fn func(ctx context.Context, input I) (O, error), options ...Option) *Tool[I, O] {
	opts := &funcOptions{}
	for _, option := range options {
		option(opts)
	}
	return &Tool[I, O]{
		info: Info{Name: name, Description: opts.Description},
		fn:   fn,
	}
}

// Info returns the capability's metadata.
func (t *Tool[I, O]) Info() Info {
	return t.info
}

// Invoke decodes args into I, runs the handler, and encodes the result.
func (t *Tool[I, O]) Invoke(ctx context.Context, args map[string]any) (string, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to encode arguments: %w", err)
	}

	input, err := parse.As[I](string(encoded))
	if err != nil {
		return "", fmt.Errorf("failed to decode arguments as %T: %w", input, err)
	}

	output, err := t.fn(ctx, input)
	if err != nil {
		return "", err
	}

	// String outputs go to the model as-is; quoting them as JSON would leak
	// escaping into the observation text.
	if s, ok := any(output).(string); ok {
		return s, nil
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("failed to encode output: %w", err)
	}
	return string(outputBytes), nil
}
