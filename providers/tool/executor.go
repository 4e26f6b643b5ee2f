package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/reactor/providers/observability"
)

// Executor resolves capability names against a registry and invokes them.
// Every failure mode — unknown name, invocation error, even a panic inside a
// capability — is converted into observation text the model can react to.
// Nothing escapes this boundary, so a broken tool degrades the conversation
// instead of aborting the run.
type Executor struct {
	registry *Registry
	observer observability.Observer
}

// ExecutorOption configures an [Executor].
type ExecutorOption func(*Executor)

// WithObserver attaches an observer used to log resolution and invocation
// failures.
func WithObserver(obs observability.Observer) ExecutorOption {
	return func(e *Executor) {
		if obs != nil {
			e.observer = obs
		}
	}
}

// NewExecutor creates an executor over the given registry. A nil registry is
// treated as empty.
func NewExecutor(registry *Registry, options ...ExecutorOption) *Executor {
	e := &Executor{
		registry: registry,
		observer: observability.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Execute resolves name and invokes the capability with args, returning the
// observation text. It never returns an error and never panics.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) (result string) {
	defer func() {
		if r := recover(); r != nil {
			e.observer.Error(ctx, "capability panicked",
				observability.String("tool", name),
				observability.String("panic", fmt.Sprint(r)),
			)
			result = fmt.Sprintf("Error: tool %q panicked: %v", name, r)
		}
	}()

	if e.registry == nil {
		return fmt.Sprintf("Error: tool %q not found: no tools are registered", name)
	}

	capability, ok := e.registry.Get(name)
	if !ok {
		e.observer.Warn(ctx, "tool not found",
			observability.String("tool", name),
			observability.Int("registered", e.registry.Size()),
		)
		names := e.registry.Names()
		if len(names) == 0 {
			return fmt.Sprintf("Error: tool %q not found: no tools are registered", name)
		}
		return fmt.Sprintf("Error: tool %q not found. Available tools: %s", name, strings.Join(names, ", "))
	}

	output, err := capability.Invoke(ctx, args)
	if err != nil {
		e.observer.Warn(ctx, "tool invocation failed",
			observability.String("tool", name),
			observability.Error(err),
		)
		return fmt.Sprintf("Error: tool %q failed: %v", name, err)
	}
	return output
}
