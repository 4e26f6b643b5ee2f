package observability

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const (
	observerContextKey contextKey = iota
	spanContextKey
)

// ObserverFromContext extracts an Observer from the context.
// Returns nil if none is present.
func ObserverFromContext(ctx context.Context) Observer {
	if ctx == nil {
		return nil
	}
	obs, _ := ctx.Value(observerContextKey).(Observer)
	return obs
}

// ContextWithObserver returns a new context carrying the given observer.
func ContextWithObserver(ctx context.Context, obs Observer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, observerContextKey, obs)
}

// SpanFromContext extracts a Span from the context.
// Returns nil if no span is present.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanContextKey).(Span)
	return span
}

// ContextWithSpan returns a new context with the given span attached.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanContextKey, span)
}
