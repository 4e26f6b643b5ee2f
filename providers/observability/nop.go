package observability

import "context"

// Nop returns an Observer that discards everything. The engine falls back to
// it when no observer is configured, so call sites never nil-check.
func Nop() Observer {
	return nopObserver{}
}

type nopObserver struct{}

var _ Observer = nopObserver{}

func (nopObserver) Debug(context.Context, string, ...Attribute) {}
func (nopObserver) Info(context.Context, string, ...Attribute)  {}
func (nopObserver) Warn(context.Context, string, ...Attribute)  {}
func (nopObserver) Error(context.Context, string, ...Attribute) {}

func (nopObserver) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                          {}
func (nopSpan) SetAttributes(...Attribute)    {}
func (nopSpan) RecordError(error)             {}
func (nopSpan) AddEvent(string, ...Attribute) {}
