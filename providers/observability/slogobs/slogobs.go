// Package slogobs adapts the standard library's log/slog to the
// [observability.Observer] contract. Span events and errors are emitted as
// debug- and error-level log records carrying the span name.
package slogobs

import (
	"context"
	"log/slog"

	"github.com/leofalp/reactor/providers/observability"
)

// New returns an Observer backed by the given slog logger. A nil logger
// falls back to [slog.Default].
func New(logger *slog.Logger) observability.Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogObserver{logger: logger}
}

type slogObserver struct {
	logger *slog.Logger
}

var _ observability.Observer = (*slogObserver)(nil)

func (o *slogObserver) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelDebug, msg, toSlogAttrs(attrs)...)
}

func (o *slogObserver) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelInfo, msg, toSlogAttrs(attrs)...)
}

func (o *slogObserver) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelWarn, msg, toSlogAttrs(attrs)...)
}

func (o *slogObserver) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelError, msg, toSlogAttrs(attrs)...)
}

func (o *slogObserver) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{observer: o, name: name}
	o.logger.LogAttrs(ctx, slog.LevelDebug, "span start", append([]slog.Attr{slog.String("span", name)}, toSlogAttrs(attrs)...)...)
	return observability.ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	observer *slogObserver
	name     string
}

func (s *slogSpan) End() {
	s.observer.logger.LogAttrs(context.Background(), slog.LevelDebug, "span end", slog.String("span", s.name))
}

func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.observer.logger.LogAttrs(context.Background(), slog.LevelDebug, "span attributes",
		append([]slog.Attr{slog.String("span", s.name)}, toSlogAttrs(attrs)...)...)
}

func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.observer.logger.LogAttrs(context.Background(), slog.LevelError, "span error",
		slog.String("span", s.name), slog.String("error", err.Error()))
}

func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	s.observer.logger.LogAttrs(context.Background(), slog.LevelDebug, name,
		append([]slog.Attr{slog.String("span", s.name)}, toSlogAttrs(attrs)...)...)
}

func toSlogAttrs(attrs []observability.Attribute) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, slog.Any(a.Key, a.Value))
	}
	return out
}
