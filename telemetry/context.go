package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey byte

const telemeterContextKey ctxKey = iota

// ContextWithTelemeter returns a copy of ctx carrying tlm.
func ContextWithTelemeter(ctx context.Context, tlm *Telemeter) context.Context {
	return context.WithValue(ctx, telemeterContextKey, tlm)
}

// TelemeterFromContext returns the telemeter stored in ctx, or a telemeter that collects nothing.
func TelemeterFromContext(ctx context.Context) *Telemeter {
	if tlm, ok := ctx.Value(telemeterContextKey).(*Telemeter); ok && tlm != nil {
		return tlm
	}

	return new(Telemeter)
}

// TraceParentFromContext renders the span in ctx as a W3C traceparent value.
func TraceParentFromContext(ctx context.Context) string {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return ""
	}

	flags := "00"
	if spanContext.TraceFlags().IsSampled() {
		flags = "01"
	}

	return "00-" + spanContext.TraceID().String() + "-" + spanContext.SpanID().String() + "-" + flags
}
