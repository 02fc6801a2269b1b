package telemetry

import (
	"context"
	"io"
	"strings"

	"github.com/langproc/langproc/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	noneTraceExporterType     traceExporterType = "none"
	consoleTraceExporterType  traceExporterType = "console"
	otlpHTTPTraceExporterType traceExporterType = "otlpHttp"
	otlpGrpcTraceExporterType traceExporterType = "otlpGrpc"
	httpTraceExporterType     traceExporterType = "http"

	traceParentParts = 4
)

type traceExporterType string

// Tracer opens spans on the configured trace provider.
type Tracer struct {
	trace.Tracer
	provider     *sdktrace.TracerProvider
	spanExporter sdktrace.SpanExporter
	parent       *trace.SpanContext
}

// NewTracer creates and configures the traces collection. It returns nil when no exporter is configured.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	spanExporter, err := NewTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if spanExporter == nil {
		return nil, nil
	}

	var parent *trace.SpanContext

	if opts.TraceParent != "" {
		spanContext, err := ParseTraceParent(opts.TraceParent)
		if err != nil {
			return nil, err
		}

		parent = &spanContext
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, errors.New(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)

	return &Tracer{
		Tracer:       provider.Tracer(appName),
		provider:     provider,
		spanExporter: spanExporter,
		parent:       parent,
	}, nil
}

// NewTraceExporter creates the span exporter named by opts.TraceExporter.
func NewTraceExporter(ctx context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	exporterType := traceExporterType(opts.TraceExporter)
	if exporterType == "" {
		exporterType = noneTraceExporterType
	}

	switch exporterType {
	case httpTraceExporterType:
		if opts.TraceExporterHTTPEndpoint == "" {
			return nil, errors.New(MissingEndpointError{
				Exporter: string(httpTraceExporterType),
				EnvVars:  []string{"LANGPROC_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"},
			})
		}

		config := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.TraceExporterHTTPEndpoint)}
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpHTTPTraceExporterType:
		var config []otlptracehttp.Option
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpGrpcTraceExporterType:
		var config []otlptracegrpc.Option
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracegrpc.WithInsecure())
		}

		return otlptracegrpc.New(ctx, config...)
	case consoleTraceExporterType:
		return stdouttrace.New(stdouttrace.WithWriter(writer))
	case noneTraceExporterType:
		return nil, nil
	}

	return nil, errors.New(UnknownExporterError{Kind: "trace", Name: opts.TraceExporter})
}

// ParseTraceParent parses a W3C traceparent value such as 00-<trace-id>-<span-id>-01.
func ParseTraceParent(traceParent string) (trace.SpanContext, error) {
	parts := strings.Split(traceParent, "-")
	if len(parts) != traceParentParts {
		return trace.SpanContext{}, errors.New(InvalidTraceParentError{Value: traceParent, Reason: "expected 4 dash separated parts"})
	}

	traceID, err := trace.TraceIDFromHex(parts[1])
	if err != nil {
		return trace.SpanContext{}, errors.New(InvalidTraceParentError{Value: traceParent, Reason: err.Error()})
	}

	spanID, err := trace.SpanIDFromHex(parts[2])
	if err != nil {
		return trace.SpanContext{}, errors.New(InvalidTraceParentError{Value: traceParent, Reason: err.Error()})
	}

	var traceFlags trace.TraceFlags

	switch parts[3] {
	case "00":
	case "01":
		traceFlags = trace.FlagsSampled
	default:
		return trace.SpanContext{}, errors.New(InvalidTraceParentError{Value: traceParent, Reason: "invalid trace flags " + parts[3]})
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: traceFlags,
		Remote:     true,
	}), nil
}

// Trace runs fn inside a new span. Without a configured exporter fn is invoked directly.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || tracer.provider == nil {
		return fn(ctx)
	}

	ctx, span := tracer.openSpan(ctx, name, attrs)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

func (tracer *Tracer) openSpan(ctx context.Context, name string, attrs map[string]any) (context.Context, trace.Span) {
	if tracer.parent != nil && !trace.SpanContextFromContext(ctx).IsValid() {
		ctx = trace.ContextWithRemoteSpanContext(ctx, *tracer.parent)
	}

	ctx, span := tracer.Start(ctx, name) //nolint:spancheck
	span.SetAttributes(mapToAttributes(attrs)...)

	return ctx, span //nolint:spancheck
}
