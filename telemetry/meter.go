package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/langproc/langproc/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	noneMetricExporterType     metricExporterType = "none"
	consoleMetricExporterType  metricExporterType = "console"
	otlpHTTPMetricExporterType metricExporterType = "otlpHttp"
	otlpGrpcMetricExporterType metricExporterType = "otlpGrpc"

	metricReadInterval = time.Second
	durationSuffix     = "_duration"
	countSuffix        = "_count"
)

type metricExporterType string

// Meter records durations and counters on the configured meter provider.
type Meter struct {
	metric.Meter
	provider *sdkmetric.MeterProvider
}

// NewMeter creates and configures the metrics collection. It returns nil when no exporter is configured.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, errors.New(err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricReadInterval))),
	)

	otel.SetMeterProvider(provider)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
	}, nil
}

// NewMetricExporter creates the metric exporter named by opts.MetricExporter.
func NewMetricExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	exporterType := metricExporterType(opts.MetricExporter)
	if exporterType == "" {
		exporterType = noneMetricExporterType
	}

	switch exporterType {
	case otlpHTTPMetricExporterType:
		var config []otlpmetrichttp.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case otlpGrpcMetricExporterType:
		var config []otlpmetricgrpc.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	case consoleMetricExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	case noneMetricExporterType:
		return nil, nil
	}

	return nil, errors.New(UnknownExporterError{Kind: "metric", Name: opts.MetricExporter})
}

// Time runs fn and records its duration in milliseconds in the <name>_duration histogram.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	histogram, err := meter.Int64Histogram(CleanMetricName(name+durationSuffix), metric.WithUnit("ms"))
	if err != nil {
		return errors.New(err)
	}

	startTime := time.Now()
	err = fn(ctx)

	histogram.Record(ctx, time.Since(startTime).Milliseconds(), metric.WithAttributes(mapToAttributes(attrs)...))

	return err
}

// Count adds value to the <name>_count counter.
func (meter *Meter) Count(ctx context.Context, name string, value int64, attrs map[string]any) {
	if meter == nil || meter.provider == nil {
		return
	}

	counter, err := meter.Int64Counter(CleanMetricName(name + countSuffix))
	if err != nil {
		return
	}

	counter.Add(ctx, value, metric.WithAttributes(mapToAttributes(attrs)...))
}
