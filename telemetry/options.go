package telemetry

// Options selects and configures the exporters.
type Options struct {
	// TraceExporter is one of none, console, otlpHttp, otlpGrpc or http.
	TraceExporter string
	// TraceExporterHTTPEndpoint is required by the http trace exporter.
	TraceExporterHTTPEndpoint string
	// TraceParent is a W3C traceparent value the spans are attached to.
	TraceParent string
	// MetricExporter is one of none, console, otlpHttp or otlpGrpc.
	MetricExporter string

	TraceExporterInsecureEndpoint  bool
	MetricExporterInsecureEndpoint bool
}
