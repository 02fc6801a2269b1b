package telemetry

import "fmt"

// MissingEndpointError is returned when an exporter needs an endpoint that was not given.
type MissingEndpointError struct {
	Exporter string
	EnvVars  []string
}

func (err MissingEndpointError) Error() string {
	return fmt.Sprintf("%s exporter requires an endpoint, set one of %v", err.Exporter, err.EnvVars)
}

// InvalidTraceParentError is returned for a malformed traceparent value.
type InvalidTraceParentError struct {
	Value  string
	Reason string
}

func (err InvalidTraceParentError) Error() string {
	return fmt.Sprintf("invalid traceparent %q: %s", err.Value, err.Reason)
}

// UnknownExporterError is returned for an exporter name that is not supported.
type UnknownExporterError struct {
	Kind string
	Name string
}

func (err UnknownExporterError) Error() string {
	return fmt.Sprintf("unknown %s exporter %q", err.Kind, err.Name)
}
