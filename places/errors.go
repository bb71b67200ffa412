package places

import "fmt"

// UpstreamError is any non-OK, non-ZERO_RESULTS status returned by the
// places API. The status string and upstream message are passed through.
type UpstreamError struct {
	Status  string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

// TransportError covers network-level failures (DNS, connect, timeout)
// talking to the places API, as opposed to an answered request with a
// failure status.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("places %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigurationError is raised before any upstream call when the API
// credential is absent.
type ConfigurationError struct {
	Hint string
}

func (e *ConfigurationError) Error() string {
	return "places API key is not configured: " + e.Hint
}
