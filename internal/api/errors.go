package api

import "fmt"

// ValidationError reports a submission blocked before any network activity,
// such as a missing file selection.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ResponseFormatError reports an HTTP success whose body could not be parsed.
// The caller's previous result, if any, must be left untouched.
type ResponseFormatError struct {
	Cause error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %v", e.Cause)
}

func (e *ResponseFormatError) Unwrap() error { return e.Cause }

// TransportError reports an HTTP failure status or an outright network
// failure. Network is true when no response was received at all; otherwise
// StatusCode and Body carry what the server returned.
type TransportError struct {
	StatusCode int
	Body       string
	Network    bool
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Network {
		return fmt.Sprintf("network error: %v", e.Cause)
	}
	return fmt.Sprintf("upload failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Cause }
