package estimates

import "fmt"

// RequestError reports a transport or status-level failure: the service was
// unreachable, answered with a non-2xx status, or sent an unreadable body.
// StatusCode is 0 when no response was received.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

// CalculationError reports that the service was reached but declared the
// calculation unsuccessful.
type CalculationError struct {
	Message string
}

func (e *CalculationError) Error() string { return e.Message }

const defaultCalculationMessage = "Calculation failed"

func statusMessage(code int) string {
	return fmt.Sprintf("HTTP error! status: %d", code)
}
