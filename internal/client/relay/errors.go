package relay

import "fmt"

// TransportError indicates a network failure or a non-2xx HTTP response.
// The response body, if any, is not trusted in this case; callers get a
// generic retry suggestion and no state is mutated.
type TransportError struct {
	Err        error
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("relay unreachable (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("relay unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RelayError carries a message the relay answered with (status "error").
// The message is passed through to the user verbatim.
type RelayError struct {
	Message string
}

func (e *RelayError) Error() string { return e.Message }
