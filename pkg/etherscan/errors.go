package etherscan

import "fmt"

// InvalidArgumentError reports a precondition violated before any request was
// sent, such as a malformed address or an oversized batch.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "etherscan: invalid argument: " + e.Reason
}

// RemoteAPIError is a failure reported by the service itself: an envelope
// with status "0", or a JSON-RPC error object on a proxy action. Message
// carries the service text verbatim.
type RemoteAPIError struct {
	Message string
}

func (e *RemoteAPIError) Error() string {
	return "etherscan: API error: " + e.Message
}

// TransportError is an HTTP-level fault: connection failure, non-2xx status,
// or a body that does not parse as JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("etherscan: transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func invalidArgf(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
