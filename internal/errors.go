package internal

import "errors"

var (
	ErrInvalidInput      = errors.New("order reference is empty")
	ErrUnreachable       = errors.New("lookup endpoint unreachable")
	ErrMalformedResponse = errors.New("malformed lookup response")
	ErrOrderNotFound     = errors.New("order not found")
	ErrRemote            = errors.New("lookup endpoint error")
)

// RemoteError carries the endpoint's own error message, already bounded
// in length. It matches ErrRemote under errors.Is.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "lookup endpoint error: " + e.Message
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// UserMessage maps any fetch failure to the message the presentation layer
// shows. Remote messages are surfaced verbatim.
func UserMessage(err error) string {
	var re *RemoteError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Please enter an order reference"
	case errors.Is(err, ErrOrderNotFound):
		return "Order not found"
	case errors.As(err, &re):
		return re.Message
	case errors.Is(err, ErrMalformedResponse):
		return "Received an unexpected response from the order service."
	default:
		return "Unable to fetch order status. Please try again."
	}
}
