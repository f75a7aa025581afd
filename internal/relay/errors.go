package relay

import (
	"fmt"
	"strings"
)

// RelayError describes a failed submission to the downstream store.
type RelayError struct { //nolint:revive
	Operation string

	// StatusCode is the HTTP status, zero when no response was received
	StatusCode int

	// Messages are the store's application level error messages, if any
	Messages []string

	Err error
}

func (e *RelayError) Error() string {
	switch {
	case len(e.Messages) > 0:
		return fmt.Sprintf("relay %s: store returned errors: %s", e.Operation, strings.Join(e.Messages, "; "))
	case e.StatusCode != 0:
		return fmt.Sprintf("relay %s: unexpected status %d: %v", e.Operation, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("relay %s: %v", e.Operation, e.Err)
	}
}

func (e *RelayError) Unwrap() error {
	return e.Err
}
