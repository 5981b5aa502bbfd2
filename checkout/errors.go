package checkout

import (
	"errors"
	"fmt"
)

// ErrAuthExpired is returned when the shop API rejects the session token
// mid-checkout. The cart is left intact so the user can resume after
// logging in again.
var ErrAuthExpired = errors.New("session expired")

// ValidationError is a local, pre-submission failure: empty cart, missing
// shipping fields, unknown payment method. No network call has been made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// TransportError covers infrastructure failures: network unreachable,
// timeouts, or a body that is not the JSON the API contract promises.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

// BusinessRejection is a structured refusal from the shop API. Message is
// surfaced to the user verbatim.
type BusinessRejection struct {
	Status  int
	Message string
}

func (e *BusinessRejection) Error() string { return e.Message }
