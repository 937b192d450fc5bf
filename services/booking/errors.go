package booking

import "fmt"

// ValidationError indicates missing or malformed booking input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// NotFoundError indicates that a booking id did not resolve.
type NotFoundError struct {
	BookingID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}
