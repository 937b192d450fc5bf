package review

// ValidationError indicates missing or malformed review input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// DuplicateError indicates that the booking has already been reviewed.
type DuplicateError struct {
	BookingID string
}

func (e DuplicateError) Error() string {
	return "booking " + e.BookingID + " already reviewed"
}
