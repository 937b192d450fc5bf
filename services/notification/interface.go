package notification

// NotificationService delivers account emails. Delivery is best-effort; a
// failed send surfaces to the caller but is never retried synchronously.
type NotificationService interface {
	SendOTPEmail(email, otp string) error
}
