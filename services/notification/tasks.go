// File: lokseva/services/notification/tasks.go
package notification

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeOTPEmail is the asynq task type for OTP email delivery.
const TypeOTPEmail = "email:otp"

// OTPEmailPayload is the task payload for TypeOTPEmail.
type OTPEmailPayload struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// NewOTPEmailTask builds an asynq task carrying an OTP email.
func NewOTPEmailTask(email, otp string) (*asynq.Task, error) {
	payload, err := json.Marshal(OTPEmailPayload{Email: email, OTP: otp})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OTP email payload: %w", err)
	}
	return asynq.NewTask(TypeOTPEmail, payload, asynq.MaxRetry(3)), nil
}
