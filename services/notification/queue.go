// File: lokseva/services/notification/queue.go
package notification

import (
	"fmt"

	"lokseva/config"
	"lokseva/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueNotificationService enqueues emails for the background mail worker
// instead of sending them inline on the request path.
type QueueNotificationService struct {
	Client *asynq.Client
}

// NewQueueNotificationService creates a notification service backed by the
// asynq mail queue.
func NewQueueNotificationService() *QueueNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &QueueNotificationService{Client: client}
}

// SendOTPEmail enqueues an OTP email for background delivery.
func (s *QueueNotificationService) SendOTPEmail(email, otp string) error {
	task, err := NewOTPEmailTask(email, otp)
	if err != nil {
		return err
	}
	info, err := s.Client.Enqueue(task)
	if err != nil {
		return fmt.Errorf("failed to enqueue OTP email: %w", err)
	}
	utils.GetLogger().Debug("OTP email enqueued",
		zap.String("taskID", info.ID),
		zap.String("email", email))
	return nil
}

// Close releases the underlying queue connection.
func (s *QueueNotificationService) Close() error {
	return s.Client.Close()
}
