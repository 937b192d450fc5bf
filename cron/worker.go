// File: lokseva/cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lokseva/config"
	"lokseva/services/notification"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in the background. OTP emails are
// enqueued by the request path and delivered here so a slow SMTP round trip
// never blocks a registration response.
func InitMailWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeOTPEmail, handleOTPEmailTask(mailer))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleOTPEmailTask delivers one queued OTP email.
func handleOTPEmailTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload notification.OTPEmailPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return mailer.Send(payload.Email, "Your Lokseva OTP Code", notification.OTPEmailBody(payload.OTP))
	}
}
