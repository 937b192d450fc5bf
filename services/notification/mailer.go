// File: lokseva/services/notification/mailer.go
package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"lokseva/config"
	"lokseva/utils"

	"go.uber.org/zap"
)

// Mailer sends a single email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers email over plain SMTP with optional auth.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Host: config.AppConfig.SMTPHost,
		Port: config.AppConfig.SMTPPort,
		User: config.AppConfig.SMTPUser,
		Pass: config.AppConfig.SMTPPass,
		From: config.AppConfig.MailFrom,
	}
}

// Send delivers one message. When no SMTP user is configured the message is
// logged instead, which keeps local development working without a mail
// account.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.User == "" {
		utils.GetLogger().Sugar().Infof("Mail (dev mode) to %s: %s — %s", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.User, []string{to}, []byte(msg)); err != nil {
		utils.GetLogger().Error("Failed to send mail", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// OTPEmailBody renders the OTP email sent during registration.
func OTPEmailBody(otp string) string {
	return fmt.Sprintf(`<div style="font-family:Arial;max-width:400px;margin:auto;padding:30px;border-radius:12px;background:#f0f4f8;text-align:center;">
  <h2 style="color:#1a2757;">Lokseva</h2>
  <p style="color:#607080;">Your OTP to verify your email:</p>
  <div style="font-size:36px;font-weight:bold;letter-spacing:10px;color:#1a2757;background:white;padding:20px;border-radius:10px;margin:20px 0;">%s</div>
  <p style="color:#b91c1c;font-size:13px;">Expires in <b>10 minutes</b>.</p>
</div>`, otp)
}
