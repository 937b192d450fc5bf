// File: lokseva/services/user/auth.go
package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"lokseva/config"
	"lokseva/models"
	"lokseva/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?]`)
)

// Register validates the signup payload, stores the account unverified and
// issues an OTP to the given email. Re-registering an unverified email
// replaces the pending account.
func (s *DefaultUserService) Register(in models.RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Email == "" || in.Phone == "" || in.Password == "" || in.Role == "" {
		return AuthError{Msg: "All fields are required."}
	}
	if !strings.HasSuffix(in.Email, "@gmail.com") {
		return AuthError{Msg: "Only @gmail.com emails allowed."}
	}
	if !phonePattern.MatchString(in.Phone) {
		return AuthError{Msg: "Phone must be 10 digits."}
	}
	if len(in.Password) < 8 || !digitPattern.MatchString(in.Password) || !specialPattern.MatchString(in.Password) {
		return AuthError{Msg: "Password needs 8+ chars, number & special char."}
	}
	if in.Role != models.RoleUser && in.Role != models.RoleProvider {
		return AuthError{Msg: "Role must be user or provider."}
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil && existing.IsVerified {
		return AuthError{Msg: "Email already registered. Please login."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if existing != nil {
		update := map[string]any{
			"name":         in.Name,
			"phone":        in.Phone,
			"passwordHash": string(hash),
			"role":         in.Role,
		}
		if err := s.Repo.UpdateSetDocument(existing.ID, update); err != nil {
			return fmt.Errorf("failed to refresh pending account: %w", err)
		}
	} else {
		account := &models.User{
			ID:           uuid.New().String(),
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			PasswordHash: string(hash),
			Role:         in.Role,
			Status:       models.StatusActive,
			IsVerified:   false,
		}
		if err := s.Repo.Create(account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
	}

	return s.issueOTP(in.Email)
}

// VerifyOTP checks the emailed code and marks the account verified. Returns
// the account role so the frontend can redirect.
func (s *DefaultUserService) VerifyOTP(email, providedOTP string) (string, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up email: %w", err)
	}
	if account == nil {
		return "", AuthError{Msg: "User not found."}
	}

	ctx := context.Background()
	if err := utils.VerifyOTPRecord(ctx, s.OTPStore, email, providedOTP); err != nil {
		return "", AuthError{Msg: err.Error()}
	}

	if err := s.Repo.UpdateSetDocument(account.ID, map[string]any{"isVerified": true}); err != nil {
		return "", fmt.Errorf("failed to mark account verified: %w", err)
	}

	utils.GetLogger().Info("Account verified", zap.String("userID", account.ID))
	return account.Role, nil
}

// ResendOTP issues a fresh code to an unverified account.
func (s *DefaultUserService) ResendOTP(email string) error {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to look up email: %w", err)
	}
	if account == nil {
		return AuthError{Msg: "Email not found."}
	}
	if account.IsVerified {
		return AuthError{Msg: "Already verified."}
	}
	return s.issueOTP(email)
}

// issueOTP generates a code, caches it and queues the email.
func (s *DefaultUserService) issueOTP(email string) error {
	otp, err := utils.GenerateOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	ctx := context.Background()
	if err := utils.StoreOTP(ctx, s.OTPStore, email, otp); err != nil {
		return err
	}
	if err := s.Notifier.SendOTPEmail(email, otp); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// Login checks credentials and opens a Redis-backed session.
func (s *DefaultUserService) Login(in models.LoginInput) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if account == nil {
		return nil, AuthError{Msg: "Email not registered."}
	}
	if account.Role != in.Role {
		return nil, AuthError{Msg: fmt.Sprintf("No %s account found.", in.Role)}
	}
	if !account.IsVerified {
		return nil, AuthError{Msg: "Please verify your email first."}
	}
	if account.Status == models.StatusBlocked {
		return nil, AuthError{Msg: "Your account has been blocked. Contact admin."}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, AuthError{Msg: "Incorrect password."}
	}

	token := uuid.New().String()
	session := utils.Session{
		UserID:    account.ID,
		Name:      account.Name,
		Role:      account.Role,
		CreatedAt: time.Now(),
	}
	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	if err := utils.SaveSession(context.Background(), s.Sessions, token, session, ttl); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("User logged in",
		zap.String("userID", account.ID),
		zap.String("role", account.Role))
	return &AuthResponse{
		UserID: account.ID,
		Name:   account.Name,
		Role:   account.Role,
		Token:  token,
	}, nil
}

// Logout destroys the session behind the token. Unknown tokens are a no-op.
func (s *DefaultUserService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return utils.DeleteSession(context.Background(), s.Sessions, token)
}

// SessionInfo resolves a session token to its record.
func (s *DefaultUserService) SessionInfo(token string) (*utils.Session, error) {
	if token == "" {
		return nil, nil
	}
	session, err := utils.GetSession(context.Background(), s.Sessions, token)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return session, nil
}
