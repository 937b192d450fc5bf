package user

import (
	userRepo "lokseva/database/repository/user"
	"lokseva/models"
	"lokseva/services/notification"
	"lokseva/utils"

	"github.com/go-redis/redis/v8"
)

// UserService owns accounts, OTP email verification and sessions.
type UserService interface {
	// Registration
	Register(in models.RegisterInput) error
	VerifyOTP(email, providedOTP string) (string, error)
	ResendOTP(email string) error

	// Authentication
	Login(in models.LoginInput) (*AuthResponse, error)
	Logout(token string) error
	// SessionInfo resolves a session token. Returns (nil, nil) for an
	// unknown or expired token.
	SessionInfo(token string) (*utils.Session, error)

	// Admin
	GetAllUsers() ([]models.User, error)
	SetUserStatus(userID, status string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *redis.Client
	OTPStore *redis.Client
	Notifier notification.NotificationService
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}
