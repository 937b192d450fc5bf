// File: lokseva/handlers/auth.go
package handlers

import (
	"errors"

	"lokseva/config"
	"lokseva/middleware"
	"lokseva/models"
	"lokseva/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, OTP verification and sessions over HTTP.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service user.UserService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// failOrServerError routes auth errors into the envelope: AuthError messages
// go to the client verbatim, everything else is an opaque server error.
func failOrServerError(c *gin.Context, err error) {
	var ae user.AuthError
	if errors.As(err, &ae) {
		respondFail(c, ae.Msg)
		return
	}
	respondServerError(c, err)
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var in models.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "All fields are required.")
		return
	}

	if err := h.Service.Register(in); err != nil {
		failOrServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"message": "OTP sent to " + in.Email})
}

// VerifyOTPHandler handles POST /auth/verify-otp.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "All fields are required.")
		return
	}

	role, err := h.Service.VerifyOTP(in.Email, in.OTP)
	if err != nil {
		failOrServerError(c, err)
		return
	}
	// Send role back so the frontend redirects correctly.
	respondSuccess(c, gin.H{"message": "Email verified!", "role": role})
}

// ResendOTPHandler handles POST /auth/resend-otp.
func (h *AuthHandler) ResendOTPHandler(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Email is required.")
		return
	}

	if err := h.Service.ResendOTP(in.Email); err != nil {
		failOrServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"message": "New OTP sent."})
}

// LoginHandler handles POST /auth/login. On success the session token is set
// as a cookie and also returned in the body for header-based clients.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var in models.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "All fields are required.")
		return
	}

	auth, err := h.Service.Login(in)
	if err != nil {
		failOrServerError(c, err)
		return
	}

	maxAge := config.AppConfig.SessionTTLHours * 3600
	c.SetCookie(middleware.SessionCookieName, auth.Token, maxAge, "/", "", false, true)
	respondSuccess(c, gin.H{
		"role":   auth.Role,
		"name":   auth.Name,
		"userId": auth.UserID,
		"token":  auth.Token,
	})
}

// LogoutHandler handles GET /auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := middleware.ExtractSessionToken(c)
	if err := h.Service.Logout(token); err != nil {
		respondServerError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	respondSuccess(c, gin.H{"message": "Logged out."})
}

// MeHandler handles GET /auth/me, the session probe used by every dashboard
// page. An absent session is not an error.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	token := middleware.ExtractSessionToken(c)
	session, err := h.Service.SessionInfo(token)
	if err != nil {
		respondServerError(c, err)
		return
	}
	if session == nil {
		c.JSON(200, gin.H{"loggedIn": false})
		return
	}
	c.JSON(200, gin.H{
		"loggedIn": true,
		"name":     session.Name,
		"role":     session.Role,
		"userId":   session.UserID,
	})
}

// AllUsersHandler handles GET /auth/all-users for the admin dashboard.
func (h *AuthHandler) AllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"users": users})
}

// BlockUserHandler handles PUT /auth/block/:userId, toggling an account
// between active and blocked.
func (h *AuthHandler) BlockUserHandler(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Invalid status provided.")
		return
	}

	updated, err := h.Service.SetUserStatus(c.Param("userId"), in.Status)
	if err != nil {
		failOrServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"user": updated})
}
