// File: lokseva/services/user/admin.go
package user

import (
	"errors"
	"fmt"

	userRepo "lokseva/database/repository/user"
	"lokseva/models"
	"lokseva/utils"

	"go.uber.org/zap"
)

// GetAllUsers returns every account for the admin dashboard. Credentials are
// excluded at the JSON layer.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// SetUserStatus blocks or unblocks an account.
func (s *DefaultUserService) SetUserStatus(userID, status string) (*models.User, error) {
	if status != models.StatusActive && status != models.StatusBlocked {
		return nil, AuthError{Msg: "Invalid status provided."}
	}

	if err := s.Repo.UpdateSetDocument(userID, map[string]any{"status": status}); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, AuthError{Msg: "User not found."}
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated user: %w", err)
	}

	utils.GetLogger().Info("User status changed",
		zap.String("userID", userID),
		zap.String("status", status))
	return account, nil
}
