package userRepo

import (
	"errors"

	"lokseva/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserNotFound is returned when a user id does not resolve.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by their unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves every user, newest first.
	GetAll() ([]models.User, error)
	// GetManyByIDs retrieves users for the given ids, keyed by id.
	GetManyByIDs(ids []string) (map[string]models.User, error)
	// UpdateSetDocument applies a partial $set update to a user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
