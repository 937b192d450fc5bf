// File: lokseva/models/user.go
package models

import "time"

// User roles understood by the platform.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User account statuses.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User represents a platform account. Providers and requesters share the same
// collection; the Role field tells them apart. Rating is a derived field kept
// up to date by the review service whenever a provider receives a new review.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Status       string    `bson:"status" json:"status"`
	IsVerified   bool      `bson:"isVerified" json:"isVerified"`
	Rating       float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary carries the display fields attached to bookings and reviews at
// read time. It never includes credentials or verification state.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Summary projects a user down to its display fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
