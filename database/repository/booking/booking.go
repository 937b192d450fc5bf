package bookingRepo

import (
	"errors"

	"lokseva/models"
)

// ErrBookingNotFound is returned when a booking id does not resolve.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByUserID retrieves a user's bookings, newest first.
	GetByUserID(userID string) ([]models.Booking, error)
	// GetByProviderID retrieves a provider's bookings, newest first.
	GetByProviderID(providerID string) ([]models.Booking, error)
	// GetAll retrieves every booking, newest first.
	GetAll() ([]models.Booking, error)
	// UpdateStatus sets the status field and returns the updated booking.
	UpdateStatus(id, status string) (*models.Booking, error)
}
