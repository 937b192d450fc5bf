package booking

import (
	bookingRepo "lokseva/database/repository/booking"
	userRepo "lokseva/database/repository/user"
	"lokseva/models"
)

// BookingService governs the booking lifecycle: creation with required-field
// validation, dashboard listings enriched with counterpart display fields, and
// provider-driven status updates.
type BookingService interface {
	CreateBooking(in models.BookingCreateInput) (*models.Booking, error)
	ListForUser(userID string) ([]models.BookingDetail, error)
	ListForProvider(providerID string) ([]models.BookingDetail, error)
	ListAll() ([]models.BookingDetail, error)
	UpdateStatus(bookingID, status string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	UserRepo userRepo.UserRepository
}
