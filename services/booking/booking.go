// File: lokseva/services/booking/booking.go
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "lokseva/database/repository/booking"
	"lokseva/models"
	"lokseva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request and persists a new pending booking.
// No uniqueness or overlap check is made against existing bookings for the
// same provider and slot.
func (s *DefaultBookingService) CreateBooking(in models.BookingCreateInput) (*models.Booking, error) {
	if strings.TrimSpace(in.UserID) == "" ||
		strings.TrimSpace(in.ProviderID) == "" ||
		strings.TrimSpace(in.Service) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.TimeSlot) == "" ||
		strings.TrimSpace(in.Address) == "" {
		return nil, ValidationError{Reason: "All fields are required."}
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		ProviderID: in.ProviderID,
		Service:    in.Service,
		Date:       in.Date,
		TimeSlot:   in.TimeSlot,
		Address:    in.Address,
		Note:       in.Note,
		Status:     models.BookingPending,
		CreatedAt:  time.Now(),
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("userID", booking.UserID),
		zap.String("providerID", booking.ProviderID),
		zap.String("service", booking.Service))
	return booking, nil
}

// ListForUser returns a user's bookings, newest first, each carrying the
// provider's display fields.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return s.enrich(bookings, false, true)
}

// ListForProvider returns a provider's bookings, newest first, each carrying
// the requesting user's display fields.
func (s *DefaultBookingService) ListForProvider(providerID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for provider %s: %w", providerID, err)
	}
	return s.enrich(bookings, true, false)
}

// ListAll returns every booking on the platform, newest first, with both
// sides' display fields. Admin dashboard use.
func (s *DefaultBookingService) ListAll() ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.enrich(bookings, true, true)
}

// UpdateStatus moves a booking to accepted, rejected or completed. A booking
// can never be reset to pending.
func (s *DefaultBookingService) UpdateStatus(bookingID, status string) (*models.Booking, error) {
	switch status {
	case models.BookingAccepted, models.BookingRejected, models.BookingCompleted:
	default:
		return nil, ValidationError{Reason: "Invalid status provided."}
	}

	booking, err := s.Repo.UpdateStatus(bookingID, status)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, NotFoundError{BookingID: bookingID}
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("status", status))
	return booking, nil
}

// enrich attaches user and/or provider display fields to raw bookings with a
// single batched user lookup.
func (s *DefaultBookingService) enrich(bookings []models.Booking, withUser, withProvider bool) ([]models.BookingDetail, error) {
	ids := make([]string, 0, len(bookings)*2)
	for _, b := range bookings {
		if withUser {
			ids = append(ids, b.UserID)
		}
		if withProvider {
			ids = append(ids, b.ProviderID)
		}
	}

	users, err := s.UserRepo.GetManyByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking parties: %w", err)
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}
		if withUser {
			if u, ok := users[b.UserID]; ok {
				summary := u.Summary()
				detail.User = &summary
			}
		}
		if withProvider {
			if p, ok := users[b.ProviderID]; ok {
				summary := p.Summary()
				detail.Provider = &summary
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
