// File: lokseva/handlers/booking.go
package handlers

import (
	"errors"

	"lokseva/models"
	"lokseva/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// CreateBookingHandler handles POST /booking/create, called when a user
// confirms a booking with a nearby provider.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in models.BookingCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "All fields are required.")
		return
	}

	created, err := h.Service.CreateBooking(in)
	if err != nil {
		var ve booking.ValidationError
		if errors.As(err, &ve) {
			respondFail(c, ve.Reason)
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "Booking created successfully!", "booking": created})
}

// UserBookingsHandler handles GET /booking/user/:userId, backing the user
// dashboard's recent bookings table.
func (h *BookingHandler) UserBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListForUser(c.Param("userId"))
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"bookings": bookings})
}

// ProviderBookingsHandler handles GET /booking/provider/:providerId, backing
// the provider dashboard's booking requests table.
func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListForProvider(c.Param("providerId"))
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"bookings": bookings})
}

// UpdateStatusHandler handles PUT /booking/status/:bookingId, called when a
// provider accepts, rejects or completes a request.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Invalid status provided.")
		return
	}

	updated, err := h.Service.UpdateStatus(c.Param("bookingId"), in.Status)
	if err != nil {
		var ve booking.ValidationError
		if errors.As(err, &ve) {
			respondFail(c, ve.Reason)
			return
		}
		var nfe booking.NotFoundError
		if errors.As(err, &nfe) {
			respondFail(c, "Booking not found.")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "Booking status updated!", "booking": updated})
}

// AllBookingsHandler handles GET /booking/all for the admin dashboard.
func (h *BookingHandler) AllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAll()
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"bookings": bookings})
}
