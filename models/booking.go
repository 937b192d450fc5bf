// File: lokseva/models/booking.go
package models

import "time"

// Booking statuses. A booking starts out pending and is moved by the provider
// (or an admin) to accepted, rejected or completed. There is no path back to
// pending.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// Booking represents a service request from a user to a provider.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	UserID     string    `bson:"userId" json:"userId"`         // User who requested the service
	ProviderID string    `bson:"providerId" json:"providerId"` // Provider who will perform it
	Service    string    `bson:"service" json:"service"`       // e.g. "Electrician", "Plumber", "Cleaner"
	Date       string    `bson:"date" json:"date"`             // Calendar date, e.g. "2026-02-21"
	TimeSlot   string    `bson:"timeSlot" json:"timeSlot"`     // Free-text range, e.g. "10:00 AM - 12:00 PM"
	Address    string    `bson:"address" json:"address"`       // Job address
	Note       string    `bson:"note" json:"note"`             // Optional problem description
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingDetail is a booking enriched with the counterpart's display fields,
// the Go equivalent of a populated document.
type BookingDetail struct {
	Booking  `bson:",inline"`
	User     *UserSummary `json:"user,omitempty"`
	Provider *UserSummary `json:"provider,omitempty"`
}

// BookingCreateInput is the payload accepted when a user confirms a booking.
type BookingCreateInput struct {
	UserID     string `json:"userId"`
	ProviderID string `json:"providerId"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	Address    string `json:"address"`
	Note       string `json:"note"`
}
