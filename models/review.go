// File: lokseva/models/review.go
package models

import "time"

// Review is a requester's rating of a completed booking. At most one review
// exists per booking; reviews are never edited or deleted.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`         // User who gave the review
	ProviderID string    `bson:"providerId" json:"providerId"` // Provider who received it
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	Rating     int       `bson:"rating" json:"rating"` // Star rating, 1 to 5
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewDetail is a review enriched with reviewer (and, for admin listings,
// provider) display fields.
type ReviewDetail struct {
	Review   `bson:",inline"`
	User     *UserSummary `json:"user,omitempty"`
	Provider *UserSummary `json:"provider,omitempty"`
}

// ReviewSubmitInput is the payload accepted after a completed booking.
type ReviewSubmitInput struct {
	UserID     string `json:"userId"`
	ProviderID string `json:"providerId"`
	BookingID  string `json:"bookingId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
