package reviewRepo

import "lokseva/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review for a booking. Returns (nil, nil)
	// when the booking has no review yet.
	GetByBookingID(bookingID string) (*models.Review, error)
	// GetByProviderID retrieves a provider's reviews, newest first.
	GetByProviderID(providerID string) ([]models.Review, error)
	// GetAll retrieves every review, newest first.
	GetAll() ([]models.Review, error)
}
