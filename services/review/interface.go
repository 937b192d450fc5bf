package review

import (
	reviewRepo "lokseva/database/repository/review"
	userRepo "lokseva/database/repository/user"
	"lokseva/models"
)

// ReviewService enforces one-review-per-booking and keeps each provider's
// aggregate rating in step with their reviews.
type ReviewService interface {
	SubmitReview(in models.ReviewSubmitInput) error
	ListForProvider(providerID string) ([]models.ReviewDetail, error)
	ListAll() ([]models.ReviewDetail, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	UserRepo userRepo.UserRepository
}
