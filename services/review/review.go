// File: lokseva/services/review/review.go
package review

import (
	"fmt"
	"math"
	"strings"
	"time"

	"lokseva/models"
	"lokseva/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitReview validates and persists a review, then recomputes the target
// provider's aggregate rating from every review on record. The recompute is a
// full re-scan rather than an incremental running average; at the platform's
// review volumes the O(n) scan is the simpler contract to keep correct.
// Concurrent submissions for the same provider can race on the read-then-write
// aggregate update; the store only guarantees single-document atomicity.
func (s *DefaultReviewService) SubmitReview(in models.ReviewSubmitInput) error {
	if strings.TrimSpace(in.UserID) == "" ||
		strings.TrimSpace(in.ProviderID) == "" ||
		strings.TrimSpace(in.BookingID) == "" ||
		in.Rating == 0 {
		return ValidationError{Reason: "All fields are required."}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ValidationError{Reason: "Rating must be between 1 and 5."}
	}

	existing, err := s.Repo.GetByBookingID(in.BookingID)
	if err != nil {
		return fmt.Errorf("failed to check for existing review: %w", err)
	}
	if existing != nil {
		return DuplicateError{BookingID: in.BookingID}
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		ProviderID: in.ProviderID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeProviderRating(in.ProviderID); err != nil {
		return err
	}

	utils.GetLogger().Info("Review submitted",
		zap.String("reviewID", review.ID),
		zap.String("bookingID", review.BookingID),
		zap.String("providerID", review.ProviderID),
		zap.Int("rating", review.Rating))
	return nil
}

// recomputeProviderRating averages every review the provider has received,
// rounds to one decimal place and writes the result onto the provider's user
// record.
func (s *DefaultReviewService) recomputeProviderRating(providerID string) error {
	reviews, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		return fmt.Errorf("failed to load provider reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	if err := s.UserRepo.UpdateSetDocument(providerID, bson.M{"rating": avg}); err != nil {
		return fmt.Errorf("failed to update provider rating: %w", err)
	}

	utils.GetLogger().Debug("Provider rating recomputed",
		zap.String("providerID", providerID),
		zap.Float64("rating", avg),
		zap.Int("reviewCount", len(reviews)))
	return nil
}

// ListForProvider returns a provider's reviews, newest first, each carrying
// the reviewer's display name. Used on public provider cards.
func (s *DefaultReviewService) ListForProvider(providerID string) ([]models.ReviewDetail, error) {
	reviews, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for provider %s: %w", providerID, err)
	}
	return s.enrich(reviews, false)
}

// ListAll returns every review, newest first, with both sides' display
// fields. Admin dashboard use.
func (s *DefaultReviewService) ListAll() ([]models.ReviewDetail, error) {
	reviews, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return s.enrich(reviews, true)
}

// enrich attaches reviewer (and optionally provider) display fields with a
// single batched user lookup.
func (s *DefaultReviewService) enrich(reviews []models.Review, withProvider bool) ([]models.ReviewDetail, error) {
	ids := make([]string, 0, len(reviews)*2)
	for _, r := range reviews {
		ids = append(ids, r.UserID)
		if withProvider {
			ids = append(ids, r.ProviderID)
		}
	}

	users, err := s.UserRepo.GetManyByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load review parties: %w", err)
	}

	details := make([]models.ReviewDetail, 0, len(reviews))
	for _, r := range reviews {
		detail := models.ReviewDetail{Review: r}
		if u, ok := users[r.UserID]; ok {
			summary := u.Summary()
			detail.User = &summary
		}
		if withProvider {
			if p, ok := users[r.ProviderID]; ok {
				summary := p.Summary()
				detail.Provider = &summary
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
