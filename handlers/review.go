// File: lokseva/handlers/review.go
package handlers

import (
	"errors"

	"lokseva/models"
	"lokseva/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and listings over HTTP.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: service}
}

// SubmitReviewHandler handles POST /review/submit, called after a booking is
// completed.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var in models.ReviewSubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "All fields are required.")
		return
	}

	if err := h.Service.SubmitReview(in); err != nil {
		var ve review.ValidationError
		if errors.As(err, &ve) {
			respondFail(c, ve.Reason)
			return
		}
		var de review.DuplicateError
		if errors.As(err, &de) {
			respondFail(c, "You already reviewed this booking.")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "Review submitted! Thank you."})
}

// AllReviewsHandler handles GET /review/all/list for admin review monitoring.
func (h *ReviewHandler) AllReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListAll()
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"reviews": reviews})
}

// ProviderReviewsHandler handles GET /review/:providerId, shown on provider
// cards.
func (h *ReviewHandler) ProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListForProvider(c.Param("providerId"))
	if err != nil {
		respondServerError(c, err)
		return
	}
	respondSuccess(c, gin.H{"reviews": reviews})
}
