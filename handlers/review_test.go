package handlers

import (
	"net/http"
	"testing"

	"lokseva/models"
	"lokseva/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func reviewRouter(service *MockReviewService) *gin.Engine {
	router := gin.New()
	h := NewReviewHandler(service)
	group := router.Group("/review")
	group.POST("/submit", h.SubmitReviewHandler)
	group.GET("/all/list", h.AllReviewsHandler)
	group.GET("/:providerId", h.ProviderReviewsHandler)
	return router
}

func TestSubmitReviewHandler_Success(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	in := models.ReviewSubmitInput{
		UserID:     "U1",
		ProviderID: "P1",
		BookingID:  "B1",
		Rating:     5,
		Comment:    "Fixed it fast.",
	}
	service.On("SubmitReview", in).Return(nil)

	code, envelope := perform(t, router, http.MethodPost, "/review/submit", in)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Review submitted! Thank you.", envelope["message"])
	service.AssertExpectations(t)
}

func TestSubmitReviewHandler_Duplicate(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	service.On("SubmitReview", mock.Anything).
		Return(review.DuplicateError{BookingID: "B1"})

	code, envelope := perform(t, router, http.MethodPost, "/review/submit", models.ReviewSubmitInput{
		UserID: "U1", ProviderID: "P1", BookingID: "B1", Rating: 4,
	})

	assertFail(t, code, envelope, "You already reviewed this booking.")
}

func TestSubmitReviewHandler_RatingOutOfRange(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	service.On("SubmitReview", mock.Anything).
		Return(review.ValidationError{Reason: "Rating must be between 1 and 5."})

	code, envelope := perform(t, router, http.MethodPost, "/review/submit", models.ReviewSubmitInput{
		UserID: "U1", ProviderID: "P1", BookingID: "B1", Rating: 9,
	})

	assertFail(t, code, envelope, "Rating must be between 1 and 5.")
}

func TestSubmitReviewHandler_MalformedBody(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	code, envelope := perform(t, router, http.MethodPost, "/review/submit", nil)

	assertFail(t, code, envelope, "All fields are required.")
	service.AssertNotCalled(t, "SubmitReview", mock.Anything)
}

func TestAllReviewsHandler(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	service.On("ListAll").Return([]models.ReviewDetail{
		{Review: models.Review{ID: "R1", Rating: 5}},
	}, nil)

	code, envelope := perform(t, router, http.MethodGet, "/review/all/list", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["reviews"].([]any), 1)
	// The literal path must hit the listing, not the :providerId route.
	service.AssertNotCalled(t, "ListForProvider", mock.Anything)
}

func TestProviderReviewsHandler(t *testing.T) {
	service := new(MockReviewService)
	router := reviewRouter(service)

	service.On("ListForProvider", "P1").Return([]models.ReviewDetail{
		{Review: models.Review{ID: "R1", ProviderID: "P1", Rating: 4}},
	}, nil)

	code, envelope := perform(t, router, http.MethodGet, "/review/P1", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])
	reviews := envelope["reviews"].([]any)
	first := reviews[0].(map[string]any)
	assert.Equal(t, "P1", first["providerId"])
}
