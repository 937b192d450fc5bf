package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lokseva/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(in models.BookingCreateInput) (*models.Booking, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListForUser(userID string) ([]models.BookingDetail, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetail), args.Error(1)
}

func (m *MockBookingService) ListForProvider(providerID string) ([]models.BookingDetail, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetail), args.Error(1)
}

func (m *MockBookingService) ListAll() ([]models.BookingDetail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetail), args.Error(1)
}

func (m *MockBookingService) UpdateStatus(bookingID, status string) (*models.Booking, error) {
	args := m.Called(bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(in models.ReviewSubmitInput) error {
	args := m.Called(in)
	return args.Error(0)
}

func (m *MockReviewService) ListForProvider(providerID string) ([]models.ReviewDetail, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

func (m *MockReviewService) ListAll() ([]models.ReviewDetail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

// perform runs a request against the router and decodes the JSON envelope.
func perform(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}

func assertFail(t *testing.T, code int, envelope map[string]any, message string) {
	t.Helper()
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, message, envelope["message"])
}
