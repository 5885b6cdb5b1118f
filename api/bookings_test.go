package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) LastBooking(ctx context.Context) (*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service).Register(router, "/api/booking", "/api/booking")
	return router
}

func sampleBooking() *domain.Booking {
	seats := domain.NewSeatCounts()
	seats[domain.SeatA1] = 2
	seats[domain.SeatD2] = 1
	return &domain.Booking{
		ID:        1,
		Reference: "ref-123",
		Movie:     "Inception",
		Slot:      "18:00",
		Seats:     seats,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	body := []byte(`{"movie":"Inception","slot":"18:00","seats":{"A1":2,"A2":0,"A3":0,"A4":0,"D1":0,"D2":1}}`)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("CreateBooking", mock.Anything, mock.AnythingOfType("booking.CreateBookingInput")).Return(sampleBooking(), nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ref-123", response.Reference)
	assert.Equal(t, "Inception", response.Movie)
	assert.Equal(t, 2, response.Seats[domain.SeatA1])

	input := mockService.Calls[0].Arguments.Get(1).(booking.CreateBookingInput)
	assert.Equal(t, "Inception", input.Movie)
	assert.Equal(t, "18:00", input.Slot)
	assert.Len(t, input.Seats, 6)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ValidationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	body := []byte(`{"movie":"Inception","slot":"18:00","seats":{"A1":0}}`)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	ve := &domain.ValidationError{Field: "seats", Reason: "at least one seat must be selected"}
	mockService.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, ve).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid booking data. Please provide valid details."}`, w.Body.String())
}

func TestBookingHandler_create_UnknownFieldRejected(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	body := []byte(`{"movie":"Inception","slot":"18:00","seats":{"A1":1},"admin":true}`)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_create_NotCreated(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	body := []byte(`{"movie":"Inception","slot":"18:00","seats":{"A1":1}}`)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, domain.ErrNotCreated).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Failed to create booking. Please try again later."}`, w.Body.String())
}

func TestBookingHandler_create_UnexpectedError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	body := []byte(`{"movie":"Inception","slot":"18:00","seats":{"A1":1}}`)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, &domain.StorageError{Op: "create booking", Err: errors.New("connection refused")}).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An unexpected error occurred. Please try again later."}`, w.Body.String())
}

func TestBookingHandler_last(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	mockService.On("LastBooking", mock.Anything).Return(sampleBooking(), nil).Once()

	req := httptest.NewRequest("GET", "/api/booking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Inception", response.Movie)
	assert.Equal(t, "18:00", response.Slot)
	assert.Equal(t, 1, response.Seats[domain.SeatD2])
}

func TestBookingHandler_last_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	mockService.On("LastBooking", mock.Anything).Return(nil, domain.ErrNoBooking).Once()

	req := httptest.NewRequest("GET", "/api/booking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No previous booking found."}`, w.Body.String())
}

func TestBookingHandler_last_StorageError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	mockService.On("LastBooking", mock.Anything).
		Return(nil, &domain.StorageError{Op: "query last booking", Err: errors.New("timeout")}).Once()

	req := httptest.NewRequest("GET", "/api/booking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBookingHandler_last_IdempotentReads(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newRouter(mockService)

	mockService.On("LastBooking", mock.Anything).Return(sampleBooking(), nil).Twice()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/api/booking", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/api/booking", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}
