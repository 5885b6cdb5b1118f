package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/Domenick1991/moviebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

// createBookingRequest mirrors the stored document shape. Seats is decoded as
// a map so unknown categories reach validation instead of being dropped.
type createBookingRequest struct {
	Movie string         `json:"movie"`
	Slot  string         `json:"slot"`
	Seats map[string]int `json:"seats"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the two booking endpoints at their configured paths.
func (h *BookingHandler) Register(router gin.IRoutes, lastPath, createPath string) {
	router.GET(lastPath, h.last)
	router.POST(createPath, h.create)
}

func (h *BookingHandler) last(c *gin.Context) {
	booking, err := h.service.LastBooking(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoBooking) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No previous booking found."})
			return
		}
		log.Printf("fetch last booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data. Please provide valid details."})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		Movie: req.Movie,
		Slot:  req.Slot,
		Seats: seatChoices(req.Seats),
	})
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data. Please provide valid details."})
		case errors.Is(err, domain.ErrNotCreated):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create booking. Please try again later."})
		default:
			log.Printf("create booking: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusOK, created)
}

// seatChoices flattens the request's seat map into the choice sequence the
// service expects. Known categories come first in schema order so the result
// is deterministic; unknown keys are kept for the validator to reject.
func seatChoices(seats map[string]int) []selection.SeatChoice {
	choices := make([]selection.SeatChoice, 0, len(seats))
	for _, cat := range domain.SeatCategories() {
		if quantity, ok := seats[string(cat)]; ok {
			choices = append(choices, selection.SeatChoice{Seat: cat, Quantity: quantity})
		}
	}
	for key, quantity := range seats {
		if !domain.IsSeatCategory(domain.SeatCategory(key)) {
			choices = append(choices, selection.SeatChoice{Seat: domain.SeatCategory(key), Quantity: quantity})
		}
	}
	return choices
}
