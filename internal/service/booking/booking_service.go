package booking

import (
	"context"
	"log"

	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/kafka"
	"github.com/Domenick1991/moviebooking/internal/repository"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	LastBooking(ctx context.Context) (*domain.Booking, error)
}

// Cache keeps a copy of the last booking so repeated reads skip the store.
type Cache interface {
	GetLastBooking(ctx context.Context) (*domain.Booking, error)
	SetLastBooking(ctx context.Context, booking *domain.Booking) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	catalog            domain.Catalog
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

// CreateBookingInput is a completed selection ready to be persisted. Seats
// come in as the ordered choice sequence the selection manager produces.
type CreateBookingInput struct {
	Movie string                 `json:"movie"`
	Slot  string                 `json:"slot"`
	Seats []selection.SeatChoice `json:"seats"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog domain.Catalog,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		catalog:      catalog,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the selection, builds the full seat-count map and
// persists it. Validation happens here rather than trusting the caller: the
// reference UI enforced the seat cap and catalog membership client-side only.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	seats := buildSeatCounts(input.Seats)
	if err := s.catalog.ValidateBooking(input.Movie, input.Slot, seats); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference: uuid.NewString(),
		Movie:     input.Movie,
		Slot:      input.Slot,
		Seats:     seats,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	if booking.ID == 0 {
		return nil, domain.ErrNotCreated
	}

	if s.cache != nil {
		if err := s.cache.SetLastBooking(ctx, booking); err != nil {
			log.Printf("WARNING: failed to cache booking %s: %v", booking.Reference, err)
		}
	}
	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.Reference, err)
	}
	return booking, nil
}

// LastBooking returns the most recently created booking. domain.ErrNoBooking
// means no booking exists yet, which is a normal empty state.
func (s *BookingService) LastBooking(ctx context.Context) (*domain.Booking, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetLastBooking(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	booking, err := s.bookings.Last(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetLastBooking(ctx, booking)
	}
	return booking, nil
}

// buildSeatCounts merges the choice sequence onto the all-zero baseline.
// The selection manager keeps seats unique, but a repeated category would sum.
func buildSeatCounts(choices []selection.SeatChoice) domain.SeatCounts {
	counts := domain.NewSeatCounts()
	for _, choice := range choices {
		counts[choice.Seat] += choice.Quantity
	}
	return counts
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	seats := make(map[string]int, len(booking.Seats))
	for cat, n := range booking.Seats {
		seats[string(cat)] = n
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Reference:  booking.Reference,
		Movie:      booking.Movie,
		Slot:       booking.Slot,
		Seats:      seats,
		TotalSeats: booking.Seats.Total(),
		CreatedAt:  booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
