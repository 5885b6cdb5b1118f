package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/moviebooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send confirmation for booking %s: %d seat(s) for %q at %s\n",
		event.Reference, event.TotalSeats, event.Movie, event.Slot)
	return nil
}
