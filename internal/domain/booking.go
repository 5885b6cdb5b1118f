package domain

import "time"

type SeatCategory string

const (
	SeatA1 SeatCategory = "A1"
	SeatA2 SeatCategory = "A2"
	SeatA3 SeatCategory = "A3"
	SeatA4 SeatCategory = "A4"
	SeatD1 SeatCategory = "D1"
	SeatD2 SeatCategory = "D2"
)

// MaxSeatsPerCategory caps the ticket count for a single seat category.
const MaxSeatsPerCategory = 10

// SeatCategories returns the closed set of seat categories in display order.
func SeatCategories() []SeatCategory {
	return []SeatCategory{SeatA1, SeatA2, SeatA3, SeatA4, SeatD1, SeatD2}
}

func IsSeatCategory(s SeatCategory) bool {
	switch s {
	case SeatA1, SeatA2, SeatA3, SeatA4, SeatD1, SeatD2:
		return true
	}
	return false
}

// SeatCounts maps every seat category to a ticket count. A well-formed map
// carries all six keys; absent categories count as zero.
type SeatCounts map[SeatCategory]int

// NewSeatCounts returns the all-zero baseline covering every category.
func NewSeatCounts() SeatCounts {
	counts := make(SeatCounts, len(SeatCategories()))
	for _, cat := range SeatCategories() {
		counts[cat] = 0
	}
	return counts
}

func (sc SeatCounts) Total() int {
	total := 0
	for _, n := range sc {
		total += n
	}
	return total
}

// Normalize returns a copy with all six categories present, absent ones zeroed.
func (sc SeatCounts) Normalize() SeatCounts {
	out := NewSeatCounts()
	for cat, n := range sc {
		out[cat] = n
	}
	return out
}

// Booking is one completed reservation. Records are immutable after creation;
// ID is assigned by the store and its order decides which booking is "last".
type Booking struct {
	ID        int64      `json:"-"`
	Reference string     `json:"reference"`
	Movie     string     `json:"movie"`
	Slot      string     `json:"slot"`
	Seats     SeatCounts `json:"seats"`
	CreatedAt time.Time  `json:"created_at"`
}
