package domain

// Catalog holds the movies and time slots a client may book. The reference UI
// only ever offers catalog values, but the service re-checks membership so the
// invariant holds for untrusted callers too.
type Catalog struct {
	Movies []string
	Slots  []string
}

func (c Catalog) HasMovie(movie string) bool {
	return contains(c.Movies, movie)
}

func (c Catalog) HasSlot(slot string) bool {
	return contains(c.Slots, slot)
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

// ValidateBooking checks movie, slot and seat counts against the catalog and
// the schema bounds. An empty catalog list disables membership checking for
// that dimension.
func (c Catalog) ValidateBooking(movie, slot string, seats SeatCounts) error {
	if movie == "" {
		return &ValidationError{Field: "movie", Reason: "is required"}
	}
	if slot == "" {
		return &ValidationError{Field: "slot", Reason: "is required"}
	}
	if len(c.Movies) > 0 && !c.HasMovie(movie) {
		return &ValidationError{Field: "movie", Reason: "is not in the catalog"}
	}
	if len(c.Slots) > 0 && !c.HasSlot(slot) {
		return &ValidationError{Field: "slot", Reason: "is not in the catalog"}
	}

	total := 0
	for cat, n := range seats {
		if !IsSeatCategory(cat) {
			return &ValidationError{Field: "seats", Reason: "unknown seat category " + string(cat)}
		}
		if n < 0 || n > MaxSeatsPerCategory {
			return &ValidationError{Field: "seats", Reason: "count for " + string(cat) + " must be between 0 and 10"}
		}
		total += n
	}
	if total == 0 {
		return &ValidationError{Field: "seats", Reason: "at least one seat must be selected"}
	}
	return nil
}
