package selection

import (
	"context"
	"sync"

	"github.com/Domenick1991/moviebooking/internal/domain"
)

// SeatChoice is one picked seat category with its ticket quantity.
type SeatChoice struct {
	Seat     domain.SeatCategory `json:"seat"`
	Quantity int                 `json:"quantity"`
}

// State is a user's in-progress choice of movie, slot and seats. Empty movie
// or slot means nothing is selected for that dimension. Seats keeps insertion
// order and holds each category at most once.
type State struct {
	Movie string       `json:"movie"`
	Slot  string       `json:"slot"`
	Seats []SeatChoice `json:"seats"`
}

// Mirror keeps a durable copy of a session's state so a reload does not lose
// an in-progress selection.
type Mirror interface {
	SaveState(ctx context.Context, session string, state State) error
	LoadState(ctx context.Context, session string) (*State, error)
	ClearState(ctx context.Context, session string) error
}

// Manager tracks selection state per session in memory and mirrors every
// change to durable storage. A nil mirror keeps it memory-only.
type Manager struct {
	mu     sync.Mutex
	states map[string]*State
	mirror Mirror
}

func NewManager(mirror Mirror) *Manager {
	return &Manager{
		states: make(map[string]*State),
		mirror: mirror,
	}
}

// SelectMovie toggles the movie selection: picking the current movie again
// clears it, anything else replaces it.
func (m *Manager) SelectMovie(ctx context.Context, session, movie string) State {
	m.mu.Lock()
	st := m.state(session)
	if st.Movie == movie {
		st.Movie = ""
	} else {
		st.Movie = movie
	}
	snapshot := cloneState(st)
	m.mu.Unlock()

	m.save(ctx, session, snapshot)
	return snapshot
}

// SelectSlot toggles the slot selection independently of the movie.
func (m *Manager) SelectSlot(ctx context.Context, session, slot string) State {
	m.mu.Lock()
	st := m.state(session)
	if st.Slot == slot {
		st.Slot = ""
	} else {
		st.Slot = slot
	}
	snapshot := cloneState(st)
	m.mu.Unlock()

	m.save(ctx, session, snapshot)
	return snapshot
}

// SetSeatQuantity sets the ticket count for one seat category. Quantities are
// clamped to [0, MaxSeatsPerCategory]; a zero quantity removes the entry.
// Invalid input never raises an error, it is clamped or ignored.
func (m *Manager) SetSeatQuantity(ctx context.Context, session string, seat domain.SeatCategory, quantity int) State {
	if quantity < 0 {
		quantity = 0
	}
	if quantity > domain.MaxSeatsPerCategory {
		quantity = domain.MaxSeatsPerCategory
	}

	m.mu.Lock()
	st := m.state(session)
	idx := -1
	for i, choice := range st.Seats {
		if choice.Seat == seat {
			idx = i
			break
		}
	}
	switch {
	case idx == -1 && quantity > 0:
		st.Seats = append(st.Seats, SeatChoice{Seat: seat, Quantity: quantity})
	case idx >= 0 && quantity > 0:
		st.Seats[idx].Quantity = quantity
	case idx >= 0 && quantity == 0:
		st.Seats = append(st.Seats[:idx], st.Seats[idx+1:]...)
	}
	snapshot := cloneState(st)
	m.mu.Unlock()

	m.save(ctx, session, snapshot)
	return snapshot
}

// Snapshot returns a copy of the session's current state.
func (m *Manager) Snapshot(session string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneState(m.state(session))
}

// Load restores the session's state from the mirror. The reference UI read the
// mirrored selection on startup and then cleared it, which left the mirror
// write-only; restoring is what the mirror exists for, so Load restores.
func (m *Manager) Load(ctx context.Context, session string) State {
	if m.mirror != nil {
		if mirrored, err := m.mirror.LoadState(ctx, session); err == nil && mirrored != nil {
			m.mu.Lock()
			m.states[session] = &State{
				Movie: mirrored.Movie,
				Slot:  mirrored.Slot,
				Seats: append([]SeatChoice(nil), mirrored.Seats...),
			}
			m.mu.Unlock()
		}
	}
	return m.Snapshot(session)
}

// Reset drops the session's selection everywhere, in memory and in the mirror.
// Called after a successful booking.
func (m *Manager) Reset(ctx context.Context, session string) {
	m.mu.Lock()
	delete(m.states, session)
	m.mu.Unlock()

	if m.mirror != nil {
		_ = m.mirror.ClearState(ctx, session)
	}
}

// state returns the live entry for session, creating it if needed.
// Caller must hold mu.
func (m *Manager) state(session string) *State {
	st := m.states[session]
	if st == nil {
		st = &State{}
		m.states[session] = st
	}
	return st
}

func (m *Manager) save(ctx context.Context, session string, snapshot State) {
	if m.mirror == nil {
		return
	}
	_ = m.mirror.SaveState(ctx, session, snapshot)
}

func cloneState(st *State) State {
	return State{
		Movie: st.Movie,
		Slot:  st.Slot,
		Seats: append([]SeatChoice(nil), st.Seats...),
	}
}
