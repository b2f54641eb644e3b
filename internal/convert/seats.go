package convert

import (
	"fmt"
	"slices"
)

// SeatMap holds the seat order captured from the first hand of a run. It is
// written once by the reader before any hand is rendered and only read after.
type SeatMap struct {
	seats []string
}

// Seats returns the captured order, or nil before the first hand.
func (m *SeatMap) Seats() []string { return m.seats }

// Observe captures players as the seat order on first use, then checks that
// later hands seat the same players.
func (m *SeatMap) Observe(players []string) error {
	if m.seats == nil {
		m.seats = slices.Clone(players)
		return nil
	}
	if len(players) != len(m.seats) {
		return fmt.Errorf("%w: %d players, seat map has %d", ErrSeatMismatch, len(players), len(m.seats))
	}
	for _, p := range players {
		if !slices.Contains(m.seats, p) {
			return fmt.Errorf("%w: unknown player %q", ErrSeatMismatch, p)
		}
	}
	got, want := slices.Clone(players), slices.Clone(m.seats)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: players %v do not fill seats %v", ErrSeatMismatch, players, m.seats)
	}
	return nil
}
