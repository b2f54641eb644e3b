package game

import (
	"fmt"

	"github.com/lox/acpcstars/internal/acpc"
)

// HandState accumulates wagers across the streets of one hand.
type HandState struct {
	Totals        []int    // chips wagered by each player over the hand
	FoldedOn      []Street // street a player folded on, Showdown if still in
	LastIncrement int      // last bet increment of the final street played
	NextToAct     int      // actor pointer after the final street
	Reached       Street   // last street played
}

// NewHandState creates an empty state for n players.
func NewHandState(n int) *HandState {
	h := &HandState{
		Totals:   make([]int, n),
		FoldedOn: make([]Street, n),
	}
	for i := range h.FoldedOn {
		h.FoldedOn[i] = Showdown
	}
	return h
}

// Folded reports whether a player left the hand.
func (h *HandState) Folded(p int) bool { return h.FoldedOn[p] != Showdown }

// ActiveCount returns the number of players still in the hand.
func (h *HandState) ActiveCount() int {
	n := 0
	for p := range h.FoldedOn {
		if !h.Folded(p) {
			n++
		}
	}
	return n
}

// Active lists players still in the hand in seat order.
func (h *HandState) Active() []int {
	out := make([]int, 0, len(h.FoldedOn))
	for p := range h.FoldedOn {
		if !h.Folded(p) {
			out = append(out, p)
		}
	}
	return out
}

// Wagered is the sum of every player's total.
func (h *HandState) Wagered() int {
	sum := 0
	for _, t := range h.Totals {
		sum += t
	}
	return sum
}

// nextActive walks forward from p, wrapping, to the first unfolded player.
func (h *HandState) nextActive(p int) (int, error) {
	n := len(h.FoldedOn)
	for i := 0; i < n; i++ {
		cand := (p + i) % n
		if !h.Folded(cand) {
			return cand, nil
		}
	}
	return 0, fmt.Errorf("%w: no unfolded player to act", ErrInvalidActionStream)
}

// Hand is a fully replayed record.
type Hand struct {
	Record    acpc.HandRecord
	Positions Positions
	Rules     Rules
	Streets   [][]Event
	State     *HandState
}

// Replay runs every street of a record through the betting engine.
func Replay(rec acpc.HandRecord) (*Hand, error) {
	pos, err := ResolvePositions(len(rec.Players))
	if err != nil {
		return nil, err
	}
	h := &Hand{
		Record:    rec,
		Positions: pos,
		Rules:     Rules{Game: rec.Game, BigBlind: rec.BigBlind},
		Streets:   make([][]Event, 0, len(rec.Actions)),
		State:     NewHandState(len(rec.Players)),
	}
	for i, raw := range rec.Actions {
		street := Street(i)
		tokens, err := Tokenize(raw, rec.Game)
		if err != nil {
			return nil, fmt.Errorf("hand %d %s: %w", rec.ID, street, err)
		}
		// Later streets may be empty after an all-in; preflop always has an action.
		if street == Preflop && len(tokens) == 0 {
			return nil, fmt.Errorf("hand %d: %w: no preflop actions", rec.ID, ErrInvalidActionStream)
		}
		events, err := ReplayStreet(h.State, street, tokens, h.Rules, pos)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", rec.ID, err)
		}
		h.Streets = append(h.Streets, events)
	}
	return h, nil
}

// FinalStreet is the last street that was played.
func (h *Hand) FinalStreet() Street { return Street(len(h.Streets) - 1) }

// Events flattens the per-street events.
func (h *Hand) Events() []Event {
	var out []Event
	for _, s := range h.Streets {
		out = append(out, s...)
	}
	return out
}

// Folds counts fold events over the hand.
func (h *Hand) Folds() int {
	n := 0
	for _, s := range h.Streets {
		for _, e := range s {
			if e.Type == EventFold {
				n++
			}
		}
	}
	return n
}
