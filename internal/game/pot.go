package game

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Outcome is how a hand's pot is awarded.
type Outcome struct {
	Pot        int             // chips in the pot after any uncalled bet is returned
	Showdown   bool            // two or more players reached the end
	ShowOrder  []int           // players revealing cards, in showdown order
	Winners    []int           // winning players, in showdown order
	Share      decimal.Decimal // amount credited to each winner
	Uncalled   int             // unmatched part of the last bet, returned to UncalledTo
	UncalledTo int
}

// Split reports whether more than one player shares the pot.
func (o Outcome) Split() bool { return len(o.Winners) > 1 }

// ShareText formats a winner's share: whole chips for a single winner, two
// decimals for a split pot.
func (o Outcome) ShareText() string {
	if !o.Split() {
		return strconv.Itoa(o.Pot)
	}
	return o.Share.StringFixed(2)
}

// IsWinner reports whether a player is credited with part of the pot.
func (o Outcome) IsWinner(p int) bool {
	for _, w := range o.Winners {
		if w == p {
			return true
		}
	}
	return false
}

// Payouts distributes the pot in whole chips, handing odd chips to winners in
// showdown order, and adds the uncalled return.
func (o Outcome) Payouts(players int) []int {
	out := make([]int, players)
	if len(o.Winners) > 0 {
		each := o.Pot / len(o.Winners)
		rem := o.Pot % len(o.Winners)
		for i, w := range o.Winners {
			out[w] += each
			if i < rem {
				out[w]++
			}
		}
	}
	if o.Uncalled > 0 {
		out[o.UncalledTo] += o.Uncalled
	}
	return out
}

// NetChips is each player's chip result given what they wagered.
func (o Outcome) NetChips(state *HandState) []int {
	pay := o.Payouts(len(state.Totals))
	for p, t := range state.Totals {
		pay[p] -= t
	}
	return pay
}

// ResolvePot awards the pot. A single remaining player collects everything
// except the unmatched part of the last bet. Otherwise the winners are the
// remaining players with a positive net result, or all of them when nobody
// finished ahead.
func ResolvePot(state *HandState, results []float64) (Outcome, error) {
	if len(results) != len(state.Totals) {
		return Outcome{}, fmt.Errorf("game: %d results for %d players", len(results), len(state.Totals))
	}
	active := state.Active()
	switch len(active) {
	case 0:
		return Outcome{}, fmt.Errorf("%w: every player folded", ErrInvalidActionStream)
	case 1:
		return resolveUncontested(state, active[0]), nil
	}

	n := len(state.Totals)
	out := Outcome{Showdown: true, Pot: state.Wagered(), UncalledTo: -1}
	for i := 0; i < n; i++ {
		p := (state.NextToAct + i) % n
		if state.Folded(p) {
			continue
		}
		out.ShowOrder = append(out.ShowOrder, p)
		if results[p] > 0 {
			out.Winners = append(out.Winners, p)
		}
	}
	if len(out.Winners) == 0 {
		out.Winners = append([]int(nil), out.ShowOrder...)
	}
	out.Share = decimal.NewFromInt(int64(out.Pot)).
		Div(decimal.NewFromInt(int64(len(out.Winners)))).
		Round(2)
	return out, nil
}

func resolveUncontested(state *HandState, winner int) Outcome {
	maxOther := 0
	for p, t := range state.Totals {
		if p != winner && t > maxOther {
			maxOther = t
		}
	}
	uncalled := min(state.LastIncrement, state.Totals[winner]-maxOther)
	if uncalled < 0 {
		uncalled = 0
	}
	pot := state.Wagered() - uncalled
	out := Outcome{
		Pot:        pot,
		Winners:    []int{winner},
		Share:      decimal.NewFromInt(int64(pot)),
		Uncalled:   uncalled,
		UncalledTo: winner,
	}
	if uncalled == 0 {
		out.UncalledTo = -1
	}
	return out
}
