package phh

import (
	"fmt"
	"time"

	"github.com/lox/acpcstars/internal/acpc"
	"github.com/lox/acpcstars/internal/game"
)

// Options describe the run a hand belongs to.
type Options struct {
	Table string
	Time  time.Time
}

// FromHand builds the PHH record of a replayed hand. Players are numbered
// from the small blind, the order PHH uses for blinds_or_straddles.
func FromHand(hand *game.Hand, out game.Outcome, opts Options) *HandHistory {
	rec := hand.Record
	n := len(rec.Players)
	sb := hand.Positions.Index(game.SmallBlind)

	order := make([]int, n) // PHH seat -> player index
	seatOf := make([]int, n)
	for i := range order {
		p := (sb + i) % n
		order[i] = p
		seatOf[p] = i
	}

	h := &HandHistory{
		Table:             opts.Table,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Players:           make([]string, n),
		HandID:            fmt.Sprintf("%s%04d", opts.Table, rec.ID),
		Timestamp:         opts.Time,
	}
	if rec.Game == acpc.NoLimit {
		h.Variant = VariantNoLimit
		h.MinBet = rec.BigBlind
	} else {
		h.Variant = VariantFixedLimit
		h.SmallBet = rec.BigBlind
		h.BigBet = rec.BigBlind * 2
	}
	h.BlindsOrStraddles[seatOf[hand.Positions.Index(game.SmallBlind)]] = rec.SmallBlind()
	h.BlindsOrStraddles[seatOf[hand.Positions.Index(game.BigBlind)]] = rec.BigBlind

	net := out.NetChips(hand.State)
	won := out.Payouts(n)
	if out.Uncalled > 0 {
		won[out.UncalledTo] -= out.Uncalled
	}
	for i, p := range order {
		h.Seats[i] = i + 1
		h.Players[i] = rec.Players[p]
		h.StartingStacks[i] = game.StartingStack
		h.FinishingStacks[i] = game.StartingStack + net[p]
		h.Winnings[i] = won[p]
	}

	for i, p := range order {
		h.Actions = append(h.Actions, fmt.Sprintf("d dh p%d %s", i+1, rec.HoleCards[p]))
	}
	for s, events := range hand.Streets {
		if s > 0 {
			h.Actions = append(h.Actions, "d db "+rec.Board[s-1])
		}
		for _, e := range events {
			if action, ok := FormatEvent(seatOf[e.Player], e); ok {
				h.Actions = append(h.Actions, action)
			}
		}
	}
	for _, p := range out.ShowOrder {
		h.Actions = append(h.Actions, fmt.Sprintf("p%d sm %s", seatOf[p]+1, rec.HoleCards[p]))
	}

	populateTimeFields(h)
	return h
}

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	utc := t.UTC()
	hist.Time = utc.Format("15:04:05")
	hist.TimeZone = "UTC"
	hist.Day = utc.Day()
	hist.Month = int(utc.Month())
	hist.Year = utc.Year()
}
