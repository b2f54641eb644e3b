// Package pokerstars renders replayed hands in the PokerStars hand history
// text format.
package pokerstars

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lox/acpcstars/internal/acpc"
	"github.com/lox/acpcstars/internal/cards"
	"github.com/lox/acpcstars/internal/game"
)

const timeLayout = "2006/01/02 15:04:05 ET"

// ErrUnknownSeat is returned when a hand's players do not match the seat map.
var ErrUnknownSeat = errors.New("pokerstars: player not in seat map")

// Options control how a hand is rendered.
type Options struct {
	Table string
	Time  time.Time

	// Seats is the seat order for the whole run, normally the players of the
	// first hand. Nil uses the hand's own player order.
	Seats []string

	// DescribeHands appends made-hand names to showdown lines when the full
	// board was dealt.
	DescribeHands bool
}

type transcript struct {
	buf  bytes.Buffer
	hand *game.Hand
	rec  acpc.HandRecord
	out  game.Outcome
	opts Options

	seats    []string
	seatOf   []int // player index -> seat index
	playerAt []int // seat index -> player index
}

// Render writes one hand as a PokerStars transcript block, including the
// trailing blank lines that separate hands.
func Render(hand *game.Hand, out game.Outcome, opts Options) ([]byte, error) {
	t := &transcript{hand: hand, rec: hand.Record, out: out, opts: opts}
	if err := t.mapSeats(); err != nil {
		return nil, err
	}

	t.header()
	for s, events := range hand.Streets {
		street := game.Street(s)
		if street == game.Preflop {
			t.preflop(events)
			continue
		}
		t.board(street)
		t.actions(events)
	}
	t.showdown()
	t.summary()
	t.buf.WriteString("\n\n\n")
	return t.buf.Bytes(), nil
}

func (t *transcript) mapSeats() error {
	n := len(t.rec.Players)
	t.seats = t.opts.Seats
	if t.seats == nil {
		t.seats = t.rec.Players
	}
	if len(t.seats) != n {
		return fmt.Errorf("%w: %d seats for %d players", ErrUnknownSeat, len(t.seats), n)
	}

	t.seatOf = make([]int, n)
	t.playerAt = make([]int, n)
	taken := make([]bool, n)
	for p, name := range t.rec.Players {
		seat := slices.Index(t.seats, name)
		if seat < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownSeat, name)
		}
		if taken[seat] {
			return fmt.Errorf("%w: %q seated twice", ErrUnknownSeat, name)
		}
		taken[seat] = true
		t.seatOf[p] = seat
		t.playerAt[seat] = p
	}
	return nil
}

func (t *transcript) name(p int) string { return t.rec.Players[p] }

func (t *transcript) stakes() string {
	bb := t.rec.BigBlind
	if t.rec.Game == acpc.NoLimit {
		return fmt.Sprintf("Hold'em No Limit ($%d/$%d USD)", bb/2, bb)
	}
	return fmt.Sprintf("Hold'em Limit ($%d/$%d)", bb, bb*2)
}

func (t *transcript) header() {
	fmt.Fprintf(&t.buf, "PokerStars Game #%s%04d:  %s - %s\n",
		t.opts.Table, t.rec.ID, t.stakes(), t.opts.Time.Format(timeLayout))

	size := "6-max"
	if len(t.rec.Players) == 2 {
		size = "2-max"
	}
	button := t.seatOf[t.hand.Positions.Index(game.Button)] + 1
	fmt.Fprintf(&t.buf, "Table '%s' %s Seat #%d is the button\n", t.opts.Table, size, button)
	for i, name := range t.seats {
		fmt.Fprintf(&t.buf, "Seat %d: %s ($%d in chips)\n", i+1, name, game.StartingStack)
	}
}

// preflop writes the blind posts ahead of the hole cards, then the rest of
// the round.
func (t *transcript) preflop(events []game.Event) {
	rest := events
	for len(rest) > 0 && !rest[0].IsVoluntary() {
		t.action(rest[0])
		rest = rest[1:]
	}
	t.buf.WriteString("*** HOLE CARDS ***\n")
	for p := range t.rec.Players {
		fmt.Fprintf(&t.buf, "Dealt to %s [%s]\n", t.name(p), cards.Join(t.rec.Hole(p)))
	}
	t.actions(rest)
}

func (t *transcript) board(s game.Street) {
	flop := cards.Join(t.rec.BoardThrough(1))
	switch s {
	case game.Flop:
		fmt.Fprintf(&t.buf, "*** FLOP *** [%s]\n", flop)
	case game.Turn:
		fmt.Fprintf(&t.buf, "*** TURN *** [%s] [%s]\n", flop, t.rec.Board[1])
	case game.River:
		fmt.Fprintf(&t.buf, "*** RIVER *** [%s] [%s] [%s]\n", flop, t.rec.Board[1], t.rec.Board[2])
	}
}

func (t *transcript) actions(events []game.Event) {
	for _, e := range events {
		t.action(e)
	}
}

func (t *transcript) action(e game.Event) {
	name := t.name(e.Player)
	switch e.Type {
	case game.EventPostSmallBlind:
		fmt.Fprintf(&t.buf, "%s: posts small blind $%d\n", name, e.Amount)
	case game.EventPostBigBlind:
		fmt.Fprintf(&t.buf, "%s: posts big blind $%d\n", name, e.Amount)
	case game.EventFold:
		fmt.Fprintf(&t.buf, "%s: folds\n", name)
	case game.EventCheck:
		fmt.Fprintf(&t.buf, "%s: checks\n", name)
	case game.EventCall:
		fmt.Fprintf(&t.buf, "%s: calls $%d\n", name, e.Amount)
	case game.EventBet:
		fmt.Fprintf(&t.buf, "%s: bets $%d\n", name, e.Amount)
	case game.EventRaise:
		fmt.Fprintf(&t.buf, "%s: raises $%d to $%d\n", name, e.Amount, e.To)
	}
}

func (t *transcript) showdown() {
	if !t.out.Showdown {
		winner := t.out.Winners[0]
		if t.out.Uncalled > 0 {
			fmt.Fprintf(&t.buf, "Uncalled bet ($%d) returned to %s\n", t.out.Uncalled, t.name(t.out.UncalledTo))
		}
		fmt.Fprintf(&t.buf, "%s collected $%d from pot\n", t.name(winner), t.out.Pot)
		return
	}

	t.buf.WriteString("*** SHOW DOWN ***\n")
	board := t.rec.BoardThrough(len(t.rec.Board))
	for _, p := range t.out.ShowOrder {
		hole := t.rec.Hole(p)
		fmt.Fprintf(&t.buf, "%s: shows [%s]", t.name(p), cards.Join(hole))
		if t.opts.DescribeHands && len(board) == 5 {
			if desc, err := cards.Describe(hole, board); err == nil {
				fmt.Fprintf(&t.buf, " (%s)", desc)
			}
		}
		t.buf.WriteByte('\n')
	}
	for _, w := range t.out.Winners {
		fmt.Fprintf(&t.buf, "%s collected $%s from pot\n", t.name(w), t.out.ShareText())
	}
}

var foldedOn = [...]string{
	game.Preflop: "folded before Flop",
	game.Flop:    "folded on the Flop",
	game.Turn:    "folded on the Turn",
	game.River:   "folded on the River",
}

// finalWord is the summary descriptor for a player.
func (t *transcript) finalWord(p int) string {
	state := t.hand.State
	if state.Folded(p) {
		word := foldedOn[state.FoldedOn[p]]
		if state.Totals[p] == 0 {
			word += " (didn't bet)"
		}
		return word
	}
	if !t.out.IsWinner(p) {
		return "mucked"
	}
	if t.out.Showdown {
		return fmt.Sprintf("won ($%s)", t.out.ShareText())
	}
	return fmt.Sprintf("collected ($%d)", t.out.Pot)
}

func (t *transcript) summary() {
	t.buf.WriteString("*** SUMMARY ***\n")
	fmt.Fprintf(&t.buf, "Total pot $%d\n", t.out.Pot)
	if len(t.rec.Board) > 0 {
		fmt.Fprintf(&t.buf, "Board [%s]\n", cards.Join(t.rec.BoardThrough(len(t.rec.Board))))
	}

	pos := t.hand.Positions
	for i, name := range t.seats {
		p := t.playerAt[i]
		fmt.Fprintf(&t.buf, "Seat %d: %s ", i+1, name)
		for _, r := range []game.Role{game.Button, game.SmallBlind, game.BigBlind} {
			if pos.Index(r) == p {
				fmt.Fprintf(&t.buf, "(%s) ", r)
			}
		}
		t.buf.WriteString(t.finalWord(p))
		t.buf.WriteByte('\n')
	}
}
