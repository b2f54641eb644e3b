package convert

import (
	"time"

	"github.com/lox/acpcstars/internal/game"
	"github.com/lox/acpcstars/internal/phh"
	"github.com/lox/acpcstars/internal/pokerstars"
)

// Converted is a replayed hand ready to be encoded.
type Converted struct {
	Seq     int // 1-based position among the run's records
	Hand    *game.Hand
	Outcome game.Outcome
	Table   string
	Seats   []string
	Time    time.Time
}

// Encoder turns a converted hand into output bytes. Encoders are called from
// several goroutines at once.
type Encoder interface {
	Encode(c Converted) ([]byte, error)
}

// PokerStars writes PokerStars transcripts.
type PokerStars struct {
	DescribeHands bool
}

func (e PokerStars) Encode(c Converted) ([]byte, error) {
	return pokerstars.Render(c.Hand, c.Outcome, pokerstars.Options{
		Table:         c.Table,
		Time:          c.Time,
		Seats:         c.Seats,
		DescribeHands: e.DescribeHands,
	})
}

// PHH writes numbered PHH TOML sections.
type PHH struct{}

func (PHH) Encode(c Converted) ([]byte, error) {
	h := phh.FromHand(c.Hand, c.Outcome, phh.Options{Table: c.Table, Time: c.Time})
	return phh.EncodeSection(c.Seq, h)
}

// Discard replays hands without producing output.
type Discard struct{}

func (Discard) Encode(Converted) ([]byte, error) { return nil, nil }
