// Package acpc parses hand records written in the Annual Computer Poker
// Competition log notation.
//
// A record is a single line:
//
//	STATE:<id>:<actions>:<cards>:<results>:<names>
//
// where actions are '/'-separated per street, cards are '|'-separated hole
// card groups whose last group also carries the board ('/'-separated per
// street), results are '|'-separated signed floats and names are
// '|'-separated identifiers.
package acpc

import (
	"errors"
	"fmt"
	"strings"
)

// GameType selects the betting structure.
type GameType int

const (
	Limit GameType = iota
	NoLimit
)

func (g GameType) String() string {
	switch g {
	case Limit:
		return "limit"
	case NoLimit:
		return "nolimit"
	default:
		return fmt.Sprintf("GameType(%d)", int(g))
	}
}

// ParseGameType accepts the names used on the command line and in ACPC game
// definitions.
func ParseGameType(s string) (GameType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "limit":
		return Limit, nil
	case "nolimit", "no-limit", "no_limit":
		return NoLimit, nil
	default:
		return 0, fmt.Errorf("acpc: unknown game type %q", s)
	}
}

// DefaultBigBlind returns the blind size ACPC matches use for a game type.
func (g GameType) DefaultBigBlind() int {
	if g == NoLimit {
		return 100
	}
	return 10
}

const (
	MinPlayers = 2
	MaxPlayers = 3
	MaxStreets = 4
)

// HandRecord is one parsed hand. It is not modified after parsing.
type HandRecord struct {
	ID        int
	Players   []string
	HoleCards []string   // one 4-character group per player
	Board     []string   // one group per post-flop street
	Actions   []string   // raw action tokens per street
	Results   []float64  // net result per player
	Game      GameType
	BigBlind  int
}

// Streets returns the number of betting rounds played.
func (r HandRecord) Streets() int { return len(r.Actions) }

// SmallBlind is half the big blind.
func (r HandRecord) SmallBlind() int { return r.BigBlind / 2 }

// BoardThrough returns the community cards visible on a street, split into
// individual cards (street 0 has none).
func (r HandRecord) BoardThrough(street int) []string {
	var out []string
	for i := 0; i < street && i < len(r.Board); i++ {
		group := r.Board[i]
		for j := 0; j+1 < len(group); j += 2 {
			out = append(out, group[j:j+2])
		}
	}
	return out
}

// Hole returns a player's two hole cards.
func (r HandRecord) Hole(player int) []string {
	g := r.HoleCards[player]
	return []string{g[0:2], g[2:4]}
}

// Validate checks the structural invariants of a record.
func (r HandRecord) Validate() error {
	n := len(r.Players)
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: %d players", ErrUnsupportedPlayerCount, n)
	}
	if len(r.Results) != n {
		return fmt.Errorf("%w: %d results for %d players", ErrInconsistentResults, len(r.Results), n)
	}
	if s := len(r.Actions); s < 1 || s > MaxStreets {
		return fmt.Errorf("%w: %d streets", ErrInvalidStreetCount, s)
	}
	if len(r.Actions) != len(r.Board)+1 {
		return fmt.Errorf("%w: %d streets but %d board groups", ErrInconsistentStreets, len(r.Actions), len(r.Board))
	}
	if len(r.HoleCards) != n {
		return fmt.Errorf("%w: %d hole card groups for %d players", ErrMalformedRecord, len(r.HoleCards), n)
	}
	if r.BigBlind <= 0 || r.BigBlind%2 != 0 {
		return fmt.Errorf("acpc: big blind must be a positive even number, got %d", r.BigBlind)
	}
	return nil
}

var (
	// ErrMalformedRecord is returned when a line does not have the record shape.
	ErrMalformedRecord = errors.New("acpc: malformed record")

	// ErrUnsupportedPlayerCount is returned for hands with other than 2 or 3 players.
	ErrUnsupportedPlayerCount = errors.New("acpc: unsupported player count")

	// ErrInconsistentResults is returned when results and players disagree in length.
	ErrInconsistentResults = errors.New("acpc: inconsistent results")

	ErrInvalidStreetCount  = errors.New("acpc: invalid street count")
	ErrInconsistentStreets = errors.New("acpc: inconsistent streets")
)
