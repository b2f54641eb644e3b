package acpc

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lox/acpcstars/internal/cards"
)

const (
	stateTag   = "STATE"
	headerTag  = "# name"
	fieldCount = 6
	holeLen    = 4
	flopLen    = 6
	streetLen  = 2
)

// ParseOptions carries the run-level betting structure that records do not
// encode themselves.
type ParseOptions struct {
	Game     GameType
	BigBlind int
}

// IsState reports whether a line is a hand record. Everything else in an
// ACPC log is a header or comment.
func IsState(line string) bool {
	return strings.HasPrefix(line, stateTag)
}

// Parse turns one record line into a HandRecord.
func Parse(line string, opts ParseOptions) (HandRecord, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, ":")
	if len(fields) != fieldCount {
		return HandRecord{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fieldCount, len(fields))
	}
	if fields[0] != stateTag {
		return HandRecord{}, fmt.Errorf("%w: record must start with %s", ErrMalformedRecord, stateTag)
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil || id < 0 {
		return HandRecord{}, fmt.Errorf("%w: invalid hand id %q", ErrMalformedRecord, fields[1])
	}

	names := strings.Split(fields[5], "|")
	if n := len(names); n < MinPlayers || n > MaxPlayers {
		return HandRecord{}, fmt.Errorf("%w: %d players", ErrUnsupportedPlayerCount, n)
	}
	for i, name := range names {
		if name == "" {
			return HandRecord{}, fmt.Errorf("%w: empty player name", ErrMalformedRecord)
		}
		if slices.Contains(names[:i], name) {
			return HandRecord{}, fmt.Errorf("%w: duplicate player %q", ErrMalformedRecord, name)
		}
	}

	rawResults := strings.Split(fields[4], "|")
	if len(rawResults) != len(names) {
		return HandRecord{}, fmt.Errorf("%w: %d results for %d players", ErrInconsistentResults, len(rawResults), len(names))
	}
	results := make([]float64, len(rawResults))
	for i, raw := range rawResults {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return HandRecord{}, fmt.Errorf("%w: invalid result %q", ErrMalformedRecord, raw)
		}
		results[i] = v
	}

	actions := strings.Split(fields[2], "/")
	if len(actions) < 1 || len(actions) > MaxStreets {
		return HandRecord{}, fmt.Errorf("%w: %d streets", ErrInvalidStreetCount, len(actions))
	}

	hole, board, err := splitCards(fields[3])
	if err != nil {
		return HandRecord{}, err
	}
	if len(actions) != len(board)+1 {
		return HandRecord{}, fmt.Errorf("%w: %d streets but %d board groups", ErrInconsistentStreets, len(actions), len(board))
	}
	if len(hole) != len(names) {
		return HandRecord{}, fmt.Errorf("%w: %d hole card groups for %d players", ErrMalformedRecord, len(hole), len(names))
	}

	rec := HandRecord{
		ID:        id,
		Players:   names,
		HoleCards: hole,
		Board:     board,
		Actions:   actions,
		Results:   results,
		Game:      opts.Game,
		BigBlind:  opts.BigBlind,
	}
	if err := rec.Validate(); err != nil {
		return HandRecord{}, err
	}
	return rec, nil
}

// splitCards separates hole card groups from the board. The last '|' group
// holds the final player's hole cards followed by the board streets.
func splitCards(field string) (hole, board []string, err error) {
	groups := strings.Split(field, "|")
	tail := strings.Split(groups[len(groups)-1], "/")
	hole = append(append([]string{}, groups[:len(groups)-1]...), tail[0])
	board = tail[1:]

	for _, h := range hole {
		if len(h) != holeLen {
			return nil, nil, fmt.Errorf("%w: hole cards %q", ErrMalformedRecord, h)
		}
		if _, err := cards.Split(h); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	}
	for i, b := range board {
		want := streetLen
		if i == 0 {
			want = flopLen
		}
		if len(b) != want {
			return nil, nil, fmt.Errorf("%w: board group %q", ErrMalformedRecord, b)
		}
		if _, err := cards.Split(b); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	}
	return hole, board, nil
}

// Header holds the match parameters found on an ACPC log's "# name" line.
type Header struct {
	Table   string
	Game    GameType
	HasGame bool
}

// ParseHeader reads a line such as
//
//	# name/game/hands/seed match holdem.limit.2p.reverse_blinds.game 3000 8
//
// The last token identifies the table and the second dot-separated part of
// the game definition names the betting structure.
func ParseHeader(line string) (Header, bool) {
	if !strings.HasPrefix(line, headerTag) {
		return Header{}, false
	}
	params := strings.Fields(strings.TrimSpace(line))
	if len(params) < 3 {
		return Header{}, false
	}
	h := Header{Table: params[len(params)-1]}
	if len(params) > 3 {
		if parts := strings.Split(params[3], "."); len(parts) > 1 {
			if g, err := ParseGameType(parts[1]); err == nil {
				h.Game = g
				h.HasGame = true
			}
		}
	}
	return h, true
}
