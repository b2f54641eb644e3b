// Package cards validates and splits the two-character card notation used by
// ACPC logs (rank then suit, e.g. "Ah", "Td") and describes made hands.
package cards

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

// ErrInvalidCard is returned for text that is not a run of valid cards.
var ErrInvalidCard = errors.New("cards: invalid card")

const (
	ranks = "23456789TJQKA"
	suits = "cdhs"
)

// Valid reports whether card is a single rank+suit pair.
func Valid(card string) bool {
	if len(card) != 2 {
		return false
	}
	return strings.IndexByte(ranks, card[0]) >= 0 && strings.IndexByte(suits, card[1]) >= 0
}

// Split breaks a run such as "AhKs" into ["Ah", "Ks"].
func Split(run string) ([]string, error) {
	if len(run) == 0 || len(run)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, run)
	}
	out := make([]string, 0, len(run)/2)
	for i := 0; i < len(run); i += 2 {
		card := run[i : i+2]
		if !Valid(card) {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidCard, card, run)
		}
		out = append(out, card)
	}
	return out, nil
}

// Join renders cards separated by spaces, the way transcripts show them.
func Join(cards []string) string {
	return strings.Join(cards, " ")
}

// Describe names the best hand made from hole cards and a complete five-card
// board, e.g. "a pair of Kings". It returns an error for fewer than seven cards.
func Describe(hole, board []string) (string, error) {
	all := make([]string, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	if len(all) != 7 {
		return "", fmt.Errorf("cards: need 7 cards to describe a hand, got %d", len(all))
	}

	pcs := make([]poker.Card, len(all))
	for i, c := range all {
		pc, err := toPoker(c)
		if err != nil {
			return "", err
		}
		pcs[i] = pc
	}
	return poker.Describe(pcs)
}

func toPoker(card string) (poker.Card, error) {
	if !Valid(card) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, card)
	}
	var s poker.Suit
	switch card[1] {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	case 's':
		s = poker.Spade
	}
	// Library ranks run 1..13 with the ace low.
	r := poker.Rank(strings.IndexByte(ranks, card[0]) + 2)
	if card[0] == 'A' {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
