package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/acpcstars/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeSection encodes a hand as one numbered section of a multi-hand
// file, followed by a blank line.
func EncodeSection(section int, hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[%d]\n", section)
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// FormatEvent converts a replayed event to a PHH action string for the
// player numbered seat (zero based). Blind posts are captured by
// blinds_or_straddles and are not emitted.
func FormatEvent(seat int, e game.Event) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch e.Type {
	case game.EventFold:
		return player + " f", true
	case game.EventCheck, game.EventCall:
		return player + " cc", true
	case game.EventBet, game.EventRaise:
		if e.To <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", player, e.To), true
	default:
		return "", false
	}
}
