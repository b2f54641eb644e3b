package game

import "fmt"

// EventType identifies what a player did.
type EventType int

const (
	EventPostSmallBlind EventType = iota
	EventPostBigBlind
	EventFold
	EventCheck
	EventCall
	EventBet
	EventRaise
)

func (e EventType) String() string {
	return [...]string{"post_small_blind", "post_big_blind", "fold", "check", "call", "bet", "raise"}[e]
}

// Event is a single action reconstructed from the token stream.
//
// Amount is the chips put in by a post or call, or the increment of a bet or
// raise. To is the player's street total after a bet or raise.
type Event struct {
	Street Street
	Player int
	Type   EventType
	Amount int
	To     int
}

func (e Event) String() string {
	switch e.Type {
	case EventFold, EventCheck:
		return fmt.Sprintf("%s p%d %s", e.Street, e.Player, e.Type)
	case EventBet, EventRaise:
		return fmt.Sprintf("%s p%d %s %d to %d", e.Street, e.Player, e.Type, e.Amount, e.To)
	default:
		return fmt.Sprintf("%s p%d %s %d", e.Street, e.Player, e.Type, e.Amount)
	}
}

// IsVoluntary reports whether the event came from an action token rather
// than a forced blind.
func (e Event) IsVoluntary() bool {
	return e.Type != EventPostSmallBlind && e.Type != EventPostBigBlind
}
