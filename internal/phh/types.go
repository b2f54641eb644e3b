package phh

import "time"

// HandHistory is a single hand encoded in PHH format.
//
// Fixed-limit variants carry small_bet/big_bet, no-limit variants min_bet.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	SmallBet          int      `toml:"small_bet,omitempty"`
	BigBet            int      `toml:"big_bet,omitempty"`
	MinBet            int      `toml:"min_bet,omitempty"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	TimeZone          string   `toml:"time_zone,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Timestamp time.Time `toml:"-"`
}

// Variant codes used for the games ACPC logs carry.
const (
	VariantFixedLimit = "FT"
	VariantNoLimit    = "NT"
)
