// Package statistics summarises the hands of a conversion run.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/acpcstars/internal/game"
)

// HandResult is one player's outcome in a single hand.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	WentToShowdown bool
}

// Statistics accumulates results for one player.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // every result, for the median

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64
}

// Add incorporates a hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB
}

// Mean returns big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// IsLedgerBalanced checks showdown and non-showdown results add up.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// PlayerStats pairs a player name with their statistics.
type PlayerStats struct {
	Name string
	*Statistics
}

// Collector accumulates run-level counts and per-player results. It is not
// safe for concurrent use; the converter feeds it from its writer.
type Collector struct {
	Hands          int
	Showdowns      int
	Uncontested    int
	Chops          int
	UncalledChips  int
	MaxPot         int
	MaxPotHand     int
	StreetsReached [4]int // hands whose last street was preflop, flop, turn, river

	players []PlayerStats
	index   map[string]int
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{index: make(map[string]int)}
}

// Add records a replayed hand and its outcome.
func (c *Collector) Add(hand *game.Hand, out game.Outcome) {
	c.Hands++
	if out.Showdown {
		c.Showdowns++
	} else {
		c.Uncontested++
	}
	if out.Split() {
		c.Chops++
	}
	c.UncalledChips += out.Uncalled
	if out.Pot > c.MaxPot {
		c.MaxPot = out.Pot
		c.MaxPotHand = hand.Record.ID
	}
	if s := hand.FinalStreet(); s >= game.Preflop && s <= game.River {
		c.StreetsReached[s]++
	}

	bb := float64(hand.Record.BigBlind)
	for p, net := range out.NetChips(hand.State) {
		c.player(hand.Record.Players[p]).Add(HandResult{
			NetBB:          float64(net) / bb,
			WentToShowdown: out.Showdown && !hand.State.Folded(p),
		})
	}
}

func (c *Collector) player(name string) *Statistics {
	if i, ok := c.index[name]; ok {
		return c.players[i].Statistics
	}
	c.index[name] = len(c.players)
	s := &Statistics{}
	c.players = append(c.players, PlayerStats{Name: name, Statistics: s})
	return s
}

// Players returns per-player statistics in order of first appearance.
func (c *Collector) Players() []PlayerStats {
	return append([]PlayerStats(nil), c.players...)
}

// Validate checks the run accounting is consistent.
func (c *Collector) Validate() error {
	if c.Showdowns+c.Uncontested != c.Hands {
		return fmt.Errorf("showdowns (%d) and uncontested (%d) do not add up to %d hands",
			c.Showdowns, c.Uncontested, c.Hands)
	}
	reached := 0
	for _, n := range c.StreetsReached {
		reached += n
	}
	if reached != c.Hands {
		return fmt.Errorf("streets reached total (%d) does not match hands (%d)", reached, c.Hands)
	}

	var total float64
	for _, p := range c.players {
		if !p.IsLedgerBalanced() {
			return fmt.Errorf("ledger mismatch for %s: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
				p.Name, p.AllBB, p.ShowdownBB, p.NonShowdownBB)
		}
		total += p.AllBB
	}
	if math.Abs(total) > 1e-6 {
		return fmt.Errorf("player results sum to %.6f big blinds, want 0", total)
	}
	return nil
}
