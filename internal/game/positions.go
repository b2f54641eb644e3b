package game

import (
	"fmt"

	"github.com/lox/acpcstars/internal/acpc"
)

// Role is a seat's betting-order role.
type Role int

const (
	UTG Role = iota
	Button
	SmallBlind
	BigBlind
)

// Roles lists every role in declaration order.
var Roles = [...]Role{UTG, Button, SmallBlind, BigBlind}

func (r Role) String() string {
	return [...]string{"utg", "button", "small blind", "big blind"}[r]
}

// Positions maps roles to player indexes for one hand.
type Positions struct {
	players int
	index   [len(Roles)]int
}

// positionTable is keyed by player count. Heads-up uses reversed blinds: the
// button posts the small blind and acts first preflop.
var positionTable = map[int][len(Roles)]int{
	2: {UTG: 1, Button: 1, SmallBlind: 1, BigBlind: 0},
	3: {UTG: 2, Button: 2, SmallBlind: 0, BigBlind: 1},
}

// ResolvePositions returns the fixed role assignment for a player count.
func ResolvePositions(players int) (Positions, error) {
	idx, ok := positionTable[players]
	if !ok {
		return Positions{}, fmt.Errorf("%w: %d players", acpc.ErrUnsupportedPlayerCount, players)
	}
	return Positions{players: players, index: idx}, nil
}

// Players returns the player count the assignment was built for.
func (p Positions) Players() int { return p.players }

// Index returns the player holding a role.
func (p Positions) Index(r Role) int { return p.index[r] }

// RolesAt returns the roles held by a player, in declaration order.
func (p Positions) RolesAt(player int) []Role {
	var out []Role
	for _, r := range Roles {
		if p.index[r] == player {
			out = append(out, r)
		}
	}
	return out
}

// FirstToAct returns who opens a street. Post-flop the small blind opens
// three-handed and the big blind opens heads-up.
func (p Positions) FirstToAct(s Street) int {
	switch {
	case s == Preflop:
		return p.index[UTG]
	case p.players == 2:
		return p.index[BigBlind]
	default:
		return p.index[SmallBlind]
	}
}
