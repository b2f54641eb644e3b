package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lox/acpcstars/internal/acpc"
)

// ErrInvalidActionStream is returned when a token string cannot be replayed.
var ErrInvalidActionStream = errors.New("game: invalid action stream")

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// TokenKind is the action encoded by one ACPC token.
type TokenKind int

const (
	TokenFold TokenKind = iota
	TokenCheckCall
	TokenBetRaise
)

// Token is one parsed action. Target is the absolute amount the actor will
// have wagered in the hand after a no-limit bet or raise.
type Token struct {
	Kind      TokenKind
	Target    int
	HasTarget bool
}

// Tokenize scans a street's action string. No-limit raises must carry their
// target as contiguous digits; limit raises carry none.
func Tokenize(raw string, g acpc.GameType) ([]Token, error) {
	tokens := make([]Token, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 'f':
			tokens = append(tokens, Token{Kind: TokenFold})
		case 'c':
			tokens = append(tokens, Token{Kind: TokenCheckCall})
		case 'r':
			tok := Token{Kind: TokenBetRaise}
			if g == acpc.NoLimit {
				j := i + 1
				for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
					j++
				}
				if j == i+1 {
					return nil, fmt.Errorf("%w: raise without size at offset %d in %q", ErrInvalidActionStream, i, raw)
				}
				target, err := strconv.Atoi(raw[i+1 : j])
				if err != nil {
					return nil, fmt.Errorf("%w: raise size at offset %d in %q: %w", ErrInvalidActionStream, i, raw, err)
				}
				tok.Target = target
				tok.HasTarget = true
				i = j - 1
			}
			tokens = append(tokens, tok)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidActionStream, raw[i], i, raw)
		}
	}
	return tokens, nil
}

// StartingStack is the chip count every player begins a hand with. ACPC logs
// carry no stacks, so output formats show this fixed value.
const StartingStack = 20000

// Rules is the betting structure shared by every hand in a run.
type Rules struct {
	Game     acpc.GameType
	BigBlind int
}

// SmallBlind is half the big blind.
func (r Rules) SmallBlind() int { return r.BigBlind / 2 }

// DefaultIncrement returns the bet size a street starts with. Limit doubles
// on the turn; no-limit only has a default preflop and otherwise takes its
// size from each explicit raise.
func (r Rules) DefaultIncrement(s Street) int {
	if r.Game == acpc.Limit {
		if s == Preflop || s == Flop {
			return r.BigBlind
		}
		return r.BigBlind * 2
	}
	if s == Preflop {
		return r.BigBlind
	}
	return 0
}

// ResolveRaiseIncrement converts a no-limit absolute target into the size of
// the raise on top of the amount owed.
func ResolveRaiseIncrement(targetTotal, priorHandTotal, priorStreetContribution, amountOwed int) int {
	return targetTotal - (priorHandTotal + priorStreetContribution) - amountOwed
}

// StreetState is the betting state for a single round.
type StreetState struct {
	Street        Street
	Contributions []int
	Level         int
	Increment     int
	Actor         int
}

func newStreetState(s Street, rules Rules, pos Positions) *StreetState {
	st := &StreetState{
		Street:        s,
		Contributions: make([]int, pos.Players()),
		Increment:     rules.DefaultIncrement(s),
		Actor:         pos.FirstToAct(s),
	}
	if s == Preflop {
		st.Contributions[pos.Index(SmallBlind)] += rules.SmallBlind()
		st.Contributions[pos.Index(BigBlind)] += rules.BigBlind
		st.Level = rules.BigBlind
	}
	return st
}

// ReplayStreet applies one street's tokens to the hand state and returns the
// events in the order they happened.
func ReplayStreet(state *HandState, s Street, tokens []Token, rules Rules, pos Positions) ([]Event, error) {
	st := newStreetState(s, rules, pos)
	events := make([]Event, 0, len(tokens)+2)
	if s == Preflop {
		events = append(events,
			Event{Street: s, Player: pos.Index(SmallBlind), Type: EventPostSmallBlind, Amount: rules.SmallBlind()},
			Event{Street: s, Player: pos.Index(BigBlind), Type: EventPostBigBlind, Amount: rules.BigBlind},
		)
	}

	n := pos.Players()
	for i, tok := range tokens {
		if state.ActiveCount() < 2 {
			return nil, fmt.Errorf("%w: %s token %d after the hand was decided", ErrInvalidActionStream, s, i)
		}
		actor, err := state.nextActive(st.Actor)
		if err != nil {
			return nil, err
		}
		owed := st.Level - st.Contributions[actor]

		switch tok.Kind {
		case TokenFold:
			state.FoldedOn[actor] = s
			events = append(events, Event{Street: s, Player: actor, Type: EventFold})
		case TokenCheckCall:
			if owed == 0 {
				events = append(events, Event{Street: s, Player: actor, Type: EventCheck})
				break
			}
			st.Contributions[actor] += owed
			events = append(events, Event{Street: s, Player: actor, Type: EventCall, Amount: owed})
		case TokenBetRaise:
			incr := st.Increment
			if tok.HasTarget {
				incr = ResolveRaiseIncrement(tok.Target, state.Totals[actor], st.Contributions[actor], owed)
			}
			if incr <= 0 {
				return nil, fmt.Errorf("%w: %s raise by player %d resolves to increment %d", ErrInvalidActionStream, s, actor, incr)
			}
			st.Increment = incr
			st.Contributions[actor] += owed + incr
			st.Level += incr
			typ := EventBet
			if owed > 0 || s == Preflop {
				typ = EventRaise
			}
			events = append(events, Event{Street: s, Player: actor, Type: typ, Amount: incr, To: st.Level})
		}
		st.Actor = (actor + 1) % n
	}

	for p, c := range st.Contributions {
		state.Totals[p] += c
	}
	state.LastIncrement = st.Increment
	state.NextToAct = st.Actor
	state.Reached = s
	return events, nil
}
