package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/acpcstars/internal/acpc"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens, err := Tokenize("rrcf", acpc.Limit)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: TokenBetRaise},
		{Kind: TokenBetRaise},
		{Kind: TokenCheckCall},
		{Kind: TokenFold},
	}, tokens)

	tokens, err = Tokenize("r250r19500cf", acpc.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: TokenBetRaise, Target: 250, HasTarget: true},
		{Kind: TokenBetRaise, Target: 19500, HasTarget: true},
		{Kind: TokenCheckCall},
		{Kind: TokenFold},
	}, tokens)

	tokens, err = Tokenize("", acpc.NoLimit)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeRejectsBadStreams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		game acpc.GameType
	}{
		{"bare no-limit raise", "rc", acpc.NoLimit},
		{"trailing no-limit raise", "cr", acpc.NoLimit},
		{"unknown token", "cx", acpc.Limit},
		{"digits in limit", "r200", acpc.Limit},
		{"overflowing target", "r99999999999999999999c", acpc.NoLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Tokenize(tt.raw, tt.game)
			assert.ErrorIs(t, err, ErrInvalidActionStream)
		})
	}
}

func TestResolveRaiseIncrement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                             string
		target, prior, contributed, owed int
		want                             int
	}{
		{"open with nothing in", 200, 0, 0, 0, 200},
		{"small blind raise preflop", 300, 0, 50, 50, 200},
		{"reraise over small blind", 700, 0, 50, 200, 450},
		{"postflop bet", 600, 300, 0, 0, 300},
		{"postflop raise", 1800, 300, 0, 300, 1200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveRaiseIncrement(tt.target, tt.prior, tt.contributed, tt.owed), tt.name)
	}
}

func TestDefaultIncrement(t *testing.T) {
	t.Parallel()

	limit := Rules{Game: acpc.Limit, BigBlind: 10}
	assert.Equal(t, 10, limit.DefaultIncrement(Preflop))
	assert.Equal(t, 10, limit.DefaultIncrement(Flop))
	assert.Equal(t, 20, limit.DefaultIncrement(Turn))
	assert.Equal(t, 20, limit.DefaultIncrement(River))

	nl := Rules{Game: acpc.NoLimit, BigBlind: 100}
	assert.Equal(t, 100, nl.DefaultIncrement(Preflop))
	assert.Equal(t, 0, nl.DefaultIncrement(Flop))
	assert.Equal(t, 50, nl.SmallBlind())
}

func replayStreet(t *testing.T, state *HandState, s Street, raw string, rules Rules) []Event {
	t.Helper()
	pos, err := ResolvePositions(len(state.Totals))
	require.NoError(t, err)
	tokens, err := Tokenize(raw, rules.Game)
	require.NoError(t, err)
	events, err := ReplayStreet(state, s, tokens, rules, pos)
	require.NoError(t, err)
	return events
}

func TestReplayStreetPreflopLimitHeadsUp(t *testing.T) {
	t.Parallel()

	rules := Rules{Game: acpc.Limit, BigBlind: 10}
	state := NewHandState(2)
	events := replayStreet(t, state, Preflop, "rrc", rules)

	assert.Equal(t, []Event{
		{Street: Preflop, Player: 1, Type: EventPostSmallBlind, Amount: 5},
		{Street: Preflop, Player: 0, Type: EventPostBigBlind, Amount: 10},
		{Street: Preflop, Player: 1, Type: EventRaise, Amount: 10, To: 20},
		{Street: Preflop, Player: 0, Type: EventRaise, Amount: 10, To: 30},
		{Street: Preflop, Player: 1, Type: EventCall, Amount: 10},
	}, events)
	assert.Equal(t, []int{30, 30}, state.Totals)
	assert.Equal(t, 0, state.NextToAct)
	assert.Equal(t, Preflop, state.Reached)
}

func TestReplayStreetBigBlindOptionCountsAsRaise(t *testing.T) {
	t.Parallel()

	rules := Rules{Game: acpc.Limit, BigBlind: 10}
	state := NewHandState(2)
	events := replayStreet(t, state, Preflop, "crc", rules)

	require.Len(t, events, 5)
	assert.Equal(t, Event{Street: Preflop, Player: 1, Type: EventCall, Amount: 5}, events[2])
	assert.Equal(t, Event{Street: Preflop, Player: 0, Type: EventRaise, Amount: 10, To: 20}, events[3])
	assert.Equal(t, Event{Street: Preflop, Player: 1, Type: EventCall, Amount: 10}, events[4])
}

func TestReplayStreetPostflopBetAndDoubledIncrement(t *testing.T) {
	t.Parallel()

	rules := Rules{Game: acpc.Limit, BigBlind: 10}
	state := NewHandState(2)
	replayStreet(t, state, Preflop, "cc", rules)

	flop := replayStreet(t, state, Flop, "rc", rules)
	assert.Equal(t, []Event{
		{Street: Flop, Player: 0, Type: EventBet, Amount: 10, To: 10},
		{Street: Flop, Player: 1, Type: EventCall, Amount: 10},
	}, flop)

	turn := replayStreet(t, state, Turn, "crrc", rules)
	assert.Equal(t, []Event{
		{Street: Turn, Player: 0, Type: EventCheck},
		{Street: Turn, Player: 1, Type: EventBet, Amount: 20, To: 20},
		{Street: Turn, Player: 0, Type: EventRaise, Amount: 20, To: 40},
		{Street: Turn, Player: 1, Type: EventCall, Amount: 20},
	}, turn)
	assert.Equal(t, []int{60, 60}, state.Totals)
	assert.Equal(t, 20, state.LastIncrement)
}

func TestReplayStreetNoLimitThreeHanded(t *testing.T) {
	t.Parallel()

	rules := Rules{Game: acpc.NoLimit, BigBlind: 100}
	state := NewHandState(3)
	events := replayStreet(t, state, Preflop, "r250r700ff", rules)

	assert.Equal(t, []Event{
		{Street: Preflop, Player: 0, Type: EventPostSmallBlind, Amount: 50},
		{Street: Preflop, Player: 1, Type: EventPostBigBlind, Amount: 100},
		{Street: Preflop, Player: 2, Type: EventRaise, Amount: 150, To: 250},
		{Street: Preflop, Player: 0, Type: EventRaise, Amount: 450, To: 700},
		{Street: Preflop, Player: 1, Type: EventFold},
		{Street: Preflop, Player: 2, Type: EventFold},
	}, events)
	assert.Equal(t, []int{700, 100, 250}, state.Totals)
	assert.Equal(t, 450, state.LastIncrement)
	assert.Equal(t, []int{0}, state.Active())
}

func TestReplayStreetSkipsFoldedPlayers(t *testing.T) {
	t.Parallel()

	rules := Rules{Game: acpc.Limit, BigBlind: 10}
	state := NewHandState(3)
	replayStreet(t, state, Preflop, "fcc", rules)
	require.True(t, state.Folded(2))

	flop := replayStreet(t, state, Flop, "crc", rules)
	assert.Equal(t, []Event{
		{Street: Flop, Player: 0, Type: EventCheck},
		{Street: Flop, Player: 1, Type: EventBet, Amount: 10, To: 10},
		{Street: Flop, Player: 0, Type: EventCall, Amount: 10},
	}, flop)
	assert.Equal(t, 1, state.NextToAct)
}

func TestReplayStreetErrors(t *testing.T) {
	t.Parallel()

	pos2, _ := ResolvePositions(2)

	t.Run("action after hand decided", func(t *testing.T) {
		t.Parallel()
		tokens, err := Tokenize("fc", acpc.Limit)
		require.NoError(t, err)
		_, err = ReplayStreet(NewHandState(2), Preflop, tokens, Rules{Game: acpc.Limit, BigBlind: 10}, pos2)
		assert.ErrorIs(t, err, ErrInvalidActionStream)
	})

	t.Run("raise below amount owed", func(t *testing.T) {
		t.Parallel()
		tokens, err := Tokenize("r50", acpc.NoLimit)
		require.NoError(t, err)
		_, err = ReplayStreet(NewHandState(2), Preflop, tokens, Rules{Game: acpc.NoLimit, BigBlind: 100}, pos2)
		assert.ErrorIs(t, err, ErrInvalidActionStream)
	})

	t.Run("no unfolded player", func(t *testing.T) {
		t.Parallel()
		state := NewHandState(2)
		state.FoldedOn[0] = Preflop
		state.FoldedOn[1] = Preflop
		_, err := state.nextActive(0)
		assert.ErrorIs(t, err, ErrInvalidActionStream)
	})
}
