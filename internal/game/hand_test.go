package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/acpcstars/internal/acpc"
)

func mustReplay(t *testing.T, line string, g acpc.GameType, bigBlind int) (*Hand, Outcome) {
	t.Helper()
	rec, err := acpc.Parse(line, acpc.ParseOptions{Game: g, BigBlind: bigBlind})
	require.NoError(t, err)
	hand, err := Replay(rec)
	require.NoError(t, err)
	out, err := ResolvePot(hand.State, rec.Results)
	require.NoError(t, err)
	return hand, out
}

func TestReplayHeadsUpLimitCheckedDown(t *testing.T) {
	t.Parallel()

	hand, out := mustReplay(t, "STATE:1:cc/cc/cc/cc:AhKs|QdQc/2h2c2d/3s/4h:1.0|-1.0:P1|P2", acpc.Limit, 10)

	require.Len(t, hand.Streets, 4)
	assert.Equal(t, River, hand.FinalStreet())
	preflop := hand.Streets[Preflop]
	assert.Equal(t, Event{Street: Preflop, Player: 1, Type: EventPostSmallBlind, Amount: 5}, preflop[0])
	assert.Equal(t, Event{Street: Preflop, Player: 0, Type: EventPostBigBlind, Amount: 10}, preflop[1])
	assert.Equal(t, Event{Street: Preflop, Player: 1, Type: EventCall, Amount: 5}, preflop[2])
	assert.Equal(t, Event{Street: Preflop, Player: 0, Type: EventCheck}, preflop[3])

	assert.True(t, out.Showdown)
	assert.Equal(t, []int{0, 1}, out.ShowOrder)
	assert.Equal(t, []int{0}, out.Winners)
	assert.Equal(t, 20, out.Pot)
}

func TestReplayNoLimitFoldToFlopBet(t *testing.T) {
	t.Parallel()

	hand, out := mustReplay(t, "STATE:9:r300c/r600f:AhKs|QdQc/2h2c2d:300|-300:P1|P2", acpc.NoLimit, 100)

	assert.Equal(t, []Event{
		{Street: Flop, Player: 0, Type: EventBet, Amount: 300, To: 300},
		{Street: Flop, Player: 1, Type: EventFold},
	}, hand.Streets[Flop])
	assert.Equal(t, []int{600, 300}, hand.State.Totals)
	assert.False(t, out.Showdown)
	assert.Equal(t, 600, out.Pot)
	assert.Equal(t, 300, out.Uncalled)
	assert.Equal(t, 0, out.UncalledTo)
}

func TestReplayAllInRunout(t *testing.T) {
	t.Parallel()

	hand, out := mustReplay(t, "STATE:4:r20000c///:AhKs|QdQc/2h2c2d/3s/4h:-20000|20000:P1|P2", acpc.NoLimit, 100)

	require.Len(t, hand.Streets, 4)
	assert.Empty(t, hand.Streets[Flop])
	assert.Equal(t, []int{20000, 20000}, hand.State.Totals)
	assert.Equal(t, 40000, out.Pot)
	assert.Equal(t, []int{1}, out.Winners)
}

func TestReplayWrapsStreetErrors(t *testing.T) {
	t.Parallel()

	rec, err := acpc.Parse("STATE:2:fc:AhKs|QdQc:5|-5:P1|P2", acpc.ParseOptions{Game: acpc.Limit, BigBlind: 10})
	require.NoError(t, err)
	_, err = Replay(rec)
	assert.ErrorIs(t, err, ErrInvalidActionStream)
}

func TestReplayRejectsEmptyPreflop(t *testing.T) {
	t.Parallel()

	rec, err := acpc.Parse("STATE:3::AhKs|QdQc:5|-5:P1|P2", acpc.ParseOptions{Game: acpc.Limit, BigBlind: 10})
	require.NoError(t, err)
	_, err = Replay(rec)
	assert.ErrorIs(t, err, ErrInvalidActionStream)
}

// Properties that hold for every valid hand.
func TestReplayInvariants(t *testing.T) {
	t.Parallel()

	records := []struct {
		line string
		game acpc.GameType
		bb   int
	}{
		{"STATE:1:cc/cc/cc/cc:AhKs|QdQc/2h2c2d/3s/4h:1.0|-1.0:P1|P2", acpc.Limit, 10},
		{"STATE:2:f:AhKs|QdQc:10|-10:P1|P2", acpc.Limit, 10},
		{"STATE:3:rrc/rc/rrc/cc:AhKs|QdQc/2h2c2d/3s/4h:-80|80:P1|P2", acpc.Limit, 10},
		{"STATE:4:fcc/cc/cc/cc:AhKs|AdKd|7c2d/2h3c9d/Ts/4h:0|0|0:a|b|c", acpc.Limit, 10},
		{"STATE:5:r250r700ff:AhKs|QdQc|7c2d:350|-100|-250:a|b|c", acpc.NoLimit, 100},
		{"STATE:6:r300c/r600f:AhKs|QdQc/2h2c2d:300|-300:P1|P2", acpc.NoLimit, 100},
		{"STATE:7:ccc/rcf/rrc/crc:AhKs|QdQc|7c2d/2h2c2d/3s/4h:-80|90|-10:a|b|c", acpc.Limit, 10},
	}

	for _, r := range records {
		hand, out := mustReplay(t, r.line, r.game, r.bb)
		n := len(hand.Record.Players)

		assert.Equal(t, hand.State.Wagered(), out.Pot+out.Uncalled, r.line)
		assert.Equal(t, n, hand.Folds()+hand.State.ActiveCount(), r.line)

		net := 0
		for _, v := range out.NetChips(hand.State) {
			net += v
		}
		assert.Zero(t, net, "chips must be conserved for %s", r.line)

		// Replaying again yields the same events.
		again, err := Replay(hand.Record)
		require.NoError(t, err)
		assert.Equal(t, hand.Events(), again.Events())
	}
}
