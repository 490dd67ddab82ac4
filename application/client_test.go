package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

func TestClientRoutesByTable(t *testing.T) {
	c := NewClient(fixedIDs(), WithLogger(quietLogger()))

	_, err := c.Ingest(snapshot(100, 0, 20, true))
	require.NoError(t, err)

	other := snapshot(100, 0, 20, false)
	other.GameID = gid + 1
	_, err = c.Ingest(other)
	require.NoError(t, err)

	require.Equal(t, []TableKey{{gid, tid}, {gid + 1, tid}}, c.Tables())

	e, ok := c.Evaluate(gid, tid)
	require.True(t, ok)
	require.Equal(t, action.Actionable, e.State)

	e, ok = c.Evaluate(gid+1, tid)
	require.True(t, ok)
	require.Equal(t, action.PreActionable, e.State)
}

func TestClientMissingContext(t *testing.T) {
	c := NewClient(WithLogger(quietLogger()))
	e, ok := c.Evaluate(99, 0)
	require.False(t, ok)
	require.Equal(t, action.NoAction, e.State)

	bad := snapshot(100, 0, 20, true)
	bad.Pots = nil
	_, err := c.Ingest(bad)
	require.ErrorIs(t, err, table.ErrInvalidSnapshot)
	_, ok = c.Evaluate(gid, tid)
	require.False(t, ok, "a rejected first snapshot opens no table")
}

func TestClientTracksPreviousPhase(t *testing.T) {
	c := NewClient(WithLogger(quietLogger()))
	s := snapshot(100, 0, 0, false)
	s.Phase = table.PhaseNewRound

	res, err := c.Ingest(s)
	require.NoError(t, err)
	require.True(t, res.NewHand)

	res, err = c.Ingest(s)
	require.NoError(t, err)
	require.False(t, res.NewHand)

	s.Phase = table.PhaseBetting
	_, err = c.Ingest(s)
	require.NoError(t, err)
	s.Phase = table.PhaseNewRound
	res, err = c.Ingest(s)
	require.NoError(t, err)
	require.True(t, res.NewHand)
}

func TestClientSelectGameAndClose(t *testing.T) {
	c := NewClient(fixedIDs(), WithLogger(quietLogger()))
	req := c.SelectGame(12)
	require.Equal(t, 12, req.GameID)

	_, err := c.Ingest(snapshot(100, 0, 20, true))
	require.NoError(t, err)
	c.Close(gid, tid)
	_, ok := c.View(gid, tid)
	require.False(t, ok)
	require.Empty(t, c.Tables())
}
