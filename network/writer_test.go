package network

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-client/domain/action"
)

func TestWriterJSONLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	ctx := context.Background()

	require.NoError(t, w.SendAction(ctx, testRequest()))
	require.NoError(t, w.RequestPlayerList(ctx, action.PlayerListRequest{GameID: 9}))

	sc := bufio.NewScanner(&buf)
	var lines []Line
	for sc.Scan() {
		var l Line
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines = append(lines, l)
	}
	require.Len(t, lines, 2)
	require.Equal(t, "action", lines[0].Kind)
	require.Equal(t, testRequest(), *lines[0].Action)
	require.Equal(t, "playerlist", lines[1].Kind)
	require.Equal(t, 9, lines[1].PlayerList.GameID)
}

func TestWriterCancelled(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewWriter(&buf).SendAction(ctx, testRequest()), context.Canceled)
	require.Zero(t, buf.Len())
}
