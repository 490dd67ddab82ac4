package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-client/domain/table"
)

func TestSession(t *testing.T) {
	received := make(chan Line, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		snap := table.Snapshot{GameID: 2, Phase: table.PhaseBetting, Pots: []int64{0}, MySeat: table.NoSeat}
		_ = conn.WriteJSON(Line{Kind: "hello"})
		_ = conn.WriteJSON(Line{Kind: "snapshot", Snapshot: &snap})

		var l Line
		if err := conn.ReadJSON(&l); err == nil {
			received <- l
		}
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer s.Close()

	snap, err := s.ReadSnapshot()
	require.NoError(t, err)
	require.Equal(t, 2, snap.GameID)
	require.Equal(t, table.PhaseBetting, snap.Phase)

	require.NoError(t, s.SendAction(ctx, testRequest()))
	select {
	case l := <-received:
		require.Equal(t, "action", l.Kind)
		require.Equal(t, testRequest(), *l.Action)
	case <-ctx.Done():
		t.Fatal("server did not receive the action")
	}

	_, err = s.ReadSnapshot()
	require.ErrorIs(t, err, ErrClosed)
}

func TestDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.ErrorContains(t, err, "status 404")
}
