package network

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

const (
	readLimit  = 1 << 16
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Session is a websocket connection to the game server. Snapshots are read
// from it and requests written to it, both as JSON text messages.
type Session struct {
	conn *websocket.Conn
	// writes must not interleave
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

// Dial opens a session. header is sent with the handshake and may be nil.
func Dial(ctx context.Context, url string, header http.Header) (*Session, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	s := &Session{conn: conn, done: make(chan struct{})}
	go s.ping()
	return s, nil
}

func (s *Session) ping() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// ReadSnapshot blocks until the server pushes the next snapshot. Messages of
// other kinds are skipped. A normal close by the server is reported as
// ErrClosed.
func (s *Session) ReadSnapshot() (table.Snapshot, error) {
	for {
		var l Line
		if err := s.conn.ReadJSON(&l); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return table.Snapshot{}, ErrClosed
			}
			return table.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
		}
		if l.Kind == kindSnapshot && l.Snapshot != nil {
			return *l.Snapshot, nil
		}
	}
}

func (s *Session) SendAction(ctx context.Context, req action.Request) error {
	return s.write(ctx, Line{Kind: kindAction, Action: &req})
}

func (s *Session) RequestPlayerList(ctx context.Context, req action.PlayerListRequest) error {
	return s.write(ctx, Line{Kind: kindPlayerList, PlayerList: &req})
}

func (s *Session) write(ctx context.Context, l Line) error {
	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(deadline)
	if err := s.conn.WriteJSON(l); err != nil {
		return fmt.Errorf("send %s: %w", l.Kind, err)
	}
	return nil
}

// Close says goodbye to the server and releases the connection.
func (s *Session) Close() error {
	s.once.Do(func() { close(s.done) })
	s.mu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	s.mu.Unlock()
	return s.conn.Close()
}
