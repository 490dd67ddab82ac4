package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

// Line is one record written by Writer and one message of a Session.
type Line struct {
	Kind       string                    `json:"kind"`
	Action     *action.Request           `json:"action,omitempty"`
	PlayerList *action.PlayerListRequest `json:"playerlist,omitempty"`
	Snapshot   *table.Snapshot           `json:"snapshot,omitempty"`
}

// Writer encodes requests as JSON lines.
type Writer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

func (w *Writer) SendAction(ctx context.Context, req action.Request) error {
	return w.write(ctx, Line{Kind: kindAction, Action: &req})
}

func (w *Writer) RequestPlayerList(ctx context.Context, req action.PlayerListRequest) error {
	return w.write(ctx, Line{Kind: kindPlayerList, PlayerList: &req})
}

func (w *Writer) write(ctx context.Context, l Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(l); err != nil {
		return fmt.Errorf("write %s: %w", l.Kind, err)
	}
	return nil
}
