package network

import (
	"context"
	"errors"

	"github.com/luca-patrignani/poker-client/domain/action"
)

// Transport delivers outbound requests.
type Transport interface {
	SendAction(ctx context.Context, req action.Request) error
	RequestPlayerList(ctx context.Context, req action.PlayerListRequest) error
}

// ErrClosed is returned by Session.ReadSnapshot once the server closed the
// session.
var ErrClosed = errors.New("session closed")

const (
	kindAction     = "action"
	kindPlayerList = "playerlist"
	kindSnapshot   = "snapshot"
)

var (
	_ Transport = Sender{}
	_ Transport = (*Writer)(nil)
	_ Transport = (*Session)(nil)
)
