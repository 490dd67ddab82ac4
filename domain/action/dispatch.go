package action

import (
	"github.com/google/uuid"

	"github.com/luca-patrignani/poker-client/domain/table"
)

// Request is the outbound action handed to the transport. ID lets the
// transport drop duplicates.
type Request struct {
	ID     uuid.UUID       `json:"id"`
	GameID int             `json:"gid"`
	Action table.ActionTag `json:"action"`
	Amount int64           `json:"amount,omitempty"`
}

// PlayerListRequest asks the server for the players of a game.
type PlayerListRequest struct {
	ID     uuid.UUID `json:"id"`
	GameID int       `json:"gid"`
}

type dispatcherOption func(Dispatcher) Dispatcher

// Dispatcher translates decisions into requests.
type Dispatcher struct {
	newID func() uuid.UUID
}

func NewDispatcher(opts ...dispatcherOption) Dispatcher {
	d := Dispatcher{newID: uuid.New}
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// WithIDGenerator replaces the random request ids.
func WithIDGenerator(gen func() uuid.UUID) dispatcherOption {
	return func(d Dispatcher) Dispatcher {
		d.newID = gen
		return d
	}
}

// Dispatch builds the request for d in game gameID. The amount is dropped
// for actions that do not carry one.
func (d Dispatcher) Dispatch(gameID int, dec Decision) Request {
	r := Request{
		ID:     d.id(),
		GameID: gameID,
		Action: dec.Action,
	}
	if dec.Action.HasAmount() {
		r.Amount = dec.Amount
	}
	return r
}

func (d Dispatcher) PlayerList(gameID int) PlayerListRequest {
	return PlayerListRequest{ID: d.id(), GameID: gameID}
}

func (d Dispatcher) id() uuid.UUID {
	if d.newID == nil {
		return uuid.New()
	}
	return d.newID()
}
