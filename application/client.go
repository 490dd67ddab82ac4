package application

import (
	"sort"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

// TableKey identifies a table across games.
type TableKey struct {
	GameID  int
	TableID int
}

// Client routes snapshots to the table views of the viewer, creating them
// on first sight. It is owned by a single goroutine.
type Client struct {
	opts   []Option
	set    settings
	views  map[TableKey]*TableView
	phases map[TableKey]table.Phase
}

func NewClient(opts ...Option) *Client {
	return &Client{
		opts:   opts,
		set:    applyOptions(opts),
		views:  make(map[TableKey]*TableView),
		phases: make(map[TableKey]table.Phase),
	}
}

// Ingest reconciles s on the view of its table.
func (c *Client) Ingest(s table.Snapshot) (Result, error) {
	key := TableKey{GameID: s.GameID, TableID: s.TableID}
	v, known := c.views[key]
	if !known {
		v = NewTableView(s.GameID, s.TableID, c.opts...)
	}
	res, err := v.Reconcile(s, c.phases[key])
	if err != nil {
		return res, err
	}
	if !known {
		c.views[key] = v
		c.set.logger.Info("table opened", "view", v)
	}
	c.phases[key] = s.Phase
	return res, nil
}

// View returns the view of a table, if any snapshot of it was seen.
func (c *Client) View(gameID, tableID int) (*TableView, bool) {
	v, ok := c.views[TableKey{GameID: gameID, TableID: tableID}]
	return v, ok
}

// Evaluate returns the current evaluation of a table. ok is false, and the
// state NoAction, when nothing is known about the table.
func (c *Client) Evaluate(gameID, tableID int) (action.Evaluation, bool) {
	v, ok := c.View(gameID, tableID)
	if !ok {
		return action.Evaluation{State: action.NoAction}, false
	}
	return v.Evaluation(), true
}

// SelectGame builds the player-list query issued when the viewer selects
// a game.
func (c *Client) SelectGame(gameID int) action.PlayerListRequest {
	return c.set.dispatcher.PlayerList(gameID)
}

// Close forgets a table the viewer left.
func (c *Client) Close(gameID, tableID int) {
	key := TableKey{GameID: gameID, TableID: tableID}
	if v, ok := c.views[key]; ok {
		c.set.logger.Info("table closed", "view", v)
	}
	delete(c.views, key)
	delete(c.phases, key)
}

// Tables lists the open tables ordered by game then table.
func (c *Client) Tables() []TableKey {
	keys := make([]TableKey, 0, len(c.views))
	for k := range c.views {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].GameID != keys[j].GameID {
			return keys[i].GameID < keys[j].GameID
		}
		return keys[i].TableID < keys[j].TableID
	})
	return keys
}
