package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/poker-client/application"
	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
	"github.com/luca-patrignani/poker-client/network"
)

// event is one line of a replay script.
type event struct {
	Type     string          `json:"type"` // snapshot, arm, act, select, close
	Snapshot *table.Snapshot `json:"snapshot,omitempty"`
	GameID   int             `json:"gid"`
	TableID  int             `json:"tid"`

	// arm
	Preference string `json:"preference,omitempty"` // foldcheck, checkcall
	On         bool   `json:"on,omitempty"`

	// act
	Action table.ActionTag `json:"action,omitempty"`
	Amount int64           `json:"amount,omitempty"`
	Quick  *int            `json:"quick,omitempty"`
}

func newReplayCmd(v *viper.Viper, configFile *string, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Replay a script of snapshots and user actions, one JSON event per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *configFile)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			transport, closeTransport, err := newTransport(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeTransport()

			r := newReplayer(cfg, transport, logger)
			if cfg.Render {
				r.out = cmd.OutOrStdout()
				if cfg.Server == "" && cfg.Requests == "" {
					// stdout carries the request lines
					r.out = cmd.ErrOrStderr()
				}
			}
			return r.run(cmd.Context(), in)
		},
	}
}

func newTransport(cfg config, stdout io.Writer) (network.Transport, func(), error) {
	if cfg.Server != "" {
		return network.NewSender(cfg.Server, network.WithTimeout(cfg.Timeout)), func() {}, nil
	}
	if cfg.Requests == "" {
		return network.NewWriter(stdout), func() {}, nil
	}
	f, err := os.Create(cfg.Requests)
	if err != nil {
		return nil, nil, err
	}
	return network.NewWriter(f), func() { f.Close() }, nil
}

type replayer struct {
	client    *application.Client
	transport network.Transport
	logger    *slog.Logger
	out       io.Writer
}

func newReplayer(cfg config, transport network.Transport, logger *slog.Logger) *replayer {
	return &replayer{
		client: application.NewClient(
			application.WithSeatView(cfg.seatView()),
			application.WithLogger(logger),
		),
		transport: transport,
		logger:    logger,
	}
}

// run applies every event of in. Invalid snapshots and refused actions are
// logged and skipped; transport failures stop the replay.
func (r *replayer) run(ctx context.Context, in io.Reader) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var ev event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := r.apply(ctx, ev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (r *replayer) apply(ctx context.Context, ev event) error {
	switch ev.Type {
	case "snapshot":
		if ev.Snapshot == nil {
			return fmt.Errorf("snapshot event without snapshot")
		}
		res, err := r.client.Ingest(*ev.Snapshot)
		if err != nil {
			r.logger.Warn(err.Error())
			return nil
		}
		if res.NewHand {
			r.logger.Info("new hand", "gid", ev.Snapshot.GameID, "tid", ev.Snapshot.TableID)
		}
		if res.Fired != nil {
			if err := r.transport.SendAction(ctx, *res.Fired); err != nil {
				return err
			}
		}
		return r.render(ev.Snapshot.GameID, ev.Snapshot.TableID, res)

	case "arm":
		view, ok := r.client.View(ev.GameID, ev.TableID)
		if !ok {
			r.logger.Warn("arm on unknown table", "gid", ev.GameID, "tid", ev.TableID)
			return nil
		}
		switch ev.Preference {
		case "foldcheck":
			view.ArmFoldCheck(ev.On)
		case "checkcall":
			view.ArmCheckCall(ev.On)
		default:
			return fmt.Errorf("unknown preference %q", ev.Preference)
		}
		return nil

	case "act":
		view, ok := r.client.View(ev.GameID, ev.TableID)
		if !ok {
			r.logger.Warn("action on unknown table", "gid", ev.GameID, "tid", ev.TableID)
			return nil
		}
		req, err := act(view, ev)
		if err != nil {
			r.logger.Warn(err.Error())
			return nil
		}
		if req == nil {
			r.logger.Debug("action dropped", "gid", ev.GameID, "action", string(ev.Action))
			return nil
		}
		if err := r.transport.SendAction(ctx, *req); err != nil {
			return err
		}
		res := view.Result()
		res.Fired = req
		return r.render(ev.GameID, ev.TableID, res)

	case "select":
		return r.transport.RequestPlayerList(ctx, r.client.SelectGame(ev.GameID))

	case "close":
		r.client.Close(ev.GameID, ev.TableID)
		return nil
	}
	return fmt.Errorf("unknown event type %q", ev.Type)
}

func act(view *application.TableView, ev event) (*action.Request, error) {
	if ev.Quick != nil {
		return view.QuickRaise(*ev.Quick)
	}
	switch ev.Action {
	case table.ActionFold:
		return view.Fold()
	case table.ActionCheck, table.ActionCall:
		return view.CheckCall()
	case table.ActionBet, table.ActionRaise:
		return view.BetRaise(ev.Amount)
	case table.ActionAllIn:
		return view.AllIn()
	case table.ActionShow:
		return view.Show()
	case table.ActionMuck:
		return view.Muck()
	case table.ActionSitout:
		return view.SitOut()
	case table.ActionBack:
		return view.Back()
	}
	return nil, fmt.Errorf("unknown action %q", ev.Action)
}

func (r *replayer) render(gameID, tableID int, res application.Result) error {
	if r.out == nil {
		return nil
	}
	view, ok := r.client.View(gameID, tableID)
	if !ok {
		return nil
	}
	out, err := renderTable(view, res, r.logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, out)
	return err
}
