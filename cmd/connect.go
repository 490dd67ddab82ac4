package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/poker-client/domain/table"
	"github.com/luca-patrignani/poker-client/network"
)

func newConnectCmd(v *viper.Viper, configFile *string, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <ws-url>",
		Short: "Play on a live table: snapshots come from the server, your events from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *configFile)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			session, err := network.Dial(ctx, args[0], nil)
			if err != nil {
				return err
			}
			defer session.Close()
			logger.Info("connected", "server", args[0])

			r := newReplayer(cfg, session, logger)
			if cfg.Render {
				r.out = cmd.OutOrStdout()
			}
			return r.live(ctx, session, cmd.InOrStdin())
		},
	}
}

// live multiplexes server snapshots and user events onto the goroutine that
// owns the table views.
func (r *replayer) live(ctx context.Context, session *network.Session, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots := make(chan table.Snapshot)
	events := make(chan event)
	errs := make(chan error, 2)

	go func() {
		for {
			s, err := session.ReadSnapshot()
			if err != nil {
				errs <- err
				return
			}
			select {
			case snapshots <- s:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if len(sc.Bytes()) == 0 {
				continue
			}
			var ev event
			if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
				r.logger.Warn("invalid event", "error", err)
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if errors.Is(err, network.ErrClosed) {
				r.logger.Info("server closed the session")
				return nil
			}
			return err
		case s := <-snapshots:
			if err := r.apply(ctx, event{Type: "snapshot", Snapshot: &s}); err != nil {
				return err
			}
		case ev := <-events:
			if err := r.apply(ctx, ev); err != nil {
				r.logger.Warn(fmt.Sprintf("event %s: %v", ev.Type, err))
			}
		}
	}
}
