package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/poker-client/domain/table"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	v := newViper()
	var configFile string

	root := &cobra.Command{
		Use:           "pokerclient",
		Short:         "Reconcile poker table snapshots and decide the legal actions of your seat",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file (yaml, toml or json)")
	flags.Bool("centered", true, "keep your seat at a fixed position on screen")
	flags.Int("anchor", table.DefaultAnchor, "display slot of your seat in centered view")
	flags.String("server", "", "base URL of the game server; requests are written as JSON lines when empty")
	flags.Duration("timeout", 5*time.Second, "timeout of every request sent to the server")
	flags.String("requests", "", "file receiving the JSON request lines (default stdout)")
	flags.Bool("render", true, "draw every reconciled table")

	root.AddCommand(newReplayCmd(v, &configFile, logger))
	root.AddCommand(newConnectCmd(v, &configFile, logger))
	root.AddCommand(newBannerCmd())
	return root
}

func newBannerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banner",
		Short: "Print the banner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			banner, err := pterm.DefaultBigText.WithLetters(
				putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
				putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
				putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
				putils.LettersFromStringWithStyle("lient", pterm.FgDarkGray.ToStyle()),
			).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), banner)
			return err
		},
	}
}
