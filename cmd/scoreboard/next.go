package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/server"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

func newNextCmd(c *cli) *cobra.Command {
	var (
		from   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Find the team's next scheduled game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var start *timeutil.Date
			if strings.TrimSpace(from) != "" {
				d, err := timeutil.ParseISODate(strings.TrimSpace(from))
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				start = &d
			}

			svc := server.NewDisplay(c.cfg, c.out, c.logger, metrics.NewRecorder())

			game, err := svc.NextGame(contextOrBackground(cmd.Context()), start)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, game)
			}
			prefix := "vs"
			if game.Location == games.LocationAway {
				prefix = "@"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s  %s\n", game.Date, prefix, game.Opponent, game.TipInfo)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD); defaults to today in the configured timezone")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the game as JSON")
	return cmd
}
