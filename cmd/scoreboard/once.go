package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/server"
)

func newOnceCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Resolve and render the display a single time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			panel := c.out
			if asJSON {
				// Keep stdout parseable; the panel goes to stderr.
				panel = cmd.ErrOrStderr()
			}
			svc := server.NewDisplay(c.cfg, panel, c.logger, metrics.NewRecorder())
			state := svc.Resolve(contextOrBackground(cmd.Context()))
			if !asJSON {
				return nil
			}
			return writeJSON(cmd, state)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resulting display state as JSON")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
