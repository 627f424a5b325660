package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mikeladderbush/LED-Project/internal/config"
	"github.com/mikeladderbush/LED-Project/internal/logging"
)

// cli carries the resolved configuration and logger from the root pre-run
// hook into the subcommands.
type cli struct {
	out     io.Writer
	envFile string
	flags   overrides
	cfg     config.Config
	logger  *slog.Logger
}

type overrides struct {
	team     string
	timezone string
	horizon  int
	provider string
	renderer string
	logLevel string
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:   "scoreboard",
		Short: "NBA scoreboard for an LED display",
		Long: `scoreboard follows one NBA team. While the team is playing it shows the
live score and clock; otherwise it shows the next scheduled game.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	pf.StringVarP(&c.flags.team, "team", "t", "", "team name to follow (e.g. Celtics)")
	pf.StringVar(&c.flags.timezone, "timezone", "", "IANA timezone used to resolve today's date")
	pf.IntVar(&c.flags.horizon, "horizon", 0, "days to search ahead for the next game")
	pf.StringVar(&c.flags.provider, "provider", "", "feed provider: nba or fixture")
	pf.StringVar(&c.flags.renderer, "renderer", "", "renderer: terminal, log, or both")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(c), newOnceCmd(c), newNextCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}
	c.cfg = config.Load()
	c.applyOverrides(cmd)

	c.logger = logging.NewLogger(logging.Config{
		Level:      c.cfg.Logging.Level,
		Format:     c.cfg.Logging.Format,
		Service:    "led-scoreboard",
		Version:    appVersion,
		File:       c.cfg.Logging.File,
		MaxSizeMB:  c.cfg.Logging.MaxSizeMB,
		MaxBackups: c.cfg.Logging.MaxBackups,
	})
	return nil
}

// applyOverrides copies explicitly set flags over the environment config.
func (c *cli) applyOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("team") {
		c.cfg.Team = c.flags.team
	}
	if flags.Changed("timezone") {
		c.cfg.Timezone = c.flags.timezone
	}
	if flags.Changed("horizon") {
		c.cfg.HorizonDays = c.flags.horizon
	}
	if flags.Changed("provider") {
		c.cfg.Provider = c.flags.provider
	}
	if flags.Changed("renderer") {
		c.cfg.Renderer = c.flags.renderer
	}
	if flags.Changed("log-level") {
		c.cfg.Logging.Level = c.flags.logLevel
	}
}
