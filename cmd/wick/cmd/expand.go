package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wick/internal/config"
	"github.com/katalvlaran/wick/internal/logger"
	"github.com/katalvlaran/wick/render"
	"github.com/katalvlaran/wick/stationary"
)

var expandCmd = &cobra.Command{
	Use:   "expand [token ...]",
	Short: "Expand a Gaussian moment into covariance products",
	Long: `Expand E{X_a X_b …} for a stationary Gaussian process into a sum of
pairwise covariance products.

Each argument is one occurrence of a variable's symbolic time offset; repeat
a token for squared terms. With no arguments, the tokens come from the
configuration file (default: the squared moment
E{X_t² X_{t+t_1}² X_{t+t_2}² X_{t+t_3}²}).

Examples:
  wick expand t t t+t_1 t+t_1
  wick expand --format latex
  wick expand --strategy filter t t t+t_1 t+t_1`,
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOverrides(cfg, GetCLIOverrides())
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tokens := cfg.Tokens
	if len(args) > 0 {
		tokens = args
	}

	opts, err := cfg.PairingOptions()
	if err != nil {
		return err
	}
	format, err := cfg.RenderFormat()
	if err != nil {
		return err
	}

	log.WithMoment(len(tokens)).WithStrategy(cfg.Strategy).Infow("expanding moment")

	labels, shapes, err := stationary.Analytical(tokens, opts)
	if err != nil {
		return fmt.Errorf("cannot expand %d tokens: %w", len(tokens), err)
	}

	table := render.Tally(shapes)
	lag := render.StationaryLabels(labels, cfg.Names, format)
	out := render.Render(table, lag, render.Options{
		Format: format,
		Color:  cfg.Color,
		Align:  cfg.Align,
	})

	cmd.Println(out)
	log.Infow("expansion complete",
		"pairings", table.Total(),
		"terms", table.Len(),
	)

	return nil
}

// loadConfig reads the config file when one was given, defaults otherwise.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}

	return config.Load(cfgFile)
}

// applyOverrides layers non-zero CLI flags over the file configuration.
func applyOverrides(cfg *config.Config, o CLIOverrides) {
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.Color {
		cfg.Color = true
	}
	if o.Align {
		cfg.Align = true
	}
	if o.Strategy != "" {
		cfg.Strategy = o.Strategy
	}
}
