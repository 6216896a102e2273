package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	outFormat string
	useColor  bool
	alignCols bool
	strategy  string
)

var rootCmd = &cobra.Command{
	Use:   "wick",
	Short: "Wick/Isserlis moment expansion",
	Long: `Expands moments of jointly Gaussian variables into sums of pairwise
covariance products via Isserlis' theorem.

Each argument token is one occurrence of a variable's time offset; the
expansion enumerates every partition of the occurrences into pairs, reduces
each to its stationary lag shape, and prints the tallied sum as plain text
or LaTeX markup.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (YAML)")

	// Logging override
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&outFormat, "format", "",
		"Override output format (text, latex)")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false,
		"Colorize coefficients (text format)")
	rootCmd.PersistentFlags().BoolVar(&alignCols, "align", false,
		"Right-align the coefficient column (text format)")

	// Enumeration override
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "",
		"Override pairing strategy (direct, filter)")
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel string
	Format   string
	Color    bool
	Align    bool
	Strategy string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel: logLevel,
		Format:   outFormat,
		Color:    useColor,
		Align:    alignCols,
		Strategy: strategy,
	}
}
