// Command mytrix inspects, compares and generates typed matrices and
// vectors stored as YAML or JSON documents.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mytrix/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string

	// Resolved at PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// errNotEqual makes `equal` exit non-zero without printing an error.
var errNotEqual = errors.New("not equal")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mytrix",
	Short: "mytrix - typed matrices over Boolean, Integer and Real domains",
	Long: `mytrix reads matrix and vector documents and applies the library's
construction discipline to them: shapes are validated, element types must
match the domain exactly, and Rational/Complex are rejected.

A document is YAML or JSON:

  kind: integer          # optional; inferred from the first element otherwise
  rows:
    - [1, 2]
    - [3, 4]

Use "values: [...]" instead of "rows" for a vector.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = format
			if err = cfg.Validate(); err != nil {
				return err
			}
		}

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("format", cfg.Format),
			zap.String("default_kind", cfg.DefaultKind))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newLogger builds a production zap logger writing to stderr.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", config.DefaultFormat, "Output format: text | yaml")

	rootCmd.AddCommand(inspectCmd, equalCmd, compareCmd, makeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotEqual) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
