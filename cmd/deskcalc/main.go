// Package main implements the deskcalc CLI: a menu-driven terminal
// calculator with a number-guessing game alongside it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deskcalc/internal/config"
)

// Version is stamped by the release build.
var Version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	noColor    bool

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Running it bare starts the
// calculator, which is the primary program of the suite.
var rootCmd = &cobra.Command{
	Use:   "deskcalc",
	Short: "deskcalc - menu-driven terminal calculator",
	Long: `deskcalc is a small terminal program suite.

The calculator reads a menu selection and two operands per cycle,
computes the requested binary operation and prints the result. The
guess subcommand plays an independent number-guessing game.

Run without arguments to start the calculator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(cfg.Logging.ZapLevel())
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runCalc,
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deskcalc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deskcalc %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
