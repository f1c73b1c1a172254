package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deskcalc/internal/calc"
	"deskcalc/internal/ui"
)

// calcCmd runs the interactive calculator. It is also the root
// command's default action.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Start the interactive calculator",
	Long: `Start the menu-driven calculator.

Each cycle reads one menu selection (1-7) and, for arithmetic
selections, two operands. Results print to stdout with two decimal
places; validation diagnostics go to stderr. Selection 7 exits.`,
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("session_id", uuid.NewString()))
	log.Debug("starting calculator session")

	styler := ui.NewStyler(cfg.UI.Color && !noColor)
	session := calc.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
		calc.WithLogger(log),
		calc.WithText(styler.CalculatorText()))
	return session.Run()
}
