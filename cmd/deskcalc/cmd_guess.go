package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deskcalc/internal/guess"
)

// guessCmd plays the number-guessing game. It shares no state with the
// calculator.
var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Play the number-guessing game",
	Long: `Play the number-guessing game.

A secret number is drawn from the configured range (1 to 100 by
default). Enter guesses and follow the larger/smaller hints until you
find it; the game reports how many attempts it took.`,
	RunE: runGuess,
}

func runGuess(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("session_id", uuid.NewString()))
	log.Debug("starting guessing game")

	game := guess.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
		guess.WithBounds(cfg.Guess.Min, cfg.Guess.Max),
		guess.WithLogger(log))
	game.Play()
	return nil
}
