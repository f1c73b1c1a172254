// Package guess implements the number guessing game: a secret integer
// is drawn once, then the player is prompted for guesses and steered
// with larger/smaller feedback until the guess matches.
//
// The game shares no code or state with the calculator. It is a
// deliberately independent minimal loop.
package guess

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Default bounds of the secret, inclusive.
const (
	DefaultMin = 1
	DefaultMax = 100
)

// Game holds one round: the secret, its bounds and the player streams.
type Game struct {
	min, max int
	secret   int
	src      rand.Source
	in       *bufio.Scanner
	out      io.Writer
	errw     io.Writer
	log      *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithBounds sets the inclusive range the secret is drawn from.
func WithBounds(min, max int) Option {
	return func(g *Game) {
		g.min = min
		g.max = max
	}
}

// WithSource replaces the wall-clock seeded random source, mainly so
// tests get a reproducible secret.
func WithSource(src rand.Source) Option {
	return func(g *Game) { g.src = src }
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New creates a game reading guesses from in, writing prompts and
// feedback to out and diagnostics to errw. The secret is drawn once,
// after all options have applied.
func New(in io.Reader, out, errw io.Writer, opts ...Option) *Game {
	g := &Game{
		min:  DefaultMin,
		max:  DefaultMax,
		in:   bufio.NewScanner(in),
		out:  out,
		errw: errw,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.NewSource(time.Now().UnixNano())
	}
	g.secret = draw(g.min, g.max, g.src)
	return g
}

func draw(min, max int, src rand.Source) int {
	return rand.New(src).Intn(max-min+1) + min
}

// Play runs the guessing loop until the secret is found or the input
// stream ends. It returns the number of counted attempts.
func (g *Game) Play() int {
	fmt.Fprintln(g.out, "Welcome to the World of Guessing Numbers")
	g.log.Debug("game started",
		zap.Int("min", g.min),
		zap.Int("max", g.max))

	attempts := 0
	for {
		fmt.Fprintf(g.out, "\nPlease enter your guess between (%d to %d): ", g.min, g.max)
		guess, ok := g.readGuess()
		if !ok {
			// End of input: stop without the victory lines.
			g.log.Debug("input stream ended", zap.Int("attempts", attempts))
			return attempts
		}
		attempts++

		switch {
		case guess < g.secret:
			fmt.Fprintln(g.out, "Guess a larger number.")
		case guess > g.secret:
			fmt.Fprintln(g.out, "Guess a smaller number.")
		default:
			fmt.Fprintf(g.out, "Congratulations! You have successfully guessed the number in %d attempts.\n", attempts)
			fmt.Fprintln(g.out, "\nBye Bye, thanks for playing.")
			g.log.Debug("secret guessed", zap.Int("attempts", attempts))
			return attempts
		}
	}
}

// readGuess reads one line and parses it as an integer. A malformed
// line gets a diagnostic and another prompt without counting as an
// attempt; false means the stream ended.
func (g *Game) readGuess() (int, bool) {
	for {
		if !g.in.Scan() {
			return 0, false
		}
		token := strings.TrimSpace(g.in.Text())
		guess, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintln(g.errw, "Invalid input. Please enter a whole number.")
			fmt.Fprintf(g.out, "\nPlease enter your guess between (%d to %d): ", g.min, g.max)
			continue
		}
		return guess, true
	}
}
