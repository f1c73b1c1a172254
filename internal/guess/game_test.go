package guess

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

// fixedGame returns a game with a known secret and captured streams.
func fixedGame(t *testing.T, secret int, input string) (*Game, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errw bytes.Buffer
	g := New(strings.NewReader(input), &out, &errw, WithLogger(zaptest.NewLogger(t)))
	g.secret = secret
	return g, &out, &errw
}

func TestPlayConverges(t *testing.T) {
	g, out, errw := fixedGame(t, 42, "50\n30\n42\n")

	attempts := g.Play()
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	stdout := out.String()
	if !strings.Contains(stdout, "Guess a smaller number.") {
		t.Fatalf("missing smaller hint in %q", stdout)
	}
	if !strings.Contains(stdout, "Guess a larger number.") {
		t.Fatalf("missing larger hint in %q", stdout)
	}
	if !strings.Contains(stdout, "guessed the number in 3 attempts") {
		t.Fatalf("missing victory line in %q", stdout)
	}
	if errw.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", errw.String())
	}
}

func TestPlayFirstTry(t *testing.T) {
	g, out, _ := fixedGame(t, 7, "7\n")

	if attempts := g.Play(); attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	if !strings.Contains(out.String(), "Bye Bye, thanks for playing.") {
		t.Fatalf("missing farewell in %q", out.String())
	}
}

func TestPlayMalformedGuessDoesNotCount(t *testing.T) {
	g, _, errw := fixedGame(t, 5, "abc\n5\n")

	if attempts := g.Play(); attempts != 1 {
		t.Fatalf("malformed guess should not count, got %d attempts", attempts)
	}
	if !strings.Contains(errw.String(), "Please enter a whole number.") {
		t.Fatalf("missing diagnostic, got %q", errw.String())
	}
}

func TestPlayEndOfInput(t *testing.T) {
	g, out, _ := fixedGame(t, 99, "10\n20\n")

	if attempts := g.Play(); attempts != 2 {
		t.Fatalf("expected 2 attempts before EOF, got %d", attempts)
	}
	if strings.Contains(out.String(), "Congratulations") {
		t.Fatalf("victory line printed without a correct guess")
	}
}

func TestSecretStaysWithinBounds(t *testing.T) {
	src := rand.NewSource(1)
	for i := 0; i < 200; i++ {
		g := New(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{},
			WithBounds(10, 20), WithSource(src))
		if g.secret < 10 || g.secret > 20 {
			t.Fatalf("secret %d outside [10,20]", g.secret)
		}
	}
}

func TestPromptNamesBounds(t *testing.T) {
	var out bytes.Buffer
	g := New(strings.NewReader(""), &out, &bytes.Buffer{}, WithBounds(1, 50))
	g.Play()
	if !strings.Contains(out.String(), "between (1 to 50)") {
		t.Fatalf("prompt does not name bounds: %q", out.String())
	}
}
