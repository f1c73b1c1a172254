package calc

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Selection diagnostics. Operand diagnostics are built per ordinal.
const (
	diagBadSelection = "Invalid input. Please enter a valid menu option."
)

// errBadOperand signals a cycle aborted by an unparseable operand. The
// diagnostic has already been emitted when it is returned.
var errBadOperand = errors.New("operand is not a number")

// Session drives one interactive calculator run: banner, then a
// selection/operands/dispatch cycle repeated until Exit or end of input.
// A Session holds no state between cycles beyond its streams.
type Session struct {
	in   *tokenScanner
	out  io.Writer
	errw io.Writer
	text Text
	log  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger for debug tracing of the loop.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithText replaces the default stdout strings, typically with the
// styled variant from the ui package.
func WithText(t Text) Option {
	return func(s *Session) { s.text = t }
}

// New creates a Session reading selections and operands from in,
// writing results and prompts to out and diagnostics to errw.
func New(in io.Reader, out, errw io.Writer, opts ...Option) *Session {
	s := &Session{
		in:   newTokenScanner(in),
		out:  out,
		errw: errw,
		text: DefaultText(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the read-eval-print loop. It returns nil both on an
// explicit Exit selection and when the input stream ends; neither is a
// process-level failure.
func (s *Session) Run() error {
	fmt.Fprint(s.out, s.text.Banner)
	fmt.Fprint(s.out, s.text.ChoicePrompt)

	for {
		token, err := s.in.next()
		if err != nil {
			// Stream closed mid-prompt: terminate silently.
			s.log.Debug("input stream ended", zap.Error(err))
			return nil
		}

		sel, err := ParseSelection(token)
		if err != nil {
			s.recoverSelection(token, err)
			continue
		}

		if sel == Exit {
			s.log.Debug("exit selected")
			fmt.Fprint(s.out, s.text.Farewell)
			return nil
		}

		a, b, err := s.readOperands()
		if err != nil {
			if errors.Is(err, errBadOperand) {
				fmt.Fprint(s.out, s.text.ChoicePrompt)
				continue
			}
			// End of input while reading operands.
			s.log.Debug("input stream ended", zap.Error(err))
			return nil
		}

		res := sel.Apply(a, b)
		s.log.Debug("operation computed",
			zap.Stringer("selection", sel),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Stringer("result", res))

		if res.Defined() {
			fmt.Fprintf(s.out, s.text.ResultFormat, res.Value())
		} else if diag := res.Diagnostic(); diag != "" {
			fmt.Fprintln(s.errw, diag)
		}

		fmt.Fprint(s.out, s.text.ChoicePrompt)
	}
}

// recoverSelection handles the two recoverable selection failures. A
// malformed token redisplays the whole menu; an out-of-range one only
// re-prompts, the cheaper path.
func (s *Session) recoverSelection(token string, err error) {
	s.in.discardLine()

	var rangeErr *RangeError
	switch {
	case errors.As(err, &rangeErr):
		s.log.Debug("selection out of range", zap.Int("value", rangeErr.Value))
		fmt.Fprintf(s.errw, "Invalid Menu Choice. Please enter a number between %d and %d.\n", int(Add), int(Exit))
	default:
		s.log.Debug("selection malformed", zap.String("token", token))
		fmt.Fprintln(s.errw, diagBadSelection)
		fmt.Fprint(s.out, s.text.Banner)
	}
	fmt.Fprint(s.out, s.text.ChoicePrompt)
}

// readOperands prompts for and reads the two operands of a cycle. The
// second is never read when the first fails. It returns errBadOperand
// after an emitted diagnostic, or the underlying read error at end of
// input.
func (s *Session) readOperands() (a, b float64, err error) {
	fmt.Fprint(s.out, s.text.FirstPrompt)
	if a, err = s.readOperand("first"); err != nil {
		return 0, 0, err
	}
	fmt.Fprint(s.out, s.text.SecondPrompt)
	if b, err = s.readOperand("second"); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (s *Session) readOperand(ordinal string) (float64, error) {
	token, err := s.in.next()
	if err != nil {
		return 0, err
	}
	v, err := parseOperand(token)
	if err != nil {
		s.in.discardLine()
		s.log.Debug("operand malformed",
			zap.String("ordinal", ordinal),
			zap.String("token", token))
		fmt.Fprintf(s.errw, "Invalid input. Please enter a number for the %s operand.\n", ordinal)
		return 0, errBadOperand
	}
	return v, nil
}
