package calc

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// tokenScanner reads whitespace-delimited tokens from a line-oriented
// stream. It leaves the delimiter in the buffer after each token so that
// discardLine can still find the end of the offending line when a token
// fails to parse.
type tokenScanner struct {
	r *bufio.Reader
}

func newTokenScanner(r io.Reader) *tokenScanner {
	return &tokenScanner{r: bufio.NewReader(r)}
}

// next returns the next token, skipping leading whitespace. It returns
// io.EOF once the stream is exhausted.
func (s *tokenScanner) next() (string, error) {
	var b strings.Builder
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if b.Len() > 0 && err == io.EOF {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = s.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// discardLine consumes input through the next newline, or to EOF.
func (s *tokenScanner) discardLine() {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}
