package intseq

import (
	"bufio"
	"io"
	"strconv"

	"github.com/grouptools/transversal/pkg/errors"
)

// Scanner reads whitespace-separated integer tokens from a reader. It is
// the token stream underlying the textual input protocol: sequences are
// written as a length followed by that many elements, with any mix of
// spaces and newlines between tokens.
type Scanner struct {
	sc  *bufio.Scanner
	pos int // tokens consumed so far, for diagnostics
}

// NewScanner creates a token scanner over r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Int reads the next integer token. Reaching end of input or a
// non-numeric token yields an INVALID_INPUT error naming the token
// position.
func (s *Scanner) Int() (int, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "read token %d", s.pos+1)
		}
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, io.ErrUnexpectedEOF, "input ended at token %d", s.pos+1)
	}
	s.pos++
	v, err := strconv.Atoi(s.sc.Text())
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "token %d: %q is not an integer", s.pos, s.sc.Text())
	}
	return v, nil
}

// Read parses one sequence from sc: first the length, then that many
// elements in order.
func Read(sc *Scanner) (Seq, error) {
	length, err := sc.Int()
	if err != nil {
		return Seq{}, errors.Wrap(errors.ErrCodeInvalidSequence, err, "sequence length")
	}
	if length < 0 {
		return Seq{}, errors.New(errors.ErrCodeInvalidSequence, "negative length %d for a sequence", length)
	}
	s := New(length)
	for i := 1; i <= length; i++ {
		v, err := sc.Int()
		if err != nil {
			return Seq{}, errors.Wrap(errors.ErrCodeInvalidSequence, err, "sequence element %d of %d", i, length)
		}
		s.Set(i, v)
	}
	return s, nil
}
