// Package protocol reads the textual input protocol of the checker.
//
// The wire format is a stream of whitespace-separated integers:
//
//	n k                 dimensions, 2 <= k <= n
//	<seq> x n           coset representative images, one per point
//	<seq>               adjacency list of the base point
//	<seq> ...           trials (short representatives); a zero-length
//	                    sequence terminates the stream
//
// where every <seq> is a length followed by that many elements. Trials
// are consumed lazily so a driver can stop reading as soon as one trial
// fails.
package protocol

import (
	"bytes"
	"io"

	"github.com/grouptools/transversal/pkg/errors"
	"github.com/grouptools/transversal/pkg/intseq"
	"github.com/grouptools/transversal/pkg/orbit"
)

// Problem is the parsed orbit description: everything before the trial
// stream.
type Problem struct {
	N, K      int
	CosetReps []intseq.Seq // 1-indexed by point; entry 0 unused
	Adjacency intseq.Seq

	// Trials holds inline trials for sources that carry them with the
	// problem (JSON documents). Text streams leave it nil and deliver
	// trials through Reader.NextTrial instead.
	Trials []intseq.Seq
}

// Orbit builds the validated orbit tables for the problem.
func (p *Problem) Orbit() (*orbit.Orbit, error) {
	return orbit.New(p.N, p.K, p.CosetReps, p.Adjacency)
}

// TrialSource yields short representatives until the stream ends.
type TrialSource interface {
	// NextTrial returns the next short representative. ok is false when
	// the stream is exhausted (terminator reached or inline trials
	// consumed).
	NextTrial() (rep intseq.Seq, ok bool, err error)
}

// Reader parses the textual protocol from an io.Reader.
type Reader struct {
	sc *intseq.Scanner
}

// NewReader creates a protocol reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: intseq.NewScanner(r)}
}

// NewBytesReader creates a protocol reader over an in-memory document.
func NewBytesReader(b []byte) *Reader {
	return NewReader(bytes.NewReader(b))
}

// ReadProblem reads the dimensions, the coset representative table, and
// the adjacency list. It must be called exactly once, before any
// NextTrial call.
func (r *Reader) ReadProblem() (*Problem, error) {
	n, err := r.sc.Int()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "universe size")
	}
	k, err := r.sc.Int()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "part count")
	}
	if err := errors.ValidateDimensions(n, k); err != nil {
		return nil, err
	}

	cosetReps := make([]intseq.Seq, n+1)
	for p := 1; p <= n; p++ {
		rep, err := intseq.Read(r.sc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "coset representative %d", p)
		}
		cosetReps[p] = rep
	}

	adj, err := intseq.Read(r.sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "adjacency list")
	}

	return &Problem{N: n, K: k, CosetReps: cosetReps, Adjacency: adj}, nil
}

// NextTrial implements TrialSource: it reads the next short
// representative, reporting ok=false at the zero-length terminator.
func (r *Reader) NextTrial() (intseq.Seq, bool, error) {
	rep, err := intseq.Read(r.sc)
	if err != nil {
		return intseq.Seq{}, false, errors.Wrap(errors.ErrCodeInvalidTrial, err, "short representative")
	}
	if rep.Len() == 0 {
		return intseq.Seq{}, false, nil
	}
	return rep, true, nil
}

// Trials returns a TrialSource over a fixed list of short
// representatives, as carried by inline documents.
func Trials(reps []intseq.Seq) TrialSource {
	return &sliceSource{reps: reps}
}

type sliceSource struct {
	reps []intseq.Seq
	next int
}

func (s *sliceSource) NextTrial() (intseq.Seq, bool, error) {
	if s.next >= len(s.reps) {
		return intseq.Seq{}, false, nil
	}
	rep := s.reps[s.next]
	s.next++
	return rep, true, nil
}
