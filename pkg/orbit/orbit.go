// Package orbit implements the transversal-property checker for one
// G-orbit of k-subsets of {1,...,n}, where G is a transitive permutation
// group on {1,...,n}.
//
// The orbit is represented compactly at the base point 1: a coset
// representative table mapping each point p to some group element (in
// image form) sending 1 to p, and an adjacency list of indices into the
// lexicographic table of (k-1)-subsets. Index i being listed means that
// {1} together with the (k-1)-subset at index i is a k-subset of the
// orbit; applying the coset representative of p to such a subset yields
// the orbit members containing p.
//
// The checker itself is a recursive boolean predicate over a partially
// specified ordered k-partition; see Checker.Check.
package orbit

import (
	"github.com/grouptools/transversal/pkg/combin"
	"github.com/grouptools/transversal/pkg/errors"
	"github.com/grouptools/transversal/pkg/intseq"
)

// Orbit is the compact representation of a G-orbit of k-subsets. All
// tables are immutable after construction and safe to share across
// trials.
type Orbit struct {
	n, k      int
	cosetReps []intseq.Seq // 1-indexed by point; cosetReps[0] unused
	adj       intseq.Seq   // indices into the (k-1)-subset table
	subsets   []intseq.Seq // all (k-1)-subsets of {1..n}, 1-indexed, lex order
}

// New builds an orbit from the coset representative table and the
// adjacency list of the base point, and precomputes the (k-1)-subset
// table. cosetReps must be 1-indexed with length n+1 (entry 0 is
// ignored).
//
// New validates shape only: dimensions, table lengths, and index ranges.
// Whether the tables describe a genuine transitive action is a caller
// precondition that is not checked; inconsistent orbit data yields an
// unspecified result.
func New(n, k int, cosetReps []intseq.Seq, adj intseq.Seq) (*Orbit, error) {
	if err := errors.ValidateDimensions(n, k); err != nil {
		return nil, err
	}
	if len(cosetReps) != n+1 {
		return nil, errors.New(errors.ErrCodeInvalidProblem,
			"coset representative table has %d entries, want %d", len(cosetReps)-1, n)
	}
	for p := 1; p <= n; p++ {
		rep := cosetReps[p]
		if rep.Len() != n {
			return nil, errors.New(errors.ErrCodeInvalidSequence,
				"coset representative %d has length %d, want %d", p, rep.Len(), n)
		}
		for i := 1; i <= n; i++ {
			if err := errors.ValidatePoint(rep.At(i), n); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidSequence, err,
					"coset representative %d, image of %d", p, i)
			}
		}
	}

	subsets := combin.All(n, k-1)
	for i := 1; i <= adj.Len(); i++ {
		idx := adj.At(i)
		if idx < 1 || idx >= len(subsets) {
			return nil, errors.New(errors.ErrCodeInvalidProblem,
				"adjacency entry %d: subset index %d outside 1..%d", i, idx, len(subsets)-1)
		}
	}

	return &Orbit{
		n:         n,
		k:         k,
		cosetReps: cosetReps,
		adj:       adj,
		subsets:   subsets,
	}, nil
}

// N returns the universe size.
func (o *Orbit) N() int { return o.n }

// K returns the subset size (and part count).
func (o *Orbit) K() int { return o.k }

// AdjacencyLen returns the number of orbit k-subsets through the base
// point.
func (o *Orbit) AdjacencyLen() int { return o.adj.Len() }

// NewTrial seeds a trial from a short representative: an ordered prefix
// of distinct points placed into parts 1..Len(rep) in order, with every
// other point defaulting to the last part and an empty forced set. The
// returned point is the trial's initial newly-placed point, rep[1].
//
// The representative must have between 1 and k-1 points, all distinct and
// in range; this keeps the checker's precondition that the newly-placed
// point lies in a part below k.
func (o *Orbit) NewTrial(rep intseq.Seq) (*Partition, ForcedSet, int, error) {
	if rep.Len() < 1 || rep.Len() > o.k-1 {
		return nil, ForcedSet{}, 0, errors.New(errors.ErrCodeInvalidTrial,
			"short representative has %d points, want 1..%d", rep.Len(), o.k-1)
	}
	a := NewPartition(o.n, o.k)
	for i := 1; i <= rep.Len(); i++ {
		p := rep.At(i)
		if err := errors.ValidatePoint(p, o.n); err != nil {
			return nil, ForcedSet{}, 0, errors.Wrap(errors.ErrCodeInvalidTrial, err,
				"short representative entry %d", i)
		}
		if a.Label(p) != o.k {
			return nil, ForcedSet{}, 0, errors.New(errors.ErrCodeInvalidTrial,
				"short representative repeats point %d", p)
		}
		a.Assign(p, i)
	}
	return a, NewForcedSet(o.n), rep.At(1), nil
}
