// Package intseq provides the length-tagged integer sequence used as the
// uniform representation for permutation images, subsets, and partition
// tables throughout the checker.
//
// A Seq is an ordered list of integers addressed with 1-based indices,
// matching the convention of the orbit data it carries: entry i of a
// permutation image is the image of point i. The length is tracked
// explicitly alongside the storage rather than inferred from it. There is
// no append or resize operation because none of the tables the checker
// works with ever grow after construction.
//
// Seq is a small value type wrapping shared storage: copies of a Seq alias
// the same elements, like slices. Callers that need an independent copy
// use Clone.
package intseq

import (
	"fmt"
	"strings"
)

// Seq is a length-tagged ordered sequence of integers with 1-based
// indexing. The zero value is an empty sequence.
type Seq struct {
	// elems[0] is unused padding so that storage indices coincide with
	// the 1-based element indices.
	elems  []int
	length int
}

// New returns a new uninitialized sequence of the given length.
//
// A negative length is a fatal precondition violation and panics with a
// diagnostic. Input layers validate lengths before calling New, so this
// panic is unreachable from well-formed external input.
func New(length int) Seq {
	if length < 0 {
		panic(fmt.Sprintf("intseq: negative length %d for a sequence", length))
	}
	return Seq{elems: make([]int, length+1), length: length}
}

// Of returns a sequence holding the given values, with vals[0] at
// position 1.
func Of(vals ...int) Seq {
	s := New(len(vals))
	copy(s.elems[1:], vals)
	return s
}

// Len returns the number of elements in the sequence.
func (s Seq) Len() int {
	return s.length
}

// SetLen lowers (or restores) the sequence length without touching the
// underlying storage. Panics if n is negative or exceeds the storage
// capacity fixed at construction.
func (s *Seq) SetLen(n int) {
	if n < 0 || n > len(s.elems)-1 {
		panic(fmt.Sprintf("intseq: SetLen(%d) outside 0..%d", n, len(s.elems)-1))
	}
	s.length = n
}

// At returns the element at 1-based position i.
func (s Seq) At(i int) int {
	if i < 1 || i > s.length {
		panic(fmt.Sprintf("intseq: index %d outside 1..%d", i, s.length))
	}
	return s.elems[i]
}

// Set stores v at 1-based position i.
func (s Seq) Set(i, v int) {
	if i < 1 || i > s.length {
		panic(fmt.Sprintf("intseq: index %d outside 1..%d", i, s.length))
	}
	s.elems[i] = v
}

// Clone returns a deep copy of the sequence with independent storage.
func (s Seq) Clone() Seq {
	c := New(s.length)
	copy(c.elems[1:], s.elems[1:s.length+1])
	return c
}

// Ints returns the elements as a fresh 0-based slice. Useful for JSON
// encoding and tests; the returned slice does not alias the sequence.
func (s Seq) Ints() []int {
	out := make([]int, s.length)
	copy(out, s.elems[1:s.length+1])
	return out
}

// Equal reports whether two sequences have the same length and elements.
func (s Seq) Equal(t Seq) bool {
	if s.length != t.length {
		return false
	}
	for i := 1; i <= s.length; i++ {
		if s.elems[i] != t.elems[i] {
			return false
		}
	}
	return true
}

// String formats the sequence as a bracketed element list, e.g. "[1 3 4]".
func (s Seq) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 1; i <= s.length; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s.elems[i])
	}
	b.WriteByte(']')
	return b.String()
}
