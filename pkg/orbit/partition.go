package orbit

import "github.com/grouptools/transversal/pkg/intseq"

// Partition is the assignment table of an ordered k-partition
// [P1,...,Pk] of {1,...,n}: Label(p) == j means point p lies in part Pj.
//
// A single Partition buffer is shared across the whole recursive search.
// Every call that reassigns an entry restores it to the last part before
// returning, so a caller always observes the partition it passed in; this
// restore obligation is part of the Checker contract, not an
// implementation detail.
type Partition struct {
	labels intseq.Seq
	k      int
}

// NewPartition returns a partition of {1,...,n} with every point in the
// last part Pk.
func NewPartition(n, k int) *Partition {
	labels := intseq.New(n)
	for p := 1; p <= n; p++ {
		labels.Set(p, k)
	}
	return &Partition{labels: labels, k: k}
}

// N returns the universe size.
func (a *Partition) N() int { return a.labels.Len() }

// K returns the part count.
func (a *Partition) K() int { return a.k }

// Label returns the part label of point p.
func (a *Partition) Label(p int) int { return a.labels.At(p) }

// Assign places point p into part label.
func (a *Partition) Assign(p, label int) { a.labels.Set(p, label) }

// CountBelowLast returns |P1| + ... + |P(k-1)|, the number of points
// committed to parts other than the last.
func (a *Partition) CountBelowLast() int {
	count := 0
	for p := 1; p <= a.labels.Len(); p++ {
		if a.labels.At(p) < a.k {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the partition.
func (a *Partition) Clone() *Partition {
	return &Partition{labels: a.labels.Clone(), k: a.k}
}

// ForcedSet is the set of points provably confined to the last part in
// every valid completion of the partition. Each recursive call works on
// its own copy; forced sets are never shared between sibling branches.
type ForcedSet struct {
	member []bool // 1-indexed; member[0] unused
	count  int
}

// NewForcedSet returns an empty forced set over {1,...,n}.
func NewForcedSet(n int) ForcedSet {
	return ForcedSet{member: make([]bool, n+1)}
}

// Contains reports whether point p is in the set.
func (f ForcedSet) Contains(p int) bool { return f.member[p] }

// Count returns the number of points in the set.
func (f ForcedSet) Count() int { return f.count }

// Add inserts point p and reports whether it was newly added.
func (f *ForcedSet) Add(p int) bool {
	if f.member[p] {
		return false
	}
	f.member[p] = true
	f.count++
	return true
}

// Remove deletes point p from the set.
func (f *ForcedSet) Remove(p int) {
	if f.member[p] {
		f.member[p] = false
		f.count--
	}
}

// Min returns the lowest point in the set, or 0 if the set is empty.
func (f ForcedSet) Min() int {
	for p := 1; p < len(f.member); p++ {
		if f.member[p] {
			return p
		}
	}
	return 0
}

// Clone returns an independent copy of the set.
func (f ForcedSet) Clone() ForcedSet {
	member := make([]bool, len(f.member))
	copy(member, f.member)
	return ForcedSet{member: member, count: f.count}
}
