package orbit

// Reason classifies how a Check call reached its result.
type Reason string

// Outcome reasons reported to a Trace.
const (
	// ReasonThreshold: committed plus forced points exceeded the size
	// bound any valid completion could respect.
	ReasonThreshold Reason = "threshold"

	// ReasonDeadEnd: the working forced set is empty after scanning all
	// candidates, so no further forcing is possible.
	ReasonDeadEnd Reason = "dead-end"

	// ReasonBranchFalse: some placement of the chosen forced point
	// admitted a counterexample completion.
	ReasonBranchFalse Reason = "branch-false"

	// ReasonAllBranches: every placement of the chosen forced point
	// guarantees a transversal.
	ReasonAllBranches Reason = "all-branches"
)

// Trace receives search events from a Checker. It exists for debugging
// and visualization; a nil trace adds no cost to the search. Calls are
// strictly nested: every Enter is matched by a Leave, with Forced and
// Branch events in between.
type Trace interface {
	// Enter is called at the start of a Check call for the given
	// newly-placed point.
	Enter(newPoint int)

	// Forced is called when point p is newly added to the working forced
	// set.
	Forced(p int)

	// Branch is called before recursing with forced point r moved into
	// part label.
	Branch(r, label int)

	// Leave is called when the call returns, with its result and reason.
	Leave(result bool, reason Reason)
}

// Checker decides the transversal property over one orbit. The orbit
// tables are shared read-only input; the Checker itself holds no mutable
// search state and one Checker may run any number of trials in sequence.
type Checker struct {
	orbit *Orbit
	trace Trace
}

// NewChecker creates a checker over the given orbit.
func NewChecker(o *Orbit) *Checker {
	return &Checker{orbit: o}
}

// SetTrace installs a trace for subsequent Check calls. Pass nil to
// disable tracing.
func (c *Checker) SetTrace(t Trace) { c.trace = t }

// Check reports whether every completion of the partial ordered
// k-partition represented by a is guaranteed to contain a transversal
// from the orbit: a k-subset of the orbit meeting every part in exactly
// one point.
//
// Preconditions (caller responsibility, not re-validated):
//   - a assigns every point a part in 1..k, with
//     |P1|+...+|P(k-1)| <= (k-1)*n/k;
//   - r is a subset of the last part Pk;
//   - newPoint currently lies in a part below k;
//   - for every orbit k-subset not containing newPoint whose
//     intersection with each of P1..P(k-1) has size exactly 1, the
//     remaining point already lies in r.
//
// Under these conditions Check returns true exactly when every
// k-partition Q with Qi containing Pi for i < k, Qk disjoint from r, and
// |Qk| >= n/k admits a transversal from the orbit.
//
// The partition buffer is mutated during the search but restored before
// Check returns, on every return path. The forced set r is not modified;
// each recursive level works on its own copy.
func (c *Checker) Check(a *Partition, r ForcedSet, newPoint int) bool {
	o := c.orbit
	n, k := o.n, o.k

	if c.trace != nil {
		c.trace.Enter(newPoint)
	}

	aCount := a.CountBelowLast()
	rnew := r.Clone()
	covered := make([]bool, k+1)
	rep := o.cosetReps[newPoint]

	// Scan the orbit k-subsets through newPoint. Each one is the
	// cosetrep-image of a base-point subset, with newPoint standing in
	// for the base point itself.
	for i := 1; i <= o.adj.Len(); i++ {
		comb := o.subsets[o.adj.At(i)]

		// Determine whether the parts hit by newPoint and the image
		// points are all of 1..k, and if so find the one point lying in
		// the last part.
		injective := true
		for j := 1; j <= k; j++ {
			covered[j] = false
		}
		covered[a.Label(newPoint)] = true
		kpoint := 0
		if a.Label(newPoint) == k {
			kpoint = newPoint
		}
		for j := 1; j <= k-1; j++ {
			point := rep.At(comb.At(j))
			part := a.Label(point)
			if covered[part] {
				// part is hit twice; this candidate cannot witness a
				// transversal for the current partial partition
				injective = false
				break
			}
			covered[part] = true
			if part == k {
				kpoint = point
			}
		}
		if !injective {
			continue
		}

		// The candidate hits every part below k exactly once, so its
		// remaining point is forced to stay in the last part.
		if rnew.Add(kpoint) {
			if c.trace != nil {
				c.trace.Forced(kpoint)
			}
			if (aCount+rnew.Count())*k > (k-1)*n {
				// The points committed to parts 1..k-1 plus the points
				// forced into Pk exceed what any completion with
				// |Pk| >= n/k avoiding the forced set could respect.
				return c.leave(true, ReasonThreshold)
			}
		}
	}

	if rnew.Count() == 0 {
		return c.leave(false, ReasonDeadEnd)
	}

	// Pick one forced point and try it in each of the first k-1 parts.
	// The guarantee holds only if it holds for every placement.
	rpoint := rnew.Min()
	rnew.Remove(rpoint)
	for label := 1; label <= k-1; label++ {
		a.Assign(rpoint, label)
		if c.trace != nil {
			c.trace.Branch(rpoint, label)
		}
		if !c.Check(a, rnew, rpoint) {
			a.Assign(rpoint, k)
			return c.leave(false, ReasonBranchFalse)
		}
		a.Assign(rpoint, k)
	}
	return c.leave(true, ReasonAllBranches)
}

func (c *Checker) leave(result bool, reason Reason) bool {
	if c.trace != nil {
		c.trace.Leave(result, reason)
	}
	return result
}
