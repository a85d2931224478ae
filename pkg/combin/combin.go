// Package combin implements the combinatorial primitives behind the
// orbit tables: binomial coefficients and the lexicographic generator of
// k-subsets of {1,...,n}.
package combin

import (
	"fmt"

	"github.com/grouptools/transversal/pkg/intseq"
)

// Binomial returns the number of k-subsets of an n-set, for n >= k >= 0.
//
// The computation uses the multiplicative form of the Pascal recursion,
// Binomial(n,k) = Binomial(n-1,k-1)*n/k, whose intermediate values are
// always integers. Violating the precondition is fatal and panics with a
// diagnostic.
func Binomial(n, k int) int {
	if n < k || k < 0 {
		panic(fmt.Sprintf("combin: Binomial(%d, %d) requires n >= k >= 0", n, k))
	}
	if k == 0 {
		return 1
	}
	return Binomial(n-1, k-1) * n / k
}

// All returns every k-subset of {1,...,n} in lexicographic order, each a
// strictly increasing sequence of length k, for n >= k >= 0.
//
// The returned table is 1-indexed to match the adjacency encoding of the
// orbit data: the i-th subset is table[i] for i in 1..Binomial(n,k), and
// table[0] is an unused zero sequence. Violating the precondition is
// fatal and panics with a diagnostic.
//
// Successors are derived by the classic method: find the rightmost
// position whose value is below its maximum n-(k-j), increment it, and
// rewrite every later position as consecutive integers following it.
func All(n, k int) []intseq.Seq {
	if n < k || k < 0 {
		panic(fmt.Sprintf("combin: All(%d, %d) requires n >= k >= 0", n, k))
	}
	binom := Binomial(n, k)
	table := make([]intseq.Seq, binom+1)

	first := intseq.New(k)
	for j := 1; j <= k; j++ {
		first.Set(j, j)
	}
	table[1] = first

	for i := 2; i <= binom; i++ {
		prev := table[i-1]
		cur := intseq.New(k)
		for j := k; j >= 1; j-- {
			if prev.At(j) < n-(k-j) {
				for jj := 1; jj < j; jj++ {
					cur.Set(jj, prev.At(jj))
				}
				cur.Set(j, prev.At(j)+1)
				for jj := j + 1; jj <= k; jj++ {
					cur.Set(jj, cur.At(jj-1)+1)
				}
				break
			}
		}
		table[i] = cur
	}
	return table
}
