package forest

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// A000081 lists OEIS A000081(n) for n = 1..10: the number of
// unordered rooted trees with exactly n nodes. spec.md §8 invariant 4
// requires matching this table exactly when M = N.
var A000081 = []int64{1, 1, 2, 4, 9, 20, 48, 115, 286, 719}

// EstimatePartitionCount upper-bounds the number of non-increasing
// partitions of n by summing C(n-1, k-1) over k, the same
// combin.Binomial call optitree/statistics.go's NumTrees uses for a
// related combinatorial count (there, labeled quorum-tree
// permutations; here, an upper bound on partition.go's output size).
// It is a bound, not the exact partition count p(n): C(n-1,k-1) counts
// compositions with a part fixed first, which is easier to sum in
// closed form and only ever overestimates p(n).
func EstimatePartitionCount(n int) int64 {
	if n <= 0 {
		return 1
	}
	var total int64
	for k := 1; k <= n; k++ {
		total += int64(combin.Binomial(n-1, k-1))
	}
	return total
}

// EstimateMemoryMiB implements spec.md §5's rough memory estimate,
// ≈2^(n/3) MiB, via math/big to avoid overflow near the N=30 boundary
// — grounded on optitree/statistics.go's NumTrees2, which reaches for
// big.Int for exactly the same "the exact count may not fit in a
// machine word" reason.
func EstimateMemoryMiB(n int) uint64 {
	if n <= 0 {
		return 0
	}
	v := new(big.Int).Lsh(big.NewInt(1), uint(n/3))
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
