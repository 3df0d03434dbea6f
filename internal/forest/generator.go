package forest

// generate returns every canonical Tree with exactly n nodes and at
// most m leaves, memoized in c. Algorithm (spec §4.3):
//
//  1. n == 0 -> no trees. n == 1 -> a single leaf if m >= 1, else none.
//  2. Otherwise, for every k in [1, n-1] and every non-increasing
//     partition of n-1 into k parts, recursively generate the
//     candidate subtrees for each part, form every combination (the
//     Cartesian product), attach them under a fresh root, discard any
//     combination whose total leaf count exceeds m, and deduplicate by
//     canonical string.
//
// maxChildren is never capped here: k ranges over the full [1, n-1].
// Capping is only a valid optimization for the parallel driver's
// top-level work split (see parallel.go), never for a memoized
// subproblem.
func generate(n, m int, c *cache) []Tree {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		if m >= 1 {
			return []Tree{Leaf()}
		}
		return nil
	}
	if trees, ok := c.get(n, m); ok {
		return trees
	}

	remaining := n - 1
	seen := make(map[string]struct{})
	var results []Tree

	for k := 1; k <= remaining; k++ {
		generatePartitions(remaining, k, func(partition []int) bool {
			childOptions := make([][]Tree, k)
			for i, size := range partition {
				opts := generate(size, m, c)
				if len(opts) == 0 {
					return true // this partition can't contribute; try the next one
				}
				childOptions[i] = opts
			}
			for _, t := range buildCandidates(partition, childOptions, m) {
				key := t.CanonicalString()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				results = append(results, t)
			}
			return true
		})
	}

	c.set(n, m, results)
	return results
}

// buildCandidates forms every Cartesian-product combination of one
// child from each of childOptions[i] (i.e. one candidate subtree per
// partition part), attaches them under a fresh root, and keeps only
// those whose total leaf count is at most m. This is shared by
// generate (per memoized subproblem) and the parallel driver's
// top-level root construction (see parallel.go's expandPartition).
func buildCandidates(partition []int, childOptions [][]Tree, m int) []Tree {
	var out []Tree
	combine(partition, childOptions, m, func(children []Tree) {
		t := FromChildren(children)
		if t.LeafCount() > m {
			return
		}
		out = append(out, t)
	})
	return out
}

// combiner holds the Cartesian-product recursion's mutable state —
// ported from optitree/uniquetrees_struct.go's uniqueTree struct,
// which closes over perm/used/bf instead of threading them through
// every recursive call. Here the closed-over state is the
// partially-built child list and a running leaf-count total, which
// lets the recursion abandon a branch the moment it can no longer fit
// under the m leaf cap.
type combiner struct {
	partition []int
	options   [][]Tree
	maxLeaves int
	current   []Tree
	leafSum   int
	emit      func([]Tree)
}

// combine enumerates every combination of one Tree from each
// options[i], applying two prunings as it goes:
//
//   - leaf-sum pruning: abandon a branch as soon as the accumulated
//     leaf count exceeds maxLeaves, since adding more children can
//     only add more leaves.
//   - symmetry pruning: when partition[i] == partition[i-1] (adjacent
//     equal-size parts, guaranteed contiguous since partition is
//     non-increasing), only accept a candidate at position i that does
//     not sort before the candidate chosen at position i-1 — the same
//     "don't place a smaller value after a larger one within the same
//     group" rule as optitree/uniquetrees.go's evalUniqueTree, applied
//     to subtree canonical order instead of integer order.
func combine(partition []int, options [][]Tree, maxLeaves int, emit func([]Tree)) {
	cmb := &combiner{
		partition: partition,
		options:   options,
		maxLeaves: maxLeaves,
		current:   make([]Tree, len(partition)),
		emit:      emit,
	}
	cmb.step(0)
}

func (c *combiner) step(pos int) {
	if pos == len(c.partition) {
		out := make([]Tree, len(c.current))
		copy(out, c.current)
		c.emit(out)
		return
	}
	for _, candidate := range c.options[pos] {
		if pos > 0 && c.partition[pos] == c.partition[pos-1] {
			if candidate.CanonicalString() < c.current[pos-1].CanonicalString() {
				continue
			}
		}
		leaves := candidate.LeafCount()
		if c.leafSum+leaves > c.maxLeaves {
			continue
		}
		c.current[pos] = candidate
		c.leafSum += leaves
		c.step(pos + 1)
		c.leafSum -= leaves
	}
}
