package forest

// cache memoizes generate(n, maxLeaves) results, keyed by (n,
// maxLeaves). Entries are write-once: once a slot is marked ready its
// trees never change, matching spec's MemoCache invariant.
//
// Grounded on original_source/tree_generator.h's
// cache_: vector<vector<vector<Tree>>>, and its per-thread clone
// (threadCaches[t] = cache_) in tree_generator.cpp::generate.
type cache struct {
	entries [][]cacheSlot // entries[n][maxLeaves]
}

type cacheSlot struct {
	trees []Tree
	ready bool
}

// newCache allocates a cache wide enough for n in [0, maxN] and
// maxLeaves in [0, maxM].
func newCache(maxN, maxM int) *cache {
	c := &cache{entries: make([][]cacheSlot, maxN+1)}
	for n := range c.entries {
		c.entries[n] = make([]cacheSlot, maxM+1)
	}
	return c
}

func (c *cache) get(n, m int) ([]Tree, bool) {
	if n < 0 || n >= len(c.entries) {
		return nil, false
	}
	row := c.entries[n]
	if m < 0 || m >= len(row) {
		return nil, false
	}
	slot := row[m]
	return slot.trees, slot.ready
}

func (c *cache) set(n, m int, trees []Tree) {
	c.entries[n][m] = cacheSlot{trees: trees, ready: true}
}

// clone returns a private deep-enough copy of c for a parallel worker:
// each row gets its own backing array, so a worker populating new
// slots never affects c or any sibling clone. Slices inside already-
// ready slots are shared, which is safe because they are never
// mutated once set.
func (c *cache) clone() *cache {
	nc := &cache{entries: make([][]cacheSlot, len(c.entries))}
	for i, row := range c.entries {
		nc.entries[i] = make([]cacheSlot, len(row))
		copy(nc.entries[i], row)
	}
	return nc
}
