package forest

// specialize returns every canonical Tree with exactly n nodes and at
// most m leaves, m in {1,2,3,4}, via the closed-form constructions
// below — ported from original_source/src/tree_optimizer.cpp's
// generateSingleLeaf/generateTwoLeaves/generateThreeLeaves, extended
// to m=4 (the original stops at 3; spec.md raises the bound).
//
// specialize is a pure performance path: shouldSpecialize gates when
// it is used instead of the general generator, but generate remains
// correct (and is the cross-check oracle) for every (n, m).
func specialize(n, m int) []Tree {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		if m >= 1 {
			return []Tree{Leaf()}
		}
		return nil
	}
	var results []Tree
	top := m
	if top > 4 {
		top = 4
	}
	for k := 1; k <= top; k++ {
		results = append(results, exactLeaves(n, k)...)
	}
	return results
}

// shouldSpecialize reports whether the closed-form specializer should
// be preferred over the general recursive generator, per spec.md
// §4.4's activation policy: n >= 15 and 1 <= m <= 4.
func shouldSpecialize(n, m int) bool {
	return n >= 15 && m >= 1 && m <= 4
}

// exactLeaves dispatches to the closed form for exactly k leaves.
// generateWithExactLeaves in tree_optimizer.cpp is the direct analog.
func exactLeaves(n, k int) []Tree {
	if k <= 0 || k > n {
		return nil
	}
	switch k {
	case 1:
		return []Tree{chain(n)}
	case 2:
		return exactTwoLeaves(n)
	case 3:
		return exactThreeLeaves(n)
	case 4:
		return exactFourLeaves(n)
	default:
		return nil
	}
}

// chain builds the unique tree with n nodes and exactly one leaf: a
// straight line root -> child -> ... -> leaf.
func chain(n int) Tree {
	if n <= 1 {
		return Leaf()
	}
	return FromChildren([]Tree{chain(n - 1)})
}

// exactTwoLeaves builds every tree with n nodes, exactly two leaves:
// a root over two chains of sizes (a, b), a+b = n-1, a >= b >= 1 —
// generateTwoLeaves in tree_optimizer.cpp — plus a root with a single
// child over every exact-two-leaf tree with n-1 nodes.
func exactTwoLeaves(n int) []Tree {
	remaining := n - 1
	if remaining < 2 {
		return nil
	}
	var results []Tree
	for a := 1; a <= remaining-1; a++ {
		b := remaining - a
		if b < 1 || b > a {
			continue
		}
		results = append(results, FromChildren([]Tree{chain(a), chain(b)}))
	}
	for _, sub := range exactTwoLeaves(n - 1) {
		results = append(results, FromChildren([]Tree{sub}))
	}
	return results
}

// exactThreeLeaves builds every tree with n nodes and exactly three
// leaves, as the union of three shapes — a root over three chains, a
// root over a chain plus an exact-two-leaf subtree, or a root with a
// single child over an exact-three-leaf tree with n-1 nodes —
// deduplicated by canonical string, as generateThreeLeaves does with
// its std::set<std::string> seen.
func exactThreeLeaves(n int) []Tree {
	remaining := n - 1
	if remaining < 3 {
		return nil
	}
	seen := make(map[string]struct{})
	var results []Tree
	add := func(t Tree) {
		key := t.CanonicalString()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		results = append(results, t)
	}

	// Case 1: three chains, a >= b >= c >= 1.
	for a := 1; a <= remaining-2; a++ {
		for b := 1; b <= a; b++ {
			c := remaining - a - b
			if c < 1 || c > b {
				continue
			}
			add(FromChildren([]Tree{chain(a), chain(b), chain(c)}))
		}
	}

	// Case 2: one chain of size s plus one exact-two-leaf tree.
	for s := 1; s <= remaining-1; s++ {
		twoLeafSize := remaining - s
		if twoLeafSize < 3 {
			continue
		}
		for _, sub := range exactTwoLeaves(twoLeafSize) {
			add(FromChildren([]Tree{chain(s), sub}))
		}
	}

	// Case 3: a single child over an exact-three-leaf tree.
	for _, sub := range exactThreeLeaves(n - 1) {
		add(FromChildren([]Tree{sub}))
	}

	return results
}

// exactFourLeaves builds every tree with n nodes and exactly four
// leaves. spec.md raises the specializer's bound to m=4, which
// tree_optimizer.cpp does not implement; this extends the same
// pattern one level further: four chains, two chains plus an
// exact-two-leaf subtree, one chain plus an exact-three-leaf subtree,
// or two exact-two-leaf subtrees under the root, or a root with a
// single child over an exact-four-leaf tree with n-1 nodes.
func exactFourLeaves(n int) []Tree {
	remaining := n - 1
	if remaining < 4 {
		return nil
	}
	seen := make(map[string]struct{})
	var results []Tree
	add := func(t Tree) {
		key := t.CanonicalString()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		results = append(results, t)
	}

	// Case A: four chains, a >= b >= c >= d >= 1.
	for a := 1; a <= remaining-3; a++ {
		for b := 1; b <= a; b++ {
			for c := 1; c <= b; c++ {
				d := remaining - a - b - c
				if d < 1 || d > c {
					continue
				}
				add(FromChildren([]Tree{chain(a), chain(b), chain(c), chain(d)}))
			}
		}
	}

	// Case B: two chains plus one exact-two-leaf tree.
	for r := 3; r <= remaining-2; r++ {
		rest := remaining - r
		for p := 1; p <= rest-1; p++ {
			q := rest - p
			if q < 1 || q > p {
				continue
			}
			for _, sub := range exactTwoLeaves(r) {
				add(FromChildren([]Tree{chain(p), chain(q), sub}))
			}
		}
	}

	// Case C: one chain plus one exact-three-leaf tree.
	for s := 1; s <= remaining-4; s++ {
		t := remaining - s
		for _, sub := range exactThreeLeaves(t) {
			add(FromChildren([]Tree{chain(s), sub}))
		}
	}

	// Case D: two exact-two-leaf trees, sizes u >= v.
	for u := 3; u <= remaining-3; u++ {
		v := remaining - u
		if v < 3 || v > u {
			continue
		}
		left := exactTwoLeaves(u)
		if u == v {
			for i := range left {
				for j := i; j < len(left); j++ {
					add(FromChildren([]Tree{left[i], left[j]}))
				}
			}
			continue
		}
		right := exactTwoLeaves(v)
		for _, lt := range left {
			for _, rt := range right {
				add(FromChildren([]Tree{lt, rt}))
			}
		}
	}

	// Case E: a single child over an exact-four-leaf tree.
	for _, sub := range exactFourLeaves(n - 1) {
		add(FromChildren([]Tree{sub}))
	}

	return results
}
