package forest

import (
	"testing"
)

// TestGenerateMatchesA000081 is spec.md §8 invariant 4: when m=n, the
// emitted count for N nodes equals OEIS A000081(N).
func TestGenerateMatchesA000081(t *testing.T) {
	for n := 1; n <= len(A000081); n++ {
		c := newCache(n, n)
		got := generate(n, n, c)
		if int64(len(got)) != A000081[n-1] {
			t.Errorf("generate(%d, %d) produced %d trees; want %d (A000081(%d))", n, n, len(got), A000081[n-1], n)
		}
	}
}

// TestGenerateEveryTreeIsCanonical is spec.md §8 invariant 1: every
// emitted tree, reparsed from its own canonical string, is unchanged.
func TestGenerateEveryTreeIsCanonical(t *testing.T) {
	c := newCache(8, 8)
	for _, tree := range generate(8, 8, c) {
		s := tree.CanonicalString()
		reparsed, err := ParseCanonical(s)
		if err != nil {
			t.Fatalf("ParseCanonical(%q) failed: %v", s, err)
		}
		if reparsed.CanonicalString() != s {
			t.Errorf("tree %q is not stable under parse+reserialize: got %q", s, reparsed.CanonicalString())
		}
	}
}

// TestGenerateNoDuplicates is spec.md §8 invariant 2: every canonical
// string appears at most once in the emitted set.
func TestGenerateNoDuplicates(t *testing.T) {
	c := newCache(9, 9)
	trees := generate(9, 9, c)
	seen := make(map[string]bool)
	for _, tree := range trees {
		s := tree.CanonicalString()
		if seen[s] {
			t.Errorf("duplicate canonical string emitted: %q", s)
		}
		seen[s] = true
	}
}

// TestGenerateRespectsLeafCap is spec.md §8 invariant 3: every
// emitted tree has at most m leaves and exactly n nodes.
func TestGenerateRespectsLeafCap(t *testing.T) {
	for _, nm := range [][2]int{{8, 3}, {10, 2}, {12, 4}} {
		n, m := nm[0], nm[1]
		c := newCache(n, m)
		for _, tree := range generate(n, m, c) {
			if tree.NodeCount() != n {
				t.Errorf("generate(%d,%d): tree %q has %d nodes, want %d", n, m, tree, tree.NodeCount(), n)
			}
			if tree.LeafCount() > m {
				t.Errorf("generate(%d,%d): tree %q has %d leaves, want <= %d", n, m, tree, tree.LeafCount(), m)
			}
		}
	}
}

// TestGenerateMonotonicInM is spec.md §8 invariant 6: for M' <= M, the
// set emitted for (N, M') is a subset of the set emitted for (N, M).
func TestGenerateMonotonicInM(t *testing.T) {
	n := 9
	for m := 1; m < n; m++ {
		small := toSet(generate(n, m, newCache(n, m)))
		large := toSet(generate(n, m+1, newCache(n, m+1)))
		for key := range small {
			if !large[key] {
				t.Errorf("tree %q in generate(%d,%d) missing from generate(%d,%d)", key, n, m, n, m+1)
			}
		}
	}
}

func TestGenerateBoundaryCases(t *testing.T) {
	if got := generate(0, 0, newCache(0, 0)); len(got) != 0 {
		t.Errorf("generate(0,0) = %v; want empty", got)
	}
	if got := generate(1, 1, newCache(1, 1)); len(got) != 1 || got[0].CanonicalString() != "()" {
		t.Errorf("generate(1,1) = %v; want [()]", got)
	}
	if got := generate(1, 0, newCache(1, 0)); len(got) != 0 {
		t.Errorf("generate(1,0) = %v; want empty", got)
	}
	if got := generate(5, 0, newCache(5, 0)); len(got) != 0 {
		t.Errorf("generate(5,0) = %v; want empty (M=0 with N>0 yields nothing)", got)
	}
}

// TestGenerateScenarioTable is spec.md §8's concrete scenario table.
func TestGenerateScenarioTable(t *testing.T) {
	tests := []struct {
		n, m  int
		count int
	}{
		{1, 1, 1},
		{2, 1, 1},
		{2, 2, 1},
		{3, 1, 1},
		{3, 2, 2},
		{3, 3, 2},
		{4, 3, 4},
		{4, 4, 4},
	}
	for _, tt := range tests {
		got := generate(tt.n, tt.m, newCache(tt.n, tt.m))
		if len(got) != tt.count {
			t.Errorf("generate(%d,%d) produced %d trees; want %d", tt.n, tt.m, len(got), tt.count)
		}
	}
}

func toSet(trees []Tree) map[string]bool {
	set := make(map[string]bool, len(trees))
	for _, t := range trees {
		set[t.CanonicalString()] = true
	}
	return set
}
