package forest

import "testing"

// TestSpecializeCrossCheck is spec.md §8's specializer cross-check:
// for every M in {1,2,3,4} and N up to a test-suite bound, specialize
// must emit exactly the same set of canonical strings as the general
// generator.
func TestSpecializeCrossCheck(t *testing.T) {
	for m := 1; m <= 4; m++ {
		for n := 1; n <= 16; n++ {
			want := toSet(generate(n, m, newCache(n, m)))
			got := toSet(specialize(n, m))
			if len(want) != len(got) {
				t.Fatalf("specialize(%d,%d) produced %d trees; generate produced %d", n, m, len(got), len(want))
			}
			for key := range want {
				if !got[key] {
					t.Errorf("specialize(%d,%d) missing tree %q present in generate", n, m, key)
				}
			}
			for key := range got {
				if !want[key] {
					t.Errorf("specialize(%d,%d) produced extra tree %q not in generate", n, m, key)
				}
			}
		}
	}
}

func TestShouldSpecialize(t *testing.T) {
	tests := []struct {
		n, m int
		want bool
	}{
		{14, 2, false},
		{15, 2, true},
		{15, 5, false},
		{15, 0, false},
		{30, 4, true},
	}
	for _, tt := range tests {
		if got := shouldSpecialize(tt.n, tt.m); got != tt.want {
			t.Errorf("shouldSpecialize(%d,%d) = %v; want %v", tt.n, tt.m, got, tt.want)
		}
	}
}
