package sorts_test

import (
	"slices"
	"testing"

	"github.com/Juno-Labs-Team/sorts"
)

func TestSortDispatch(t *testing.T) {
	algs := []sorts.Algorithm{
		sorts.Quick3Way,
		sorts.Merge,
		sorts.Insertion,
		sorts.Selection,
		sorts.Bubble,
	}
	for _, alg := range algs {
		t.Run(alg.String(), func(t *testing.T) {
			data := []int{5, 3, 8, 1, 9, 2}
			if err := sorts.Sort(alg, data); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(data, []int{1, 2, 3, 5, 8, 9}) {
				t.Fatalf("got %v", data)
			}
		})
	}
}

func TestSortUnknownAlgorithm(t *testing.T) {
	if err := sorts.Sort(sorts.Algorithm(99), []int{2, 1}); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestSortNilCompare(t *testing.T) {
	if err := sorts.SortFunc(sorts.Quick3Way, []int{2, 1}, nil); err == nil {
		t.Fatal("expected error for nil comparator")
	}
}

func TestAlgorithmString(t *testing.T) {
	cases := map[sorts.Algorithm]string{
		sorts.Quick3Way:     "quick3way",
		sorts.Merge:         "merge",
		sorts.Insertion:     "insertion",
		sorts.Selection:     "selection",
		sorts.Bubble:        "bubble",
		sorts.Algorithm(99): "unknown",
		sorts.Algorithm(-1): "unknown",
	}
	for alg, want := range cases {
		if got := alg.String(); got != want {
			t.Errorf("Algorithm(%d).String() = %q, want %q", int(alg), got, want)
		}
	}
}
