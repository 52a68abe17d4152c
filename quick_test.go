package sorts_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/Juno-Labs-Team/sorts"
)

func TestQuickRangeSubrange(t *testing.T) {
	data := []int{9, 8, 5, 1, 4, 2, 7, 0}
	err := sorts.QuickSort3WayRange(data, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{9, 8, 1, 2, 4, 5, 7, 0}
	if !slices.Equal(data, want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}

func TestQuickRangeWhole(t *testing.T) {
	data := []int{5, 3, 8, 1, 9, 2}
	if err := sorts.QuickSort3WayRange(data, 0, len(data)-1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(data, []int{1, 2, 3, 5, 8, 9}) {
		t.Fatalf("got %v", data)
	}
}

func TestQuickRangeEmpty(t *testing.T) {
	// low > high is a trivially sorted range, not an error
	data := []int{3, 1, 2}
	orig := slices.Clone(data)
	if err := sorts.QuickSort3WayRange(data, 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(data, orig) {
		t.Fatalf("empty range modified the sequence: %v", data)
	}

	// empty sequence with an empty range
	if err := sorts.QuickSort3WayRange([]int{}, 0, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuickRangeOutOfBounds(t *testing.T) {
	cases := []struct {
		name      string
		low, high int
	}{
		{"negative low", -1, 2},
		{"high past end", 0, 3},
		{"both out", -2, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := []int{3, 1, 2}
			orig := slices.Clone(data)

			err := sorts.QuickSort3WayRange(data, c.low, c.high)
			if err == nil {
				t.Fatalf("expected error for range [%d, %d]", c.low, c.high)
			}
			var rangeErr *sorts.RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *RangeError, got %T: %v", err, err)
			}
			if rangeErr.Low != c.low || rangeErr.High != c.high || rangeErr.Length != len(data) {
				t.Fatalf("error fields %+v do not match range [%d, %d] len %d", rangeErr, c.low, c.high, len(data))
			}
			if !slices.Equal(data, orig) {
				t.Fatalf("rejected call modified the sequence: %v", data)
			}
		})
	}
}

func TestQuickRangeNilCompare(t *testing.T) {
	err := sorts.QuickSort3WayRangeFunc([]int{2, 1}, 0, 1, nil)
	if err == nil {
		t.Fatal("expected error for nil comparator")
	}
}

func TestQuickManyDuplicates(t *testing.T) {
	// two distinct values; the equal regions should keep recursion shallow
	const size = 4096
	data := make([]int, size)
	for i := range data {
		data[i] = i % 2
	}
	sorts.QuickSort3Way(data)
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			t.Fatalf("output not sorted at %d", i)
		}
	}
}
