package sorts_test

import (
	"testing"

	"github.com/Juno-Labs-Team/sorts"
)

// TestInsertionBestCase checks that insertion sort does exactly one
// comparison per element on already-sorted input.
func TestInsertionBestCase(t *testing.T) {
	const size = 1000
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}

	var counter sorts.Counter
	sorts.InsertionSortFunc(data, sorts.Counting(&counter, intCompare))

	if got := counter.Count(); got != size-1 {
		t.Fatalf("insertion sort on sorted input made %d comparisons, want %d", got, size-1)
	}
}

// TestBubbleBestCase checks that bubble sort finishes in a single clean pass
// on already-sorted input.
func TestBubbleBestCase(t *testing.T) {
	const size = 1000
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}

	var counter sorts.Counter
	sorts.BubbleSortFunc(data, sorts.Counting(&counter, intCompare))

	if got := counter.Count(); got != size-1 {
		t.Fatalf("bubble sort on sorted input made %d comparisons, want %d", got, size-1)
	}
}

// TestQuick3WayAllEqual checks the duplicate efficiency of the three-way
// partition: an all-equal input must finish in the top-level pass, one
// comparison per non-pivot element, with no work in the recursive ranges.
func TestQuick3WayAllEqual(t *testing.T) {
	const size = 1024
	data := make([]int, size)
	for i := range data {
		data[i] = 42
	}

	var counter sorts.Counter
	sorts.QuickSort3WayFunc(data, sorts.Counting(&counter, intCompare))

	if got := counter.Count(); got != size-1 {
		t.Fatalf("3-way quicksort on all-equal input made %d comparisons, want %d", got, size-1)
	}
}

// TestCounterReset checks the counter bookkeeping itself.
func TestCounterReset(t *testing.T) {
	var counter sorts.Counter
	cmpFunc := sorts.Counting(&counter, intCompare)
	cmpFunc(1, 2)
	cmpFunc(2, 1)
	if got := counter.Count(); got != 2 {
		t.Fatalf("count is %d, want 2", got)
	}
	counter.Reset()
	if got := counter.Count(); got != 0 {
		t.Fatalf("count after reset is %d, want 0", got)
	}
}
