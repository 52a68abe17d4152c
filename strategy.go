package sorts

import (
	"cmp"
	"fmt"
)

// Algorithm identifies one of the comparison sorts implemented by this
// package, for callers that want a single entry point instead of calling the
// algorithms directly.
type Algorithm int

const (
	// Quick3Way is the three-way-partition quicksort (default).
	Quick3Way Algorithm = iota
	// Merge is the stable merge sort.
	Merge
	// Insertion is the stable insertion sort.
	Insertion
	// Selection is the selection sort.
	Selection
	// Bubble is the stable bubble sort with early exit.
	Bubble
)

func (a Algorithm) String() string {
	switch a {
	case Quick3Way:
		return "quick3way"
	case Merge:
		return "merge"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	case Bubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// SortFunc sorts data in place into ascending order under cmpFunc using the
// selected algorithm. Merge sort copies its result back into data to honor
// the in-place contract of this entry point. An unknown algorithm or nil
// comparator is an error.
func SortFunc[E any](alg Algorithm, data []E, cmpFunc CompareFunc[E]) error {
	return sortWith(alg, PivotFirst, data, cmpFunc)
}

// Sort sorts data in place into ascending natural order using the selected
// algorithm.
func Sort[T cmp.Ordered](alg Algorithm, data []T) error {
	return SortFunc(alg, data, cmp.Compare)
}

// sortWith dispatches to the algorithm implementations. pivot only applies
// to Quick3Way.
func sortWith[E any](alg Algorithm, pivot PivotStrategy, data []E, cmpFunc CompareFunc[E]) error {
	if cmpFunc == nil {
		return NewNilInputError("compare function")
	}
	switch alg {
	case Quick3Way:
		quick3(data, 0, len(data)-1, cmpFunc, pivot)
	case Merge:
		copy(data, MergeSortFunc(data, cmpFunc))
	case Insertion:
		InsertionSortFunc(data, cmpFunc)
	case Selection:
		SelectionSortFunc(data, cmpFunc)
	case Bubble:
		BubbleSortFunc(data, cmpFunc)
	default:
		return fmt.Errorf("unknown sort algorithm %d", int(alg))
	}
	return nil
}
