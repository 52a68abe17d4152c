// Package sorts implements the classic comparison sorts (insertion,
// selection, bubble, merge, and three-way-partition quicksort) as generic
// in-memory routines over caller-owned slices, plus channel front-ends for
// sorting and merging streams of records.
package sorts

import "context"

// CompareFunc compares two elements and returns a negative integer if a
// should be ordered before b, zero if they are equal, and a positive integer
// if a should be ordered after b. It must implement a total order:
// reflexivity, antisymmetry, and transitivity. This follows the same
// semantics as cmp.Compare and can be implemented using cmp.Compare[T] for
// ordered types.
type CompareFunc[E any] func(a, b E) int

// LessFunc reports whether a should be ordered strictly before b.
// It can be adapted into a CompareFunc with FromLess.
type LessFunc[E any] func(a, b E) bool

// Sorter is the interface satisfied by the channel-based sorters in this
// package. Sort performs the complete sorting operation within the provided
// context, allowing for cancellation and timeout control.
type Sorter interface {
	Sort(context.Context)
}
