// Package verify provides checks for the invariants every sort must
// preserve: the output is in non-descending order and holds the same
// multiset of values as the input.
package verify

import (
	"cmp"
	"fmt"
	"slices"
)

// CompareFunc compares two elements with cmp.Compare semantics: negative
// when a orders before b, zero when equal, positive when after.
type CompareFunc[E any] func(a, b E) int

// Result contains statistical information about the differences between two
// multisets. It counts values unique to each side as well as common values.
type Result struct {
	// ExtraA is the count of values that exist only in A
	ExtraA uint64

	// ExtraB is the count of values that exist only in B
	ExtraB uint64

	// TotalA is the total count of values in A
	TotalA uint64

	// TotalB is the total count of values in B
	TotalB uint64

	// Common is the count of values that exist in both A and B
	Common uint64
}

func (r *Result) String() string {
	return fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
}

// SortedFunc reports whether data is in non-descending order under cmpFunc.
func SortedFunc[E any](data []E, cmpFunc CompareFunc[E]) bool {
	for i := 1; i < len(data); i++ {
		if cmpFunc(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}

// Sorted reports whether data is in non-descending natural order.
func Sorted[T cmp.Ordered](data []T) bool {
	return SortedFunc(data, cmp.Compare)
}

// DiffFunc compares the multisets of a and b under cmpFunc and returns
// counts of the values unique to each side and common to both. Neither
// input is modified; both are copied and sorted internally before a
// two-cursor walk tallies the differences.
func DiffFunc[E any](a, b []E, cmpFunc CompareFunc[E]) Result {
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.SortFunc(sa, cmpFunc)
	slices.SortFunc(sb, cmpFunc)
	return diffSorted(sa, sb, cmpFunc)
}

// diffSorted walks two sorted slices with one cursor each, counting values
// present on only one side.
func diffSorted[E any](a, b []E, cmpFunc CompareFunc[E]) Result {
	var r Result
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := cmpFunc(a[i], b[j])
		if c < 0 {
			r.ExtraA++
			r.TotalA++
			i++
		} else if c > 0 {
			r.ExtraB++
			r.TotalB++
			j++
		} else {
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		r.ExtraA++
		r.TotalA++
	}
	for ; j < len(b); j++ {
		r.ExtraB++
		r.TotalB++
	}
	return r
}

// PermutationFunc reports whether a and b hold the same multiset of values
// under cmpFunc, i.e. whether one is a permutation of the other.
func PermutationFunc[E any](a, b []E, cmpFunc CompareFunc[E]) bool {
	r := DiffFunc(a, b, cmpFunc)
	return r.ExtraA == 0 && r.ExtraB == 0
}

// Permutation reports whether a and b hold the same multiset of values.
func Permutation[T cmp.Ordered](a, b []T) bool {
	return PermutationFunc(a, b, cmp.Compare)
}
