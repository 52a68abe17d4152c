package sorts

import "cmp"

// InsertionSortFunc sorts data in place into ascending order under cmpFunc
// by growing a sorted prefix one element at a time: each element is held out
// while strictly greater elements in the prefix shift right, then dropped
// into the vacated slot.
//
// The sort is stable. It runs in O(n^2) time in the worst case and O(n) on
// already-sorted input, with O(1) auxiliary space.
func InsertionSortFunc[E any](data []E, cmpFunc CompareFunc[E]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		// strict > keeps equal elements in their original order
		for j >= 0 && cmpFunc(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// InsertionSort sorts data in place into ascending natural order.
func InsertionSort[T cmp.Ordered](data []T) {
	InsertionSortFunc(data, cmp.Compare)
}
