package sorts

import "cmp"

// SelectionSortFunc sorts data in place into ascending order under cmpFunc
// by repeatedly scanning the unsorted suffix for its minimum and exchanging
// it with the first unsorted position.
//
// The sort is not stable. It performs O(n^2) comparisons in every case but
// at most n-1 exchanges, which makes it attractive when element writes are
// expensive. Auxiliary space is O(1).
func SelectionSortFunc[E any](data []E, cmpFunc CompareFunc[E]) {
	for i := 0; i < len(data)-1; i++ {
		min := i
		for j := i + 1; j < len(data); j++ {
			if cmpFunc(data[j], data[min]) < 0 {
				min = j
			}
		}
		if min != i {
			data[i], data[min] = data[min], data[i]
		}
	}
}

// SelectionSort sorts data in place into ascending natural order.
func SelectionSort[T cmp.Ordered](data []T) {
	SelectionSortFunc(data, cmp.Compare)
}
