package sorts

import "cmp"

// BubbleSortFunc sorts data in place into ascending order under cmpFunc by
// repeatedly sweeping adjacent pairs and exchanging the ones that are out of
// order. Each pass floats the largest remaining element to the end of the
// unsorted region; a pass with no exchanges ends the sort early.
//
// The sort is stable. It runs in O(n^2) time in the worst case and O(n) on
// already-sorted input (a single clean pass), with O(1) auxiliary space.
func BubbleSortFunc[E any](data []E, cmpFunc CompareFunc[E]) {
	for pass := 0; pass < len(data)-1; pass++ {
		swapped := false
		for j := 0; j < len(data)-1-pass; j++ {
			// strict > keeps equal elements in their original order
			if cmpFunc(data[j], data[j+1]) > 0 {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// BubbleSort sorts data in place into ascending natural order.
func BubbleSort[T cmp.Ordered](data []T) {
	BubbleSortFunc(data, cmp.Compare)
}
