package sorts

import "cmp"

// MergeSortFunc returns a new slice holding the elements of data sorted into
// ascending order under cmpFunc. The input slice is not modified.
//
// The sort is stable: when the two halves are merged, ties favor the left
// half, preserving the original relative order of equal elements. It runs in
// O(n log n) time in every case. One auxiliary buffer of the input's size is
// allocated up front and reused across all merge levels rather than
// allocating per recursive call.
func MergeSortFunc[E any](data []E, cmpFunc CompareFunc[E]) []E {
	out := make([]E, len(data))
	copy(out, data)
	if len(out) < 2 {
		return out
	}
	aux := make([]E, len(out))
	mergeSort(out, aux, 0, len(out)-1, cmpFunc)
	return out
}

// MergeSort returns a new slice holding the elements of data sorted into
// ascending natural order. The input slice is not modified.
func MergeSort[T cmp.Ordered](data []T) []T {
	return MergeSortFunc(data, cmp.Compare)
}

// mergeSort sorts the inclusive range [lo, hi] of data, using aux as scratch
// space for merging.
func mergeSort[E any](data, aux []E, lo, hi int, cmpFunc CompareFunc[E]) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(data, aux, lo, mid, cmpFunc)
	mergeSort(data, aux, mid+1, hi, cmpFunc)
	merge(data, aux, lo, mid, hi, cmpFunc)
}

// merge combines the sorted ranges [lo, mid] and [mid+1, hi] of data into
// one sorted range [lo, hi].
func merge[E any](data, aux []E, lo, mid, hi int, cmpFunc CompareFunc[E]) {
	copy(aux[lo:hi+1], data[lo:hi+1])
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			data[k] = aux[j]
			j++
		case j > hi:
			data[k] = aux[i]
			i++
		case cmpFunc(aux[j], aux[i]) < 0:
			// strict < means ties take from the left run, keeping the sort stable
			data[k] = aux[j]
			j++
		default:
			data[k] = aux[i]
			i++
		}
	}
}
