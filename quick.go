package sorts

import (
	"cmp"
	"math/rand"
)

// QuickSort3WayFunc sorts data in place into ascending order under cmpFunc
// using three-way (Dutch national flag) partitioning: each pass splits the
// range into regions strictly less than, equal to, and strictly greater than
// the pivot, then recurses only into the outer two regions.
//
// The sort is not stable. It runs in O(n log n) time on average and degrades
// to O(n^2) on adversarial input with the default first-element pivot; see
// Config.Pivot for hardened pivot selection. Inputs dominated by duplicate
// values approach O(n) because the equal-to-pivot region is never revisited.
// Recursion always descends into the smaller partition and loops on the
// larger, so stack depth stays O(log n).
func QuickSort3WayFunc[E any](data []E, cmpFunc CompareFunc[E]) {
	quick3(data, 0, len(data)-1, cmpFunc, PivotFirst)
}

// QuickSort3Way sorts data in place into ascending natural order.
func QuickSort3Way[T cmp.Ordered](data []T) {
	QuickSort3WayFunc(data, cmp.Compare)
}

// QuickSort3WayRangeFunc sorts the inclusive subrange [low, high] of data in
// place under cmpFunc, leaving elements outside the range untouched.
// An empty range (low > high) is a no-op. Bounds outside [0, len(data)-1]
// are rejected with a *RangeError rather than touching memory out of range.
func QuickSort3WayRangeFunc[E any](data []E, low, high int, cmpFunc CompareFunc[E]) error {
	if cmpFunc == nil {
		return NewNilInputError("compare function")
	}
	if low > high {
		return nil
	}
	if low < 0 || high >= len(data) {
		return NewRangeError(low, high, len(data))
	}
	quick3(data, low, high, cmpFunc, PivotFirst)
	return nil
}

// QuickSort3WayRange sorts the inclusive subrange [low, high] of data in
// place into ascending natural order.
func QuickSort3WayRange[T cmp.Ordered](data []T, low, high int) error {
	return QuickSort3WayRangeFunc(data, low, high, cmp.Compare)
}

// quick3 sorts the inclusive range [lo, hi] of data. The caller guarantees
// the bounds are inside data.
func quick3[E any](data []E, lo, hi int, cmpFunc CompareFunc[E], pivot PivotStrategy) {
	for lo < hi {
		if p := pivotIndex(data, lo, hi, cmpFunc, pivot); p != lo {
			data[lo], data[p] = data[p], data[lo]
		}
		pv := data[lo]

		// invariant: data[lo:lt] < pv, data[lt:i] == pv, data[gt+1:hi+1] > pv
		lt, gt := lo, hi
		i := lo + 1
		for i <= gt {
			c := cmpFunc(data[i], pv)
			switch {
			case c < 0:
				data[lt], data[i] = data[i], data[lt]
				lt++
				i++
			case c > 0:
				// the value swapped down from gt is unexamined, so i stays
				data[i], data[gt] = data[gt], data[i]
				gt--
			default:
				i++
			}
		}

		// recurse into the smaller partition, loop on the larger
		if lt-lo < hi-gt {
			quick3(data, lo, lt-1, cmpFunc, pivot)
			lo = gt + 1
		} else {
			quick3(data, gt+1, hi, cmpFunc, pivot)
			hi = lt - 1
		}
	}
}

// pivotIndex picks the index whose value partitions [lo, hi] according to
// the configured strategy.
func pivotIndex[E any](data []E, lo, hi int, cmpFunc CompareFunc[E], pivot PivotStrategy) int {
	switch pivot {
	case PivotMedian3:
		return medianOfThree(data, lo, lo+(hi-lo)/2, hi, cmpFunc)
	case PivotRandom:
		return lo + rand.Intn(hi-lo+1)
	default:
		return lo
	}
}

// medianOfThree returns the index of the median of data[l], data[m], data[r].
func medianOfThree[E any](data []E, l, m, r int, cmpFunc CompareFunc[E]) int {
	if cmpFunc(data[l], data[m]) < 0 {
		if cmpFunc(data[m], data[r]) < 0 {
			return m
		} else if cmpFunc(data[l], data[r]) < 0 {
			return r
		}
		return l
	}
	if cmpFunc(data[r], data[m]) < 0 {
		return m
	} else if cmpFunc(data[r], data[l]) < 0 {
		return r
	}
	return l
}
