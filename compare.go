package sorts

import "sync/atomic"

// FromLess adapts a strict less-than predicate into a CompareFunc.
// Two values neither of which is less than the other compare as equal.
func FromLess[E any](less LessFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}

// Reverse returns a CompareFunc that orders elements in the opposite
// direction of cmpFunc.
func Reverse[E any](cmpFunc CompareFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		return cmpFunc(b, a)
	}
}

// Counter counts comparator invocations. Wrap a comparator with Counting to
// measure how many comparisons a sort performs. Safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// Count returns the number of comparisons recorded so far.
func (c *Counter) Count() uint64 {
	return c.n.Load()
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.n.Store(0)
}

// Counting returns a CompareFunc that increments counter on every call
// before delegating to cmpFunc.
func Counting[E any](counter *Counter, cmpFunc CompareFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		counter.n.Add(1)
		return cmpFunc(a, b)
	}
}
