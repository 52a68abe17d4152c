package sorts

// PivotStrategy selects how the three-way quicksort picks its pivot.
type PivotStrategy int

const (
	// PivotFirst uses the first element of the range. This is the textbook
	// behavior; already-sorted or reverse-sorted input degrades to O(n^2).
	PivotFirst PivotStrategy = iota
	// PivotMedian3 uses the median of the first, middle, and last elements.
	PivotMedian3
	// PivotRandom uses a uniformly random element of the range.
	PivotRandom
)

// Config holds configuration settings for the stream sorters
type Config struct {
	Algorithm          Algorithm     // algorithm used to sort collected records
	Pivot              PivotStrategy // pivot selection used when Algorithm is Quick3Way
	SortedChanBuffSize int           // buffer size for passing records to output
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Algorithm:          Quick3Way,
		Pivot:              PivotFirst,
		SortedChanBuffSize: 10,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.Algorithm < Quick3Way || c.Algorithm > Bubble {
		c.Algorithm = d.Algorithm
	}
	if c.Pivot < PivotFirst || c.Pivot > PivotRandom {
		c.Pivot = d.Pivot
	}
	if c.SortedChanBuffSize <= 0 {
		c.SortedChanBuffSize = d.SortedChanBuffSize
	}
	return c
}
