package sorts

// UniqChan returns a channel that filters out consecutive duplicate values
// from the input. It assumes the input channel provides values in sorted
// order, where duplicates appear consecutively, and preserves the first
// occurrence of each run. It is intended for post-processing the sorted
// output of a StreamSorter or MergeChans.
//
// The returned channel is closed when the input channel is closed. The
// function spawns a goroutine that terminates with the input channel.
func UniqChan[E comparable](in <-chan E) <-chan E {
	out := make(chan E)
	go func() {
		var prior E
		priorSet := false
		for d := range in {
			if priorSet && d == prior {
				continue
			}
			priorSet = true
			out <- d
			prior = d
		}
		close(out)
	}()
	return out
}
