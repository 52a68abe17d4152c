package sorts

import (
	"cmp"
	"context"

	"golang.org/x/sync/errgroup"
)

// StreamSorter reads records from an input channel, sorts them in memory
// with the configured algorithm, and replays them in order on the output
// channel. The input must be closed by the producer for the sort to start.
type StreamSorter[E any] struct {
	config     Config
	input      <-chan E
	cmpFunc    CompareFunc[E]
	output     chan E
	errChan    chan error
	data       []E
	collectCtx context.Context
}

// NewStream returns a new StreamSorter for the input chan along with its
// output chan and error chan. cmpFunc is the comparator used to order
// records. config can be nil to use the defaults, or set only the
// non-default values desired. Call Sort on the returned sorter to begin.
func NewStream[E any](input <-chan E, cmpFunc CompareFunc[E], config *Config) (*StreamSorter[E], <-chan E, <-chan error) {
	s := &StreamSorter[E]{
		config:  *mergeConfig(config),
		input:   input,
		cmpFunc: cmpFunc,
		errChan: make(chan error, 1),
	}
	s.output = make(chan E, s.config.SortedChanBuffSize)
	return s, s.output, s.errChan
}

// NewStreamOrdered returns a new StreamSorter for a chan of naturally
// ordered values, along with its output chan and error chan.
func NewStreamOrdered[T cmp.Ordered](input <-chan T, config *Config) (*StreamSorter[T], <-chan T, <-chan error) {
	return NewStream(input, cmp.Compare, config)
}

// Sort drains the input chan, sorts the collected records, and streams them
// to the output chan. Sort blocks until the input is drained and sorted,
// then streaming continues in the background and unblocks the caller.
// NOTE: the context passed to Sort must outlive Sort() returning; streaming
// runs in a goroutine after Sort returns and uses the same context.
func (s *StreamSorter[E]) Sort(ctx context.Context) {
	if s.input == nil {
		s.fail(NewNilInputError("input channel"))
		return
	}
	if s.cmpFunc == nil {
		s.fail(NewNilInputError("compare function"))
		return
	}

	var group *errgroup.Group
	group, s.collectCtx = errgroup.WithContext(ctx)
	group.Go(s.collect)

	err := group.Wait()
	if err == nil {
		err = s.sortCollected()
	}
	if err != nil {
		s.fail(err)
		return
	}

	go s.emit(ctx)
}

// fail reports err and closes both channels, ending the stream.
func (s *StreamSorter[E]) fail(err error) {
	s.errChan <- err
	close(s.errChan)
	close(s.output)
}

// collect appends everything from the input chan until it is closed or the
// context is canceled.
func (s *StreamSorter[E]) collect() error {
	for {
		select {
		case rec, ok := <-s.input:
			if !ok {
				return nil
			}
			s.data = append(s.data, rec)
		case <-s.collectCtx.Done():
			return s.collectCtx.Err()
		}
	}
}

// sortCollected sorts the collected records, converting a comparator panic
// into a ComparisonError instead of tearing down the caller.
func (s *StreamSorter[E]) sortCollected() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, "sortCollected")
		}
	}()
	return sortWith(s.config.Algorithm, s.config.Pivot, s.data, s.cmpFunc)
}

// emit streams the sorted records to the output chan.
func (s *StreamSorter[E]) emit(ctx context.Context) {
	defer close(s.output)
	defer close(s.errChan)
	for _, rec := range s.data {
		select {
		case s.output <- rec:
		case <-ctx.Done():
			s.errChan <- ctx.Err()
			return
		}
	}
}
