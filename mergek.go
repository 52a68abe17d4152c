package sorts

import (
	"cmp"
	"context"

	"github.com/Juno-Labs-Team/sorts/queue"
)

// cursor walks one sorted slice during a k-way merge.
type cursor[E any] struct {
	data []E
	pos  int
}

// MergeFunc merges already-sorted slices into one new sorted slice under
// cmpFunc using a priority queue over the heads of the inputs. The inputs
// are not modified. Inputs that are not sorted produce unspecified order.
func MergeFunc[E any](cmpFunc CompareFunc[E], seqs ...[]E) []E {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make([]E, 0, total)

	pq := queue.NewPriorityQueue(func(a, b *cursor[E]) int {
		return cmpFunc(a.data[a.pos], b.data[b.pos])
	})
	for _, s := range seqs {
		if len(s) > 0 {
			pq.Push(&cursor[E]{data: s})
		}
	}

	for pq.Len() > 0 {
		c := pq.Peek()
		out = append(out, c.data[c.pos])
		c.pos++
		if c.pos < len(c.data) {
			pq.PeekUpdate()
		} else {
			pq.Pop()
		}
	}
	return out
}

// MergeSlices merges already-sorted slices of naturally ordered values into
// one new sorted slice.
func MergeSlices[T cmp.Ordered](seqs ...[]T) []T {
	return MergeFunc(cmp.Compare, seqs...)
}

// chanSource represents one sorted input chan and its next value during a
// channel merge.
type chanSource[E any] struct {
	ch   <-chan E
	next E
}

// advance reads the next value from the source chan. It returns false when
// the chan is closed and drained, and an error when the context ends first.
func (c *chanSource[E]) advance(ctx context.Context) (bool, error) {
	select {
	case rec, ok := <-c.ch:
		if ok {
			c.next = rec
		}
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// MergeChans merges already-sorted input chans into a single sorted output
// chan, plus an error chan. Each input must be closed by its producer for
// the merge to finish. Context cancellation stops the merge and reports
// ctx.Err() on the error chan.
func MergeChans[E any](ctx context.Context, cmpFunc CompareFunc[E], chans ...<-chan E) (<-chan E, <-chan error) {
	out := make(chan E, DefaultConfig().SortedChanBuffSize)
	errChan := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errChan)

		if cmpFunc == nil {
			errChan <- NewNilInputError("compare function")
			return
		}
		pq := queue.NewPriorityQueue(func(a, b *chanSource[E]) int {
			return cmpFunc(a.next, b.next)
		})
		for _, ch := range chans {
			if ch == nil {
				errChan <- NewNilInputError("input channel")
				return
			}
			src := &chanSource[E]{ch: ch}
			ok, err := src.advance(ctx)
			if err != nil {
				errChan <- err
				return
			}
			if ok {
				pq.Push(src)
			}
		}

		for pq.Len() > 0 {
			src := pq.Peek()
			select {
			case out <- src.next:
				ok, err := src.advance(ctx)
				if err != nil {
					errChan <- err
					return
				}
				if ok {
					pq.PeekUpdate()
				} else {
					pq.Pop()
				}
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return out, errChan
}
