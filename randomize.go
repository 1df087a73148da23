package goseqs

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// randomized pairs an element with the random identifier it is ordered by.
type randomized[T any] struct {
	key  uuid.UUID
	elem T
}

// Randomize returns a producer that consumes the elements of prod and produces them
// in random order. Each element is tagged with a fresh random identifier and the
// elements are sorted by it, which yields an approximately uniform permutation in
// O(n log n); the order of elements whose identifiers collide is not unbiased.
// Like any sort, it must consume prod completely before producing the first element.
func Randomize[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		keyed := []randomized[T]{}

		for elem := range ch {
			keyed = append(keyed, randomized[T]{key: uuid.New(), elem: elem})
		}

		slices.SortFunc(keyed, func(a randomized[T], b randomized[T]) bool {
			return bytes.Compare(a.key[:], b.key[:]) < 0
		})

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, kv := range keyed {
				select {
				case outCh <- kv.elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
