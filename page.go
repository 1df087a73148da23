package goseqs

import (
	"context"
	"math"
)

// GetPage returns a producer that produces the zero-based page pageIndex of size pageSize
// of the elements produced by prod: it skips pageIndex*pageSize elements, then produces
// up to pageSize elements. If prod runs out of elements early, the page is short, or empty.
// The source producer is canceled with ErrLimitReached once the page is complete.
//
// GetPage panics with an InvalidArgumentError if pageIndex is negative, pageSize is
// not positive, or pageIndex*pageSize does not fit in a uint64.
func GetPage[T any](prod ProducerFunc[T], pageIndex int, pageSize int) ProducerFunc[T] {
	ensure(pageIndex >= 0, "pageIndex must not be negative")
	ensure(pageSize > 0, "pageSize must be positive")
	ensure(uint64(pageIndex) <= math.MaxUint64/uint64(pageSize), "pageIndex*pageSize overflows")

	return Limit(Skip(prod, uint64(pageIndex)*uint64(pageSize)), uint64(pageSize))
}

// ReadOnly returns a producer that produces the same elements as prod, in order.
// It is a transparent view, not a snapshot: nothing is copied, and enumerating the
// result advances prod. Consumers of the new producer only ever see a receive-only
// channel and can never reach prod or its channel, so the underlying sequence cannot
// be mutated or consumed out of band through the view.
//
// ReadOnly panics with a NilArgumentError if prod is nil.
func ReadOnly[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	ensureNotNil(prod, "prod")

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
