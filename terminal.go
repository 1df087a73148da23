package goseqs

import (
	"context"
	"errors"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// ErrShortCircuit is a generic error used to short-circuit a sequence by canceling its context.
var ErrShortCircuit = errors.New("short circuit")

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc, returning the final accumulator.
// If prod or reduce cancel the sequence's context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// Each calls each for each element produced by prod, in order.
// If prod or each cancel the sequence's context, it stops consuming and returns the cause of the cancelation.
//
// Each panics with a NilArgumentError if each is nil.
func Each[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ensureNotNil(each, "each")

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := prod(ctx, cancel)

	index := uint64(0)

	for elem := range ch {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// IsNotEmpty returns true if prod is not nil and produces at least one element.
// It consumes at most one element: as soon as an element arrives, the producer is
// canceled with ErrShortCircuit. Calling it on a single-pass producer therefore
// consumes that producer's first element.
// If prod cancels the sequence's context before producing an element, it returns
// false, and the cause of the cancelation.
func IsNotEmpty[T any](ctx context.Context, prod ProducerFunc[T]) (bool, error) {
	if prod == nil {
		return false, nil
	}

	notEmpty := false

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, _ T, _ uint64) {
		notEmpty = true

		cancel(ErrShortCircuit)
	})

	return notEmpty, err
}

// Count returns the number of elements produced by prod.
// If prod cancels the sequence's context, it returns an undefined result, and the cause of the cancelation.
func Count[T any](ctx context.Context, prod ProducerFunc[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}
