package goseqs

import (
	"context"
	"errors"
	"math/rand"
)

// ErrEmptySequence is the error returned by random selection when the sequence
// produced no elements.
var ErrEmptySequence = errors.New("empty sequence")

// SelectRandom returns one element chosen uniformly at random from prod, using the
// process-wide random source. It visits the sequence exactly once, holding a single
// candidate element, via reservoir sampling: the i-th element (1-based) replaces the
// candidate with probability 1/i, which is uniform over all elements regardless of
// the sequence's length.
// It returns ErrEmptySequence if prod produces no elements.
// If prod cancels the sequence's context, it returns an undefined result, and the
// cause of the cancelation.
func SelectRandom[T any](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return selectRandom(ctx, prod, rand.Intn)
}

// SelectRandomSource is SelectRandom drawing from rnd instead of the process-wide
// source, so that selection can be made deterministic by seeding rnd.
//
// SelectRandomSource panics with a NilArgumentError if rnd is nil.
func SelectRandomSource[T any](ctx context.Context, prod ProducerFunc[T], rnd *rand.Rand) (T, error) {
	ensureNotNil(rnd, "rnd")

	return selectRandom(ctx, prod, rnd.Intn)
}

// SelectRandomSlice returns one element of slice chosen uniformly at random, by
// drawing a single random index. It is the known-length shortcut for SelectRandom
// and produces the same distribution.
// It returns ErrEmptySequence if slice is empty.
func SelectRandomSlice[T any](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	return slice[rand.Intn(len(slice))], nil
}

func selectRandom[T any](ctx context.Context, prod ProducerFunc[T], intn func(n int) int) (T, error) {
	var chosen T

	count := 0

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		count++

		if intn(count) == 0 {
			chosen = elem
		}
	})
	if err != nil {
		return chosen, err
	}

	if count == 0 {
		return chosen, ErrEmptySequence
	}

	return chosen, nil
}
