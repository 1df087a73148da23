package goseqs

import (
	"context"
	"sync/atomic"
)

// ErrorPredicateFunc returns true if err is considered recoverable.
type ErrorPredicateFunc func(err error) bool

// RecoveryFunc consumes the error that stopped a sequence.
type RecoveryFunc func(err error)

// recoverState is the lifecycle state of a recovering sequence.
type recoverState = int32

const (
	recoverRunning recoverState = iota
	recoverStoppedClean
	recoverStoppedFailed
)

// recoverer owns the wrapped producer and the recovery callbacks of a
// recovering sequence, and tracks its lifecycle state.
type recoverer[T any] struct {
	prod      ProducerFunc[T]
	pred      ErrorPredicateFunc
	onRecover RecoveryFunc
	state     atomic.Int32
}

// Recover returns a producer that produces the same elements as prod, in order,
// until prod either finishes or fails. A producer fails by canceling its context
// with a cause error. On failure, pred classifies the cause:
//
//   - if pred returns true, onRecover is called with the cause and the new producer
//     finishes cleanly, as if prod had simply run out of elements;
//   - if pred returns false, the cause is propagated unchanged to the downstream
//     sequence, terminating it with that error.
//
// prod runs under its own cancelable context, which is canceled on every exit path,
// so the wrapped producer is always released, whether the sequence finished, was
// recovered, failed, or was abandoned by the consumer.
//
// Once the new producer has stopped, cleanly or not, it must not be enumerated
// again; doing so panics.
//
// Recover panics with a NilArgumentError if pred or onRecover is nil.
func Recover[T any](prod ProducerFunc[T], pred ErrorPredicateFunc, onRecover RecoveryFunc) ProducerFunc[T] {
	ensureNotNil(pred, "pred")
	ensureNotNil(onRecover, "onRecover")

	rec := &recoverer[T]{
		prod:      prod,
		pred:      pred,
		onRecover: onRecover,
	}

	return rec.produce
}

// produce runs one enumeration of the recovering sequence.
func (r *recoverer[T]) produce(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
	if r.state.Load() != recoverRunning {
		panic("sequence already stopped")
	}

	prodCtx, cancelProd := context.WithCancelCause(ctx)

	ch := r.prod(prodCtx, cancelProd)

	outCh := make(chan T)

	go func() {
		defer cancelProd(nil)

		defer close(outCh)

		for elem := range ch {
			select {
			case outCh <- elem:

			case <-ctx.Done():
				return
			}
		}

		if contextDone(ctx) {
			return
		}

		cause := context.Cause(prodCtx)
		if cause == nil {
			// natural exhaustion, a clean terminal
			r.state.Store(recoverStoppedClean)
			return
		}

		if r.pred(cause) {
			r.state.Store(recoverStoppedClean)

			r.onRecover(cause)

			return
		}

		r.state.Store(recoverStoppedFailed)

		cancel(cause)
	}()

	return outCh
}
