// Package goseqs provides convenience operations on lazy sequences of elements.
//
// Sequences are constructed by creating an initial ProducerFunc, which can produce
// elements from slices, channels, or any arbitrary source.
//
// Elements may then be operated upon using intermediate ProducerFuncs, such as
// paging, read-only wrapping, random reordering, or recovering from failures
// raised mid-iteration.
//
// Finally, the elements are consumed by terminal operations, such as iterating
// over them, collecting them into slices, joining them into strings, or picking
// one element uniformly at random.
//
// Sequence operations will receive a context.CancelCauseFunc. Calling the cancel
// function will cancel the entire sequence, thus short-circuiting processing
// elements; the cause given to the cancel function is also how a producer signals
// a failure raised mid-iteration. Producer implementations must be prepared to be
// canceled at any time by checking the provided context.Context.
//
// Sequences are always lazy, meaning that producers will produce a new element
// only after a downstream producer or consumer has consumed the previous element.
// Enumerating the result of an intermediate operation a second time re-runs the
// underlying producer; callers needing multiple independent passes should
// materialize first.
package goseqs
