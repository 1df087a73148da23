package goseqs

import (
	"context"
	"fmt"
	"strings"
)

// Join consumes prod and returns its elements rendered with fmt.Sprint and
// concatenated with separator between consecutive elements. An empty sequence
// yields the empty string.
// If prod cancels the sequence's context, it returns the string so far, and the
// cause of the cancelation.
//
// Join panics with a NilArgumentError if prod is nil.
func Join[T any](ctx context.Context, prod ProducerFunc[T], separator string) (string, error) {
	ensureNotNil(prod, "prod")

	strs := Map(prod, FuncMapper(func(elem T) string {
		return fmt.Sprint(elem)
	}))

	sb := strings.Builder{}

	err := Each(ctx, strs, func(_ context.Context, _ context.CancelCauseFunc, elem string, index uint64) {
		if index > 0 {
			sb.WriteString(separator)
		}

		sb.WriteString(elem)
	})

	return sb.String(), err
}

// JoinRune is Join with a single-character separator.
func JoinRune[T any](ctx context.Context, prod ProducerFunc[T], delimiter rune) (string, error) {
	return Join(ctx, prod, string(delimiter))
}

// JoinComma is Join with a comma separator.
func JoinComma[T any](ctx context.Context, prod ProducerFunc[T]) (string, error) {
	return Join(ctx, prod, ",")
}
