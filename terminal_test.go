package goseqs

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestReduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64, acc int) int {
		is.Equal(index, uint64(elem-1))

		return acc + elem
	}

	result, _ := Reduce(ctx, ints, 0, summer)

	is.Equal(result, 15)
}

func TestEach(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	}

	_ = Each(ctx, ints, summer)

	is.Equal(sum, 15)
}

func TestEach_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return
		}

		sum += elem
	}

	err := Each(ctx, ints, summer)

	is.Equal(sum, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestEach_NilConsumer(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3})

	v := recoverPanic(func() {
		_ = Each[int](ctx, ints, nil)
	})

	nilErr, ok := v.(*NilArgumentError)

	is.True(ok)
	is.Equal(nilErr.Name, "each")
}

func TestIsNotEmpty(t *testing.T) {
	tests := []struct {
		name  string
		given ProducerFunc[int]
		want  bool
	}{
		{
			name:  "nil",
			given: nil,
			want:  false,
		},
		{
			name:  "empty",
			given: Produce([]int{}),
			want:  false,
		},
		{
			name:  "one element",
			given: Produce([]int{1}),
			want:  true,
		},
		{
			name:  "many elements",
			given: Produce([]int{1, 2, 3}),
			want:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			notEmpty, err := IsNotEmpty(ctx, test.given)

			is.NoErr(err)
			is.Equal(notEmpty, test.want)
		})
	}
}

func TestIsNotEmpty_FailingProducer(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	notEmpty, err := IsNotEmpty(ctx, failingProducer([]int{}, errBoom))

	is.Equal(notEmpty, false)
	is.True(errors.Is(err, errBoom))

	// a failure further down the sequence is never reached
	notEmpty, err = IsNotEmpty(ctx, failingProducer([]int{1, 2}, errBoom))

	is.NoErr(err)
	is.Equal(notEmpty, true)
}

func TestIsNotEmpty_ConsumesAtMostOneElement(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	sentCh := make(chan int, 1)

	ints := func(ctx context.Context, _ context.CancelCauseFunc) <-chan int {
		outCh := make(chan int)

		go func() {
			sent := 0

			defer func() {
				sentCh <- sent
			}()

			defer close(outCh)

			for i := 1; ; i++ {
				select {
				case outCh <- i:
					sent++

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}

	notEmpty, err := IsNotEmpty(ctx, ProducerFunc[int](ints))

	is.NoErr(err)
	is.True(notEmpty)
	is.Equal(<-sentCh, 1)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	count, err := Count(ctx, Produce([]int{1, 2, 3, 4, 5}))

	is.NoErr(err)
	is.Equal(count, uint64(5))

	count, err = Count(ctx, Produce([]int{}))

	is.NoErr(err)
	is.Equal(count, uint64(0))
}
