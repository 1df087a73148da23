package goseqs

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestProduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3}, []int{4, 5})

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestProduceChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ch := make(chan int)

	go func() {
		defer close(ch)

		for _, i := range []int{1, 2, 3, 4, 5} {
			ch <- i
		}
	}()

	ints := ProduceChannel[int](ch)

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestConcat(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Concat(Produce([]int{1, 2}), Produce([]int{3}), Produce([]int{4, 5}))

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{1, 2, 3, 4, 5})
}
