package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapSortAux(t *testing.T) {
	t.Run("should sort into a new slice", func(t *testing.T) {
		assert := assert.New(t)
		input := []int{10, 15, 8, 20, 17}
		sorted := HeapSortAux(input)
		assert.Equal([]int{8, 10, 15, 17, 20}, sorted)
		assert.Equal([]int{10, 15, 8, 20, 17}, input)

		sorted[0] = -1
		assert.Equal(10, input[0])
	})

	t.Run("should sort empty and single inputs", func(t *testing.T) {
		assert := assert.New(t)
		assert.Empty(HeapSortAux([]int{}))
		assert.Empty(HeapSortAux[int](nil))
		assert.Equal([]string{"a"}, HeapSortAux([]string{"a"}))
	})
}

func TestHeapify(t *testing.T) {
	t.Run("should arrange the input in place", func(t *testing.T) {
		assert := assert.New(t)
		input := []int{100, 230, 44, 1, 74, 12013, 84}
		h := Heapify(input)
		assert.Equal([]int{1, 74, 44, 230, 100, 12013, 84}, input)
		requireHeapOrder(t, input)

		input[0] = 0
		root, ok := h.Peek()
		assert.True(ok)
		assert.Equal(0, root)
	})

	t.Run("should poll ascending after heapify", func(t *testing.T) {
		assert := assert.New(t)
		h := Heapify([]int{100, 230, 44, 1, 74, 12013, 84})
		var polled []int
		for !h.IsEmpty() {
			v, _ := h.Poll()
			polled = append(polled, v)
		}
		assert.Equal([]int{1, 44, 74, 84, 100, 230, 12013}, polled)
	})
}

func TestHeapSortInPlace(t *testing.T) {
	t.Run("should sort using the input storage", func(t *testing.T) {
		assert := assert.New(t)
		input := []int{10, 15, 8, 20, 17}
		sorted := HeapSortInPlace(input)
		assert.Equal([]int{8, 10, 15, 17, 20}, sorted)
		assert.Equal([]int{8, 10, 15, 17, 20}, input)
		assert.Same(&input[0], &sorted[0])
	})

	t.Run("should sort empty and single inputs", func(t *testing.T) {
		assert := assert.New(t)
		assert.Empty(HeapSortInPlace([]int{}))
		assert.Equal([]float64{1.5}, HeapSortInPlace([]float64{1.5}))
	})
}

func TestHeapSortProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		input := make([]int, rnd.Intn(200)+1)
		for i := range input {
			input[i] = rnd.Intn(50) - 25
		}
		want := slices.Sorted(slices.Values(input))

		assert.Equal(t, want, HeapSortAux(input))

		var polled []int
		h := Heapify(slices.Clone(input))
		for v, ok := h.Poll(); ok; v, ok = h.Poll() {
			polled = append(polled, v)
		}
		assert.Equal(t, want, polled)

		inPlace := slices.Clone(input)
		HeapSortInPlace(inPlace)
		assert.Equal(t, want, inPlace)
	}
}
