package heap

import "golang.org/x/exp/constraints"

// HeapSortAux returns a new ascending slice with the elements of input. The
// input is left untouched.
func HeapSortAux[T constraints.Ordered](input []T) []T {
	h := New(input...)
	sorted := make([]T, 0, len(input))
	for !h.IsEmpty() {
		node, _ := h.Poll()
		sorted = append(sorted, node)
	}
	return sorted
}

// Heapify arranges nodes into a min-heap in linear time and returns a heap
// that uses nodes as its storage. Later Add calls may reallocate it.
func Heapify[T constraints.Ordered](nodes []T) *MinHeap[T] {
	buildHeap(nodes, lower[T])
	return &MinHeap[T]{nodes: nodes}
}

// HeapSortInPlace sorts input ascending using only the input's storage and
// returns it.
func HeapSortInPlace[T constraints.Ordered](input []T) []T {
	buildHeap(input, higher[T])
	for end := len(input) - 1; end > 0; end-- {
		input[0], input[end] = input[end], input[0]
		siftDown(input, 0, end, higher[T])
	}
	return input
}

func buildHeap[T constraints.Ordered](nodes []T, before func(a, b T) bool) {
	for i := len(nodes) / 2; i >= 0; i-- {
		siftDown(nodes, i, len(nodes), before)
	}
}
