package heap

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// TopK returns the k highest elements of data. When data holds more than k
// elements the result is in heap order: a bounded min-heap keeps the k best
// seen so far, and its root is the one to evict. Otherwise it is a copy of
// data in input order.
func TopK[T constraints.Ordered](data []T, k int) []T {
	if k <= 0 {
		return []T{}
	}
	if len(data) <= k {
		return slices.Clone(data)
	}
	h := New[T]()
	for _, d := range data {
		if h.Len() < k {
			h.Add(d)
		} else if root, _ := h.Peek(); d > root {
			h.Poll()
			h.Add(d)
		}
	}
	return h.nodes
}
