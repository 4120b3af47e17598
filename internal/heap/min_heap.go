// Package heap implements an array-backed binary min-heap and the heapsorts
// built on top of it.
//
// The structures in this package are not safe for concurrent use.
package heap

import (
	"log/slog"
	"os"
	"slices"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/tsuru/collections/internal/logger"
)

// MinHeap keeps nodes ordered so that every parent is lower than or equal to
// its children. The root, nodes[0], is always the minimum. The zero value is
// an empty heap ready to use.
type MinHeap[T constraints.Ordered] struct {
	nodes  []T
	logger *slog.Logger
}

// New returns a heap holding nodes. The input is copied element by element
// through Add, so the caller's slice is never shared with the heap.
func New[T constraints.Ordered](nodes ...T) *MinHeap[T] {
	h := &MinHeap[T]{nodes: make([]T, 0, len(nodes))}
	for _, node := range nodes {
		h.Add(node)
	}
	return h
}

var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return logger.NewLogger(map[string]string{"emitter": "collections-minheap"}, os.Stderr)
})

// SetLogger replaces the package logger for this heap. nil restores it.
func (h *MinHeap[T]) SetLogger(l *slog.Logger) { h.logger = l }

func (h *MinHeap[T]) log() *slog.Logger {
	if h.logger == nil {
		return defaultLogger()
	}
	return h.logger
}

func (h *MinHeap[T]) Len() int      { return len(h.nodes) }
func (h *MinHeap[T]) IsEmpty() bool { return len(h.nodes) == 0 }

// Nodes returns a copy of the heap in array order.
func (h *MinHeap[T]) Nodes() []T { return slices.Clone(h.nodes) }

// Add appends item and moves it up until its parent is not greater than it.
func (h *MinHeap[T]) Add(item T) {
	h.nodes = append(h.nodes, item)
	siftUp(h.nodes, len(h.nodes)-1)
}

// Poll removes and returns the minimum. The last node takes the root's place
// and is moved down, so no element is shifted. ok is false when the heap is
// empty.
func (h *MinHeap[T]) Poll() (T, bool) {
	var zero T
	if h.IsEmpty() {
		h.log().Debug("Empty heap, not polling")
		return zero, false
	}

	last := len(h.nodes) - 1
	root := h.nodes[0]
	h.nodes[0] = h.nodes[last]
	h.nodes[last] = zero
	h.nodes = h.nodes[:last]

	siftDown(h.nodes, 0, len(h.nodes), lower[T])
	return root, true
}

// Peek returns the minimum without removing it.
func (h *MinHeap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.nodes[0], true
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func lower[T constraints.Ordered](a, b T) bool  { return a < b }
func higher[T constraints.Ordered](a, b T) bool { return a > b }

func siftUp[T constraints.Ordered](nodes []T, child int) {
	for child > 0 {
		p := parent(child)
		if !(nodes[child] < nodes[p]) {
			return
		}
		nodes[child], nodes[p] = nodes[p], nodes[child]
		child = p
	}
}

// siftDown moves nodes[i] down the first n nodes until neither child comes
// before it. The right child is chosen only when it strictly comes before the
// left one.
func siftDown[T constraints.Ordered](nodes []T, i, n int, before func(a, b T) bool) {
	for {
		child := left(i)
		if child >= n {
			return
		}
		if r := right(i); r < n && before(nodes[r], nodes[child]) {
			child = r
		}
		if !before(nodes[child], nodes[i]) {
			return
		}
		nodes[i], nodes[child] = nodes[child], nodes[i]
		i = child
	}
}
