// Package list implements a singly linked list behind a sentinel head node.
package list

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tsuru/collections/internal/logger"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// SinglyLinkedList holds its data nodes after a sentinel that never carries
// user data and is never removed, so inserting at the front needs no special
// case. The zero value is an empty list ready to use.
type SinglyLinkedList[T comparable] struct {
	head   *Node[T]
	size   int
	logger *slog.Logger
}

func New[T comparable](values ...T) *SinglyLinkedList[T] {
	l := &SinglyLinkedList[T]{head: &Node[T]{}}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return logger.NewLogger(map[string]string{"emitter": "collections-list"}, os.Stderr)
})

// SetLogger replaces the package logger for this list. nil restores it.
func (l *SinglyLinkedList[T]) SetLogger(log *slog.Logger) { l.logger = log }

func (l *SinglyLinkedList[T]) log() *slog.Logger {
	if l.logger == nil {
		return defaultLogger()
	}
	return l.logger
}

func (l *SinglyLinkedList[T]) sentinel() *Node[T] {
	if l.head == nil {
		l.head = &Node[T]{}
	}
	return l.head
}

func (l *SinglyLinkedList[T]) Len() int      { return l.size }
func (l *SinglyLinkedList[T]) IsEmpty() bool { return l.sentinel().next == nil }

// All yields the data nodes from the front. Each call starts a new walk.
func (l *SinglyLinkedList[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.sentinel().next; node != nil; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}

func (l *SinglyLinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range l.All() {
			if !yield(node.Data) {
				return
			}
		}
	}
}

func (l *SinglyLinkedList[T]) Slice() []T {
	values := make([]T, 0, l.size)
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}

func (l *SinglyLinkedList[T]) last() *Node[T] {
	node := l.sentinel()
	for node.next != nil {
		node = node.next
	}
	return node
}

// Append walks to the last node and links data after it.
func (l *SinglyLinkedList[T]) Append(data T) *SinglyLinkedList[T] {
	l.last().next = &Node[T]{Data: data}
	l.size++
	return l
}

// Pop unlinks and returns the last node.
func (l *SinglyLinkedList[T]) Pop() (*Node[T], bool) {
	if l.IsEmpty() {
		l.log().Debug("Empty list, not popping")
		return nil, false
	}
	node := l.sentinel()
	for node.next.next != nil {
		node = node.next
	}
	removed := node.next
	node.next = nil
	l.size--
	return removed, true
}

func (l *SinglyLinkedList[T]) AppendLeft(data T) *SinglyLinkedList[T] {
	head := l.sentinel()
	head.next = &Node[T]{Data: data, next: head.next}
	l.size++
	return l
}

func (l *SinglyLinkedList[T]) PopLeft() (*Node[T], bool) {
	head := l.sentinel()
	first := head.next
	if first == nil {
		l.log().Debug("Empty list, not popping")
		return nil, false
	}
	head.next = first.next
	first.next = nil
	l.size--
	return first, true
}

func (l *SinglyLinkedList[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

// before returns the node preceding position index, the sentinel for 0.
func (l *SinglyLinkedList[T]) before(index int) *Node[T] {
	node := l.sentinel()
	for i := 0; i < index; i++ {
		node = node.next
	}
	return node
}

func (l *SinglyLinkedList[T]) Get(index int) (*Node[T], error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.before(index).next, nil
}

func (l *SinglyLinkedList[T]) Set(index int, data T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.before(index).next.Data = data
	return nil
}

func (l *SinglyLinkedList[T]) Delete(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.unlinkAfter(l.before(index))
	return nil
}

func (l *SinglyLinkedList[T]) unlinkAfter(prev *Node[T]) {
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	l.size--
}

// Find returns the first node holding data.
func (l *SinglyLinkedList[T]) Find(data T) (*Node[T], bool) {
	for node := range l.All() {
		if node.Data == data {
			return node, true
		}
	}
	return nil, false
}

func (l *SinglyLinkedList[T]) Contains(data T) bool {
	_, ok := l.Find(data)
	return ok
}

// Remove unlinks the first node holding data. It reports false when no node
// matched.
func (l *SinglyLinkedList[T]) Remove(data T) bool {
	for prev := l.sentinel(); prev.next != nil; prev = prev.next {
		if prev.next.Data == data {
			l.unlinkAfter(prev)
			return true
		}
	}
	l.log().Debug("Data not found, not removing", "data", data)
	return false
}

// Equal reports whether both lists hold equal data in the same order.
func (l *SinglyLinkedList[T]) Equal(other *SinglyLinkedList[T]) bool {
	if l.size != other.size {
		return false
	}
	a, b := l.sentinel().next, other.sentinel().next
	for a != nil && b != nil {
		if a.Data != b.Data {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// Compare orders lists by length only: -1, 0 or +1.
func (l *SinglyLinkedList[T]) Compare(other *SinglyLinkedList[T]) int {
	return cmp.Compare(l.size, other.size)
}

func (l *SinglyLinkedList[T]) Less(other *SinglyLinkedList[T]) bool {
	return l.Compare(other) < 0
}

func (l *SinglyLinkedList[T]) LessOrEqual(other *SinglyLinkedList[T]) bool {
	return l.Compare(other) <= 0
}

func (l *SinglyLinkedList[T]) Greater(other *SinglyLinkedList[T]) bool {
	return l.Compare(other) > 0
}

func (l *SinglyLinkedList[T]) GreaterOrEqual(other *SinglyLinkedList[T]) bool {
	return l.Compare(other) >= 0
}

// String renders the chain as "HEAD -> a -> b -> None".
func (l *SinglyLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteString("HEAD")
	for node := range l.All() {
		b.WriteString(" -> ")
		b.WriteString(node.String())
	}
	b.WriteString(" -> None")
	return b.String()
}
