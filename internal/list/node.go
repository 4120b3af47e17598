package list

import "fmt"

type Node[T comparable] struct {
	Data T
	next *Node[T]
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] { return n.next }

func (n *Node[T]) String() string { return fmt.Sprint(n.Data) }
