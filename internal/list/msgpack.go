package list

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*SinglyLinkedList[int])(nil)
	_ msgpack.CustomDecoder = (*SinglyLinkedList[int])(nil)
)

// EncodeMsgpack writes the list as a msgpack array of its data, front first.
func (l *SinglyLinkedList[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(l.size); err != nil {
		return fmt.Errorf("error encoding list length: %w", err)
	}
	for node := range l.All() {
		if err := enc.Encode(node.Data); err != nil {
			return fmt.Errorf("error encoding list node: %w", err)
		}
	}
	return nil
}

// DecodeMsgpack replaces the list contents with the decoded array. On error
// the list keeps its previous contents.
func (l *SinglyLinkedList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("error decoding list: %w", err)
	}

	head := &Node[T]{}
	tail := head
	size := 0
	for i := 0; i < n; i++ {
		var data T
		if err := dec.Decode(&data); err != nil {
			return fmt.Errorf("error decoding list node %d: %w", i, err)
		}
		tail.next = &Node[T]{Data: data}
		tail = tail.next
		size++
	}
	l.head = head
	l.size = size
	return nil
}
