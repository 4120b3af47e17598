package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMsgpack(t *testing.T) {
	t.Run("should keep the order of the nodes", func(t *testing.T) {
		assert := assert.New(t)
		b, err := msgpack.Marshal(New("c", "a", "b"))
		require.NoError(t, err)

		var raw []string
		require.NoError(t, msgpack.Unmarshal(b, &raw))
		assert.Equal([]string{"c", "a", "b"}, raw)

		var decoded SinglyLinkedList[string]
		require.NoError(t, msgpack.Unmarshal(b, &decoded))
		assert.Equal([]string{"c", "a", "b"}, decoded.Slice())
		assert.Equal(3, decoded.Len())
		assert.Equal("HEAD -> c -> a -> b -> None", decoded.String())
	})

	t.Run("should replace the contents of a list", func(t *testing.T) {
		assert := assert.New(t)
		b, err := msgpack.Marshal([]int{4, 5})
		require.NoError(t, err)

		l := New(1, 2, 3)
		require.NoError(t, msgpack.Unmarshal(b, l))
		assert.Equal([]int{4, 5}, l.Slice())
		l.Append(6)
		assert.Equal(3, l.Len())
	})

	t.Run("should fail on mismatched data", func(t *testing.T) {
		assert := assert.New(t)
		b, err := msgpack.Marshal([]any{7, 8, "x"})
		require.NoError(t, err)

		l := New(1, 2, 3)
		err = msgpack.Unmarshal(b, l)
		assert.ErrorContains(err, "error decoding list node 2")
		assert.Equal([]int{1, 2, 3}, l.Slice())
		assert.Equal(3, l.Len())
	})
}
