package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorOrder(t *testing.T) {
	n := NewNode([]byte{0x83, 0x01, 0x02, 0x03})
	it := n.NewIterator()

	var got []uint64
	for it.Next() {
		got = append(got, it.Value().Uint64())
	}
	require.Equal(t, []uint64{1, 2, 3}, got)
	require.False(t, it.Next())
	require.True(t, it.Value().IsNull())

	// A fresh iterator restarts from the first item.
	it = n.NewIterator()
	require.True(t, it.Next())
	require.EqualValues(t, 1, it.Value().Uint64())
}

func TestIteratorEmptyList(t *testing.T) {
	it := NewNode([]byte{0x80}).NewIterator()
	require.False(t, it.Next())
	require.True(t, it.Value().IsNull())
}

func TestIteratorNonList(t *testing.T) {
	it := NewNode([]byte{0x43, 'd', 'o', 'g'}).NewIterator()
	require.False(t, it.Next())
}

func TestIteratorTruncatedList(t *testing.T) {
	// Claims two items, holds one: iteration yields it and stops.
	it := NewNode([]byte{0x82, 0x01}).NewIterator()
	require.True(t, it.Next())
	require.EqualValues(t, 1, it.Value().Uint64())
	require.False(t, it.Next())
	require.True(t, it.Value().IsNull())
}

func TestIteratorNestedList(t *testing.T) {
	it := NewNode([]byte{0x82, 0x01, 0x82, 0x02, 0x03}).NewIterator()
	require.True(t, it.Next())
	require.True(t, it.Value().IsInt())
	require.True(t, it.Next())
	require.True(t, it.Value().IsList())
	require.Equal(t, []byte{0x82, 0x02, 0x03}, it.Value().Raw())
	require.False(t, it.Next())
}
