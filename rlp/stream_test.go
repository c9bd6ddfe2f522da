package rlp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestAppendUint64(t *testing.T) {
	tests := []struct {
		in  uint64
		out []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{255, []byte{0x18, 0xff}},
		{256, []byte{0x19, 0x01, 0x00}},
		{1 << 16, []byte{0x1a, 0x01, 0x00, 0x00}},
		{1<<64 - 1, append([]byte{0x1f}, bytes.Repeat([]byte{0xff}, 8)...)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, NewStream().AppendUint64(tt.in).Out(), "%d", tt.in)
	}
}

func TestAppendUint256(t *testing.T) {
	tests := []struct {
		in  *uint256.Int
		out []byte
	}{
		{uint256.NewInt(0), []byte{0x00}},
		{uint256.NewInt(23), []byte{0x17}},
		{uint256.NewInt(24), []byte{0x18, 0x18}},
		{uint256.NewInt(256), []byte{0x19, 0x01, 0x00}},
		{new(uint256.Int).Lsh(uint256.NewInt(1), 64), append([]byte{0x20, 0x01}, bytes.Repeat([]byte{0x00}, 8)...)},
		{new(uint256.Int).Not(uint256.NewInt(0)), append([]byte{0x37}, bytes.Repeat([]byte{0xff}, 32)...)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, NewStream().AppendUint256(tt.in).Out(), "%s", tt.in)
	}
}

func TestAppendBig(t *testing.T) {
	tests := []struct {
		in  *big.Int
		out []byte
	}{
		{big.NewInt(0), []byte{0x00}},
		{big.NewInt(23), []byte{0x17}},
		{big.NewInt(256), []byte{0x19, 0x01, 0x00}},
		{new(big.Int).Lsh(big.NewInt(1), 256), append([]byte{0x38, 0x21, 0x01}, bytes.Repeat([]byte{0x00}, 32)...)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, NewStream().AppendBig(tt.in).Out(), "%s", tt.in)
	}

	require.Panics(t, func() {
		NewStream().AppendBig(big.NewInt(-1))
	})
}

func TestAppendString(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, 300)
	tests := []struct {
		in  string
		out []byte
	}{
		{"", []byte{0x40}},
		{"dog", []byte{0x43, 'd', 'o', 'g'}},
		{string(bytes.Repeat([]byte{'a'}, 55)), append([]byte{0x77}, bytes.Repeat([]byte{'a'}, 55)...)},
		{string(bytes.Repeat([]byte{'b'}, 56)), append([]byte{0x78, 0x38}, bytes.Repeat([]byte{'b'}, 56)...)},
		{string(long), append([]byte{0x79, 0x01, 0x2c}, long...)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, NewStream().AppendString(tt.in).Out())
		require.Equal(t, tt.out, NewStream().AppendBytes([]byte(tt.in)).Out())
	}
}

func TestAppendList(t *testing.T) {
	require.Equal(t, []byte{0x80}, NewListStream(0).Out())

	require.Equal(t,
		[]byte{0x82, 0x01, 0x02},
		NewListStream(2).AppendUint64(1).AppendUint64(2).Out())

	// Nested lists are written front to back; item counts make byte
	// lengths unnecessary, so nothing needs patching.
	require.Equal(t,
		[]byte{0x82, 0x01, 0x82, 0x02, 0x03},
		NewListStream(2).
			AppendUint64(1).
			AppendList(2).AppendUint64(2).AppendUint64(3).
			Out())

	// 56 items cross into the indirect tier.
	s := NewListStream(56)
	for i := 0; i < 56; i++ {
		s.AppendUint64(0)
	}
	out := s.Out()
	require.Equal(t, []byte{0xb8, 0x38}, out[:2])
	require.Len(t, out, 58)
	require.NoError(t, NewNode(out).Validate())

	require.Panics(t, func() {
		NewStream().AppendList(-1)
	})
}

func TestAppendRaw(t *testing.T) {
	inner, err := EncodeList(uint64(2), uint64(3))
	require.NoError(t, err)
	out := NewListStream(2).AppendUint64(1).AppendRaw(inner).Out()
	require.Equal(t, []byte{0x82, 0x01, 0x82, 0x02, 0x03}, out)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		out  []byte
	}{
		{"uint64", uint64(256), []byte{0x19, 0x01, 0x00}},
		{"int", 23, []byte{0x17}},
		{"uint8", uint8(7), []byte{0x07}},
		{"string", "dog", []byte{0x43, 'd', 'o', 'g'}},
		{"bytes", []byte{0xca, 0xfe}, []byte{0x42, 0xca, 0xfe}},
		{"big", new(big.Int).Lsh(big.NewInt(1), 64), append([]byte{0x20, 0x01}, bytes.Repeat([]byte{0x00}, 8)...)},
		{"uint256", uint256.NewInt(24), []byte{0x18, 0x18}},
		{"node", NewNode([]byte{0x82, 0x01, 0x02}), []byte{0x82, 0x01, 0x02}},
		{"nested list", []interface{}{1, []interface{}{2, 3}}, []byte{0x82, 0x01, 0x82, 0x02, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, got)
		})
	}

	_, err := Encode(-1)
	require.Error(t, err)
	_, err = Encode(big.NewInt(-5))
	require.Error(t, err)
	_, err = Encode(struct{}{})
	require.Error(t, err)
	_, err = EncodeList(1, struct{}{})
	require.Error(t, err)
}

func TestEncodeList(t *testing.T) {
	out, err := EncodeList(uint64(1), "dog")
	require.NoError(t, err)
	require.Equal(t, []byte{0x82, 0x01, 0x43, 'd', 'o', 'g'}, out)

	n := NewNode(out)
	require.Equal(t, 2, n.ItemCount())
	require.True(t, n.Item(0).EqualsUint64(1))
	require.True(t, n.Item(1).EqualsString("dog"))
}

func TestRoundTripIntegers(t *testing.T) {
	vals := []uint64{0, 1, 23, 24, 55, 56, 255, 256, 65535, 1 << 24, 1 << 32, 1<<63 + 5, 1<<64 - 1}
	for _, v := range vals {
		n := NewNode(NewStream().AppendUint64(v).Out())
		require.NoError(t, n.Validate())
		got, err := n.AsUint64()
		require.NoError(t, err)
		require.Equal(t, v, got, "%d", v)
	}

	z := new(uint256.Int).Lsh(uint256.NewInt(7), 128)
	n := NewNode(NewStream().AppendUint256(z).Out())
	got, err := n.AsUint256()
	require.NoError(t, err)
	require.True(t, got.Eq(z))

	b := new(big.Int).Lsh(big.NewInt(9), 400)
	n = NewNode(NewStream().AppendBig(b).Out())
	gotBig, err := n.AsBig()
	require.NoError(t, err)
	require.Zero(t, b.Cmp(gotBig))
}

func TestRoundTripStrings(t *testing.T) {
	for _, size := range []int{0, 1, 23, 55, 56, 300, 4096} {
		payload := bytes.Repeat([]byte{0x5a}, size)
		n := NewNode(NewStream().AppendBytes(payload).Out())
		require.NoError(t, n.Validate())
		got, err := n.AsString()
		require.NoError(t, err)
		require.Equal(t, string(payload), got)
	}
}

func TestRoundTripNestedLists(t *testing.T) {
	// [0, [1, [2, [3, ...]]]] ten levels down.
	var build func(depth int) []interface{}
	build = func(depth int) []interface{} {
		if depth == 0 {
			return []interface{}{uint64(depth)}
		}
		return []interface{}{uint64(depth), build(depth - 1)}
	}
	enc, err := Encode(build(10))
	require.NoError(t, err)

	n := NewNode(enc)
	require.NoError(t, n.Validate())
	for depth := 10; depth > 0; depth-- {
		require.Equal(t, 2, n.ItemCount())
		require.EqualValues(t, depth, n.Item(0).Uint64())
		n = n.Item(1)
	}
	require.Equal(t, 1, n.ItemCount())
	require.True(t, n.Item(0).EqualsUint64(0))
}
