package crypto

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlake2B256(t *testing.T) {
	tests := []struct {
		in  []string
		out string
	}{
		{
			[]string{""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"cafe"},
			"4e400278c29c37ee640391dfb9792390a8ac9adb6200ed47c725a86099a8586c",
		},
		{
			// Chunking must not change the digest.
			[]string{strings.Repeat("00", 32), strings.Repeat("00", 32)},
			"0eb923b0cbd24df54401d998531feead35a47a99f4deed205de4af81120f9761",
		},
	}
	for _, tt := range tests {
		var pieces [][]byte
		for _, hexPiece := range tt.in {
			piece, err := hex.DecodeString(hexPiece)
			require.NoError(t, err)
			pieces = append(pieces, piece)
		}
		require.Equal(t, tt.out, Blake2B256(pieces...).String())
	}
}

func TestHashHexRoundTrip(t *testing.T) {
	in := Blake2B256([]byte("dog"))
	out, err := NewHashFromHex(in.String())
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = NewHashFromHex("zzzz")
	require.Error(t, err)
	_, err = NewHashFromHex("cafe")
	require.Error(t, err)
}

func TestHashJSONRoundTrip(t *testing.T) {
	in := Blake2B256([]byte("dog"))
	enc, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `"`+in.String()+`"`, string(enc))

	var out Hash
	require.NoError(t, json.Unmarshal(enc, &out))
	require.Equal(t, in, out)
}
