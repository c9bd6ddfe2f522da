package rlp

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Stream builds encoded output. The buffer is append-only: list headers
// carry item counts rather than byte lengths, so nested structures are
// written strictly front to back with no forward patching. Append
// methods return the receiver for chaining:
//
//	enc := rlp.NewListStream(2).AppendUint64(1).AppendString("dog").Out()
//
// A Stream owns its buffer exclusively and is not safe for concurrent
// use.
type Stream struct {
	out []byte
}

// NewStream returns an empty encoder stream.
func NewStream() *Stream {
	return &Stream{}
}

// NewListStream returns a stream primed with a list header announcing
// count items. The caller must append exactly count values after it.
func NewListStream(count int) *Stream {
	return NewStream().AppendList(count)
}

// AppendUint64 appends v in its minimal encoding: values below 0x18 are
// the bare tag byte, larger ones an indirect-value tag plus the fewest
// big-endian bytes that hold v.
func (s *Stream) AppendUint64(v uint64) *Stream {
	if v <= intValueMax {
		s.out = append(s.out, byte(v))
		return s
	}
	n := bytesRequired(v)
	s.out = append(s.out, byte(intValueMax+n))
	s.appendBE(v, n)
	return s
}

// AppendUint256 appends v under the same minimal-width policy as
// AppendUint64. A 256-bit value never needs the addressed tier.
func (s *Stream) AppendUint256(v *uint256.Int) *Stream {
	if v.LtUint64(intValueMax + 1) {
		s.out = append(s.out, byte(v.Uint64()))
		return s
	}
	b := v.Bytes()
	s.out = append(s.out, byte(intValueMax+len(b)))
	s.out = append(s.out, b...)
	return s
}

// AppendBig appends v at full precision. Values wider than 32 bytes use
// the addressed integer tier: a length-of-length tag, the big-endian
// byte count, then the value bytes. The grammar has no sign; a negative
// v is a caller error and panics.
func (s *Stream) AppendBig(v *big.Int) *Stream {
	if v.Sign() < 0 {
		panic("rlp: cannot append negative big.Int")
	}
	if v.IsUint64() && v.Uint64() <= intValueMax {
		s.out = append(s.out, byte(v.Uint64()))
		return s
	}
	b := v.Bytes()
	if len(b) <= 32 {
		s.out = append(s.out, byte(intValueMax+len(b)))
		s.out = append(s.out, b...)
		return s
	}
	n := bytesRequired(uint64(len(b)))
	s.out = append(s.out, byte(intDirectMax+n))
	s.appendBE(uint64(len(b)), n)
	s.out = append(s.out, b...)
	return s
}

// AppendString appends str as a String value.
func (s *Stream) AppendString(str string) *Stream {
	s.pushCount(uint64(len(str)), strTag)
	s.out = append(s.out, str...)
	return s
}

// AppendBytes appends b as a String value.
func (s *Stream) AppendBytes(b []byte) *Stream {
	s.pushCount(uint64(len(b)), strTag)
	s.out = append(s.out, b...)
	return s
}

// AppendList appends a header announcing count items. The items follow
// from subsequent appends; the stream does not verify that exactly
// count arrive.
func (s *Stream) AppendList(count int) *Stream {
	if count < 0 {
		panic("rlp: negative list count")
	}
	s.pushCount(uint64(count), listTag)
	return s
}

// AppendRaw splices an already-encoded value into the stream.
func (s *Stream) AppendRaw(enc []byte) *Stream {
	s.out = append(s.out, enc...)
	return s
}

// Out returns the encoded buffer. The slice aliases the stream's
// backing array; further appends may invalidate it.
func (s *Stream) Out() []byte {
	return s.out
}

// pushCount appends a direct tag when count fits the direct tier, or a
// length-of-length tag followed by the minimal big-endian count when it
// does not.
func (s *Stream) pushCount(count uint64, base byte) {
	if count <= directCountMax {
		s.out = append(s.out, base+byte(count))
		return
	}
	n := bytesRequired(count)
	s.out = append(s.out, base+directCountMax+byte(n))
	s.appendBE(count, n)
}

// appendBE appends the low n bytes of v, most significant first.
func (s *Stream) appendBE(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		s.out = append(s.out, byte(v>>(8*uint(i))))
	}
}

// bytesRequired returns how many bytes the big-endian encoding of v
// occupies. Zero still occupies one.
func bytesRequired(v uint64) int {
	n := 1
	for v >>= 8; v != 0; v >>= 8 {
		n++
	}
	return n
}

// Encode returns the encoding of item. Supported types are unsigned and
// non-negative signed integers, strings, byte slices, *big.Int,
// *uint256.Int, Node (spliced as already-encoded bytes) and
// []interface{}, which encodes as a list.
func Encode(item interface{}) ([]byte, error) {
	s := NewStream()
	if err := s.appendItem(item); err != nil {
		return nil, err
	}
	return s.Out(), nil
}

// EncodeList returns the encoding of items as a single list.
func EncodeList(items ...interface{}) ([]byte, error) {
	s := NewListStream(len(items))
	for _, item := range items {
		if err := s.appendItem(item); err != nil {
			return nil, err
		}
	}
	return s.Out(), nil
}

func (s *Stream) appendItem(item interface{}) error {
	switch it := item.(type) {
	case uint64:
		s.AppendUint64(it)
	case uint:
		s.AppendUint64(uint64(it))
	case uint32:
		s.AppendUint64(uint64(it))
	case uint16:
		s.AppendUint64(uint64(it))
	case uint8:
		s.AppendUint64(uint64(it))
	case int:
		if it < 0 {
			return errors.Errorf("cannot encode negative integer %d", it)
		}
		s.AppendUint64(uint64(it))
	case int64:
		if it < 0 {
			return errors.Errorf("cannot encode negative integer %d", it)
		}
		s.AppendUint64(uint64(it))
	case *big.Int:
		if it.Sign() < 0 {
			return errors.Errorf("cannot encode negative integer %s", it)
		}
		s.AppendBig(it)
	case *uint256.Int:
		s.AppendUint256(it)
	case string:
		s.AppendString(it)
	case []byte:
		s.AppendBytes(it)
	case Node:
		s.AppendRaw(it.Raw())
	case []interface{}:
		s.AppendList(len(it))
		for _, sub := range it {
			if err := s.appendItem(sub); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("cannot encode type %T", item)
	}
	return nil
}
