package rlp

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Node is a read-only view of a single encoded value. It borrows the
// buffer it is given and never copies it, so a Node must not outlive the
// buffer, and the buffer must not be mutated while Nodes over it are in
// use. The zero Node is the null node.
//
// Nodes are immutable: every method leaves the receiver unchanged, and a
// Node may be shared freely between goroutines. Traversal state lives in
// Cursor and Iterator values instead, which are single-goroutine.
//
// Every method is defined on the null node and on malformed input:
// classifiers return false, lenient accessors return their documented
// defaults, and strict accessors return an error. Nothing panics on
// hostile bytes.
type Node struct {
	data []byte
}

// NewNode returns a Node viewing buf. buf may hold trailing bytes past
// the first encoded value; every method ignores them except Validate,
// which rejects them.
func NewNode(buf []byte) Node {
	return Node{data: buf}
}

// NewNodeFromString returns a Node viewing the bytes of s.
func NewNodeFromString(s string) Node {
	return Node{data: []byte(s)}
}

// Kind returns the node's category.
func (n Node) Kind() Kind {
	if len(n.data) == 0 || n.data[0] > listMax {
		return Invalid
	}
	switch {
	case n.data[0] <= intMax:
		return Integer
	case n.data[0] <= strMax:
		return String
	default:
		return List
	}
}

// IsNull reports whether the node views no bytes at all.
func (n Node) IsNull() bool { return len(n.data) == 0 }

// IsEmpty reports whether the node is the empty string or the empty
// list.
func (n Node) IsEmpty() bool {
	return len(n.data) > 0 && (n.data[0] == strTag || n.data[0] == listTag)
}

// IsInt reports whether the node is an Integer of any width.
func (n Node) IsInt() bool { return n.Kind() == Integer }

// IsString reports whether the node is a String.
func (n Node) IsString() bool { return n.Kind() == String }

// IsList reports whether the node is a List.
func (n Node) IsList() bool { return n.Kind() == List }

// FitsUint64 reports whether the node is an Integer narrow enough for a
// uint64: at most eight value bytes.
func (n Node) FitsUint64() bool {
	return len(n.data) > 0 && n.data[0] < 0x20
}

// FitsUint256 reports whether the node is an Integer in a fixed-width
// tier: at most 32 value bytes, held directly rather than through the
// addressed tier.
func (n Node) FitsUint256() bool {
	return len(n.data) > 0 && n.data[0] <= intDirectMax
}

// Raw returns the encoded bytes the node views, header included.
func (n Node) Raw() []byte { return n.data }

// payload returns the node's value bytes: everything after the tag and
// length bytes, clamped to the claimed count and to the bytes actually
// present. For Lists the claimed count is an item count, so the clamp is
// to the rest of the buffer.
func (n Node) payload() []byte {
	h, err := readHeader(n.data)
	if err != nil {
		return nil
	}
	out := crop(n.data, h.size)
	if h.kind != List && h.count < uint64(len(out)) {
		out = out[:h.count]
	}
	return out
}

// checkComplete verifies that the node's claimed payload is fully
// present in the buffer.
func (n Node) checkComplete() error {
	h, err := readHeader(n.data)
	if err != nil {
		return err
	}
	if h.kind == List {
		return nil
	}
	_, err = scalarSize(n.data, h)
	return err
}

// ItemCount returns the number of items a List node claims to contain,
// without verifying that the payload actually holds them. Non-lists
// count zero items.
func (n Node) ItemCount() int {
	h, err := readHeader(n.data)
	if err != nil || h.kind != List {
		return 0
	}
	if h.count > uint64(maxInt) {
		return maxInt
	}
	return int(h.count)
}

// ItemCountStrict is ItemCount for callers that need the category
// checked: it fails with ErrTypeMismatch when the node is not a List.
func (n Node) ItemCountStrict() (int, error) {
	if !n.IsList() {
		return 0, errors.Wrap(ErrTypeMismatch, "not a list")
	}
	return n.ItemCount(), nil
}

// StringSize returns the payload byte length a String node claims.
// Non-strings size zero.
func (n Node) StringSize() int {
	h, err := readHeader(n.data)
	if err != nil || h.kind != String {
		return 0
	}
	if h.count > uint64(maxInt) {
		return maxInt
	}
	return int(h.count)
}

// Validate checks that the node is exactly one well-formed encoded
// value: every length claim lies within the buffer, list nesting stays
// within the depth bound, and no bytes trail the value.
func (n Node) Validate() error {
	size, err := measure(n.data)
	if err != nil {
		return err
	}
	if size != len(n.data) {
		return ErrTrailingBytes
	}
	return nil
}

// valueBytes returns the big-endian bytes an integer conversion reads:
// the clamped payload for Integers and Strings, or the tag byte itself
// for the direct-value integer tier. ok is false for other categories.
func (n Node) valueBytes() ([]byte, bool) {
	h, err := readHeader(n.data)
	if err != nil || (h.kind != Integer && h.kind != String) {
		return nil, false
	}
	if h.kind == Integer && n.data[0] <= intValueMax {
		return n.data[:1], true
	}
	return n.payload(), true
}

// Uint64 returns the node's value as a uint64. Integers and Strings
// convert via big-endian interpretation of their value bytes, wrapping
// modulo 2^64 when wider; other categories yield 0.
func (n Node) Uint64() uint64 {
	b, ok := n.valueBytes()
	if !ok {
		return 0
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// Uint256 is Uint64's 256-bit counterpart, wrapping modulo 2^256.
func (n Node) Uint256() *uint256.Int {
	z := new(uint256.Int)
	if b, ok := n.valueBytes(); ok {
		z.SetBytes(b)
	}
	return z
}

// Big returns the node's value as a big.Int at full precision, with no
// wrapping. Non-numeric categories yield zero.
func (n Node) Big() *big.Int {
	z := new(big.Int)
	if b, ok := n.valueBytes(); ok {
		z.SetBytes(b)
	}
	return z
}

// Str returns a String node's payload as a string, empty for every
// other category. Truncated payloads are clamped to the bytes present.
func (n Node) Str() string {
	return string(n.strBytes())
}

// Bytes returns a String node's payload, nil for every other category.
// The slice borrows the node's buffer; callers that mutate it or retain
// it past the buffer's lifetime must copy.
func (n Node) Bytes() []byte {
	return n.strBytes()
}

func (n Node) strBytes() []byte {
	if !n.IsString() {
		return nil
	}
	return n.payload()
}

// AsUint64 returns an Integer node's value when it fits in 64 bits. Any
// other category, and Integers wider than eight value bytes, fail with
// ErrTypeMismatch.
func (n Node) AsUint64() (uint64, error) {
	if !n.FitsUint64() {
		return 0, errors.Wrap(ErrTypeMismatch, "not a 64-bit integer")
	}
	if err := n.checkComplete(); err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// AsUint256 returns an Integer node's value when it lies in a
// fixed-width tier: at most 32 value bytes.
func (n Node) AsUint256() (*uint256.Int, error) {
	if !n.FitsUint256() {
		return nil, errors.Wrap(ErrTypeMismatch, "not a 256-bit integer")
	}
	if err := n.checkComplete(); err != nil {
		return nil, err
	}
	return n.Uint256(), nil
}

// AsBig returns an Integer node's value at full precision, failing with
// ErrTypeMismatch on any other category.
func (n Node) AsBig() (*big.Int, error) {
	if !n.IsInt() {
		return nil, errors.Wrap(ErrTypeMismatch, "not an integer")
	}
	if err := n.checkComplete(); err != nil {
		return nil, err
	}
	return n.Big(), nil
}

// AsString returns a String node's payload, failing with
// ErrTypeMismatch on any other category.
func (n Node) AsString() (string, error) {
	if !n.IsString() {
		return "", errors.Wrap(ErrTypeMismatch, "not a string")
	}
	if err := n.checkComplete(); err != nil {
		return "", err
	}
	return n.Str(), nil
}

// Uint64FromString reads a String node's payload as a big-endian
// integer. Payloads longer than eight bytes do not fit and fail with
// ErrTypeMismatch, as does any non-String node.
func (n Node) Uint64FromString() (uint64, error) {
	if err := n.checkString(8); err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// Uint256FromString reads a String node's payload of at most 32 bytes
// as a big-endian integer.
func (n Node) Uint256FromString() (*uint256.Int, error) {
	if err := n.checkString(32); err != nil {
		return nil, err
	}
	return n.Uint256(), nil
}

// BigFromString reads a String node's payload of any length as a
// big-endian integer.
func (n Node) BigFromString() (*big.Int, error) {
	if err := n.checkString(maxInt); err != nil {
		return nil, err
	}
	return n.Big(), nil
}

// checkString validates that the node is a complete String whose
// payload fits in width bytes.
func (n Node) checkString(width int) error {
	if !n.IsString() {
		return errors.Wrap(ErrTypeMismatch, "not a string")
	}
	if err := n.checkComplete(); err != nil {
		return err
	}
	if n.StringSize() > width {
		return errors.Wrapf(ErrTypeMismatch, "%d-byte string overflows %d-byte integer", n.StringSize(), width)
	}
	return nil
}

// EqualsString reports whether the node is a String with payload s.
func (n Node) EqualsString(s string) bool {
	return n.IsString() && n.Str() == s
}

// EqualsUint64 reports whether the node is an Integer equal to v under
// the lenient conversion rules. Mismatched categories compare unequal.
func (n Node) EqualsUint64(v uint64) bool {
	return n.IsInt() && n.Uint64() == v
}

// EqualsUint256 reports whether the node is an Integer equal to v under
// the lenient conversion rules.
func (n Node) EqualsUint256(v *uint256.Int) bool {
	return n.IsInt() && n.Uint256().Eq(v)
}

// EqualsBig reports whether the node is an Integer equal to v.
func (n Node) EqualsBig(v *big.Int) bool {
	return n.IsInt() && n.Big().Cmp(v) == 0
}
