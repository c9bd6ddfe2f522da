/*
Package rlp implements the recursive length prefix encoding used to
serialize ledger objects (transactions, blocks and state entries) into
byte strings for hashing, storage and peer exchange.

Three categories exist on the wire: big-endian unsigned Integers, opaque
byte Strings, and heterogeneous Lists of further values. The first byte
of a value (its tag) carries the category together with a length tier:

	0x00-0x17  Integer, value held in the tag byte itself
	0x18-0x37  Integer, tag-0x17 big-endian value bytes follow
	0x38-0x3f  Integer, tag-0x37 length bytes give the value byte count
	0x40-0x77  String, tag-0x40 payload bytes follow
	0x78-0x7f  String, tag-0x77 length bytes give the payload length
	0x80-0xb7  List, tag-0x80 items follow
	0xb8-0xbf  List, tag-0xb7 length bytes give the ITEM count
	0xc0-0xff  unused; such bytes classify as Invalid

List headers count items, not bytes: finding the end of a list means
decoding each item in turn. Encoding is append-only and needs no
back-patching for the same reason.

Decoding wraps a buffer without copying it:

	n := rlp.NewNode(buf)
	if !n.IsList() {
		...
	}
	nonce := n.Item(0).Uint64()

Accessors come in two flavors. The lenient ones (Uint64, Str, Item,
ItemCount, ...) never fail: a category mismatch yields a zero value, an
empty result or the null node. The strict ones (AsUint64, AsString,
ItemCountStrict, ...) return ErrTypeMismatch instead, and surface
ErrTruncated or ErrTooDeep when a malformed buffer claims more than it
holds. Validate vets an untrusted buffer in one call.

Encoding goes through a Stream:

	enc := rlp.NewListStream(2).
		AppendUint64(nonce).
		AppendBytes(payload).
		Out()

or through the Encode and EncodeList helpers. Encoders always emit
minimal-width headers; the decoder accepts non-minimal ones.

Nodes are immutable views and safe to share between goroutines. Cursor,
Iterator and Stream values carry mutable state and belong to a single
goroutine.
*/
package rlp
