package rlp

import (
	"fmt"
	"strconv"
	"strings"
)

// maxFormatDepth caps how far String descends into nested lists.
const maxFormatDepth = 32

// String renders the node's decoded structure for logs and diagnostics:
// "null" for the null node, hex for Integers, quoted text for printable
// Strings and hex for binary ones, and bracketed lists. The rendering
// is free-form and not part of the wire format.
func (n Node) String() string {
	var b strings.Builder
	n.format(&b, 0)
	return b.String()
}

func (n Node) format(b *strings.Builder, depth int) {
	if depth > maxFormatDepth {
		b.WriteString("...")
		return
	}
	switch n.Kind() {
	case Integer:
		fmt.Fprintf(b, "%#x", n.Big())
	case String:
		payload := n.Bytes()
		if isPrintable(payload) {
			b.WriteString(strconv.Quote(string(payload)))
		} else {
			fmt.Fprintf(b, "0x%x", payload)
		}
	case List:
		b.WriteByte('[')
		it := n.NewIterator()
		for i := 0; it.Next(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			it.Value().format(b, depth+1)
		}
		b.WriteByte(']')
	default:
		if n.IsNull() {
			b.WriteString("null")
		} else {
			b.WriteString("invalid")
		}
	}
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
