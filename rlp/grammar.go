package rlp

// Kind classifies an encoded value. The tag byte alone determines the
// Kind; bytes 0xc0 and above match no category and classify as Invalid,
// as does the null node.
type Kind int8

const (
	Invalid Kind = iota
	Integer
	String
	List
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Invalid"
	}
}

// Tag ranges. Each category has a direct tier, where the tag byte itself
// carries the payload length or item count, and an indirect tier, where
// the low bits of the tag give the size of a big-endian count that
// follows it. Integers additionally split their direct range into values
// held in the tag byte (0x00-0x17) and values held as tagged payload
// bytes (0x18-0x37).
const (
	intValueMax   = 0x17
	intDirectMax  = 0x37
	intMax        = 0x3f
	strTag        = 0x40
	strDirectMax  = 0x77
	strMax        = 0x7f
	listTag       = 0x80
	listDirectMax = 0xb7
	listMax       = 0xbf

	// directCountMax is the largest count a direct-tier tag can carry.
	directCountMax = 0x37

	// maxListDepth bounds list nesting during sizing and validation.
	maxListDepth = 1024
)

const maxInt = int(^uint(0) >> 1)

// header is the decoded form of a value's tag byte and length bytes.
// count holds payload bytes for Integers and Strings, and the item count
// for Lists.
type header struct {
	kind  Kind
	size  int
	count uint64
}

// readHeader decodes the tag and length bytes at the head of buf. It
// verifies that the length bytes themselves are present, not that the
// payload they describe is.
func readHeader(buf []byte) (header, error) {
	if len(buf) == 0 {
		return header{}, ErrTruncated
	}
	tag := buf[0]
	switch {
	case tag <= intValueMax:
		return header{kind: Integer, size: 1}, nil
	case tag <= intDirectMax:
		return header{kind: Integer, size: 1, count: uint64(tag - intValueMax)}, nil
	case tag <= intMax:
		return readCount(buf, Integer, tag-intDirectMax)
	case tag <= strDirectMax:
		return header{kind: String, size: 1, count: uint64(tag - strTag)}, nil
	case tag <= strMax:
		return readCount(buf, String, tag-strDirectMax)
	case tag <= listDirectMax:
		return header{kind: List, size: 1, count: uint64(tag - listTag)}, nil
	case tag <= listMax:
		return readCount(buf, List, tag-listDirectMax)
	default:
		return header{}, ErrInvalidTag
	}
}

// readCount assembles the lengthSize big-endian count bytes that follow
// an indirect-tier tag. lengthSize is at most 8 in every category, so
// counts always fit a uint64.
func readCount(buf []byte, kind Kind, lengthSize byte) (header, error) {
	if int(lengthSize) >= len(buf) {
		return header{}, ErrTruncated
	}
	var count uint64
	for _, b := range buf[1 : 1+lengthSize] {
		count = count<<8 | uint64(b)
	}
	return header{kind: kind, size: 1 + int(lengthSize), count: count}, nil
}

// scalarSize bounds-checks a non-list header against the buffer it was
// read from and returns the value's full encoded size.
func scalarSize(buf []byte, h header) (int, error) {
	if h.count > uint64(len(buf)-h.size) {
		return 0, ErrTruncated
	}
	return h.size + int(h.count), nil
}

// measure returns the encoded size of the value at the head of buf.
// Scalar sizes fall directly out of the header. List headers carry item
// counts rather than byte lengths, so sizing a list means decoding every
// value it contains. The walk is iterative, tracking the unconsumed item
// count of each open list on an explicit stack, and rejects input nested
// more than maxListDepth lists deep, so hostile buffers cannot exhaust
// the goroutine stack or read out of bounds.
func measure(buf []byte) (int, error) {
	h, err := readHeader(buf)
	if err != nil {
		return 0, err
	}
	if h.kind != List {
		return scalarSize(buf, h)
	}
	pos := h.size
	stack := []uint64{h.count}
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top] == 0 {
			stack = stack[:top]
			continue
		}
		stack[top]--
		ih, err := readHeader(buf[pos:])
		if err != nil {
			return 0, err
		}
		if ih.kind == List {
			if len(stack) == maxListDepth {
				return 0, ErrTooDeep
			}
			pos += ih.size
			stack = append(stack, ih.count)
			continue
		}
		n, err := scalarSize(buf[pos:], ih)
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}
