package rlp

// Cursor tracks a position inside one List node so that ascending index
// access costs a single pass over the payload in total, rather than one
// pass per access. It caches the most recently located item: its index,
// the payload offset one past its end, and a view of its bytes.
// Accessing the cached index or a larger one resumes the scan from that
// position; accessing a smaller index rescans from the start of the
// payload, so descending iteration is quadratic.
//
// Cursors carry mutable state and are not safe for concurrent use. The
// Node they wrap stays untouched.
type Cursor struct {
	node Node
	idx  int
	end  int
	item []byte
}

// NewCursor returns a Cursor over n. Cursors over non-list nodes yield
// only null nodes.
func NewCursor(n Node) *Cursor {
	return &Cursor{node: n, idx: -1}
}

// Item returns the i-th item of the cursor's list, advancing or
// restarting the cached scan position as needed. Out-of-range indices,
// non-list nodes and malformed payloads yield the null node.
func (c *Cursor) Item(i int) Node {
	if i < 0 || i >= c.node.ItemCount() {
		return Node{}
	}
	if i < c.idx {
		c.idx, c.end, c.item = -1, 0, nil
	}
	payload := c.node.payload()
	for c.idx < i {
		rest := crop(payload, c.end)
		size, err := measure(rest)
		if err != nil {
			return Node{}
		}
		c.item = rest[:size]
		c.end += size
		c.idx++
	}
	return Node{data: c.item}
}

// Item returns the i-th item of a List node, or the null node when i is
// out of range, the node is not a list, or the payload is malformed.
// Each call scans the payload from the start, so Item costs O(i); use a
// Cursor, an Iterator or List for whole-list access.
func (n Node) Item(i int) Node {
	return NewCursor(n).Item(i)
}

// List materializes all of a list's items in one pass. Non-list nodes,
// and lists whose payload does not hold the claimed item count, yield
// nil.
func (n Node) List() []Node {
	if !n.IsList() {
		return nil
	}
	count := n.ItemCount()
	if max := len(n.payload()); count > max {
		count = max
	}
	items := make([]Node, 0, count)
	it := n.NewIterator()
	for it.Next() {
		items = append(items, it.Value())
	}
	if len(items) != n.ItemCount() {
		return nil
	}
	return items
}
