package rlp

// Iterator walks a list's items in order:
//
//	it := n.NewIterator()
//	for it.Next() {
//		handle(it.Value())
//	}
//
// The zero Iterator is empty. Iterators are not safe for concurrent
// use; construct a fresh one to restart.
type Iterator struct {
	rest      []byte
	remaining int
	item      Node
}

// NewIterator returns an iterator over the node's items. Iterating a
// non-list node yields nothing. Iteration stops early when the payload
// holds fewer well-formed items than the header claims.
func (n Node) NewIterator() *Iterator {
	if !n.IsList() {
		return &Iterator{}
	}
	return &Iterator{rest: n.payload(), remaining: n.ItemCount()}
}

// Next advances to the next item, reporting whether one was found.
func (it *Iterator) Next() bool {
	if it.remaining == 0 {
		it.item = Node{}
		return false
	}
	size, err := measure(it.rest)
	if err != nil {
		it.remaining = 0
		it.item = Node{}
		return false
	}
	it.item = Node{data: it.rest[:size]}
	it.rest = it.rest[size:]
	it.remaining--
	return true
}

// Value returns the item Next advanced to, or the null node when Next
// has not been called or returned false.
func (it *Iterator) Value() Node {
	return it.item
}
