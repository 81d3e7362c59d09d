package list

// Node threads an element through a circular doubly-linked ring. It is
// embedded inside the struct it links together; the list never owns or
// allocates it, and unlinking a node does not affect the embedding struct.
//
// The zero value is an unlinked node.
type Node struct {
	next, prev *Node
}

// Init links the node to itself, making it a singleton ring. A list anchor
// starts out this way, and an unlinked node may be re-initialized to become
// one again.
func (n *Node) Init() {
	n.next = n
	n.prev = n
}

// Next returns the node's successor in the ring, which may be the ring's
// anchor. The node must be linked.
func (n *Node) Next() *Node { return n.next }

// Prev returns the node's predecessor in the ring, which may be the ring's
// anchor. The node must be linked.
func (n *Node) Prev() *Node { return n.prev }

// Linked reports whether the node is threaded into a ring. It is false for
// the zero value and after Unlink.
func (n *Node) Linked() bool { return n.next != nil && n.prev != nil }

// Link inserts node s after this node. Any previous links of s are
// overwritten; s must not be linked into another ring.
func (n *Node) Link(s *Node) {
	linkBetween(s, n, n.next)
}

// Unlink removes the node from its ring and resets both links, so that
// Linked reports false. The node must be linked.
func (n *Node) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// linkBetween splices n between two known adjacent nodes. Every insertion
// in the package reduces to this.
func linkBetween(n, prev, next *Node) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// linkRange splices the run [first..last] between two known adjacent
// nodes.
func linkRange(first, last, prev, next *Node) {
	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last
}

// unlinkRange detaches the run [first..last] from its ring. The run keeps
// its internal links; the caller relinks or clears its boundaries.
func unlinkRange(first, last *Node) {
	first.prev.next = last.next
	last.next.prev = first.prev
}

func isEmpty(anchor *Node) bool {
	return anchor.next == anchor
}

func isSingular(anchor *Node) bool {
	return anchor.next != anchor && anchor.next == anchor.prev
}

// cutPosition moves the run [anchor.next..entry] into out, replacing
// whatever ring out anchored before. An empty source is left alone, as is
// a singular source whose sole element is provably not entry. Cutting at
// the anchor itself moves nothing and resets out.
func cutPosition(out, anchor, entry *Node) {
	if isEmpty(anchor) {
		return
	}
	if isSingular(anchor) && entry != anchor.next && entry != anchor {
		return
	}
	if entry == anchor {
		out.Init()
		return
	}

	rest := entry.next
	out.next = anchor.next
	out.next.prev = out
	out.prev = entry
	entry.next = out
	anchor.next = rest
	rest.prev = anchor
}
