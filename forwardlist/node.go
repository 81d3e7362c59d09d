package forwardlist

// Node threads an element through a circular singly-linked ring. It is
// embedded inside the struct it links together; the list never owns or
// allocates it, and unlinking a node does not affect the embedding struct.
//
// The zero value is an unlinked node.
type Node struct {
	next *Node
}

// Init links the node to itself, making it a singleton ring. A list anchor
// starts out this way.
func (n *Node) Init() {
	n.next = n
}

// Next returns the node's successor in the ring, which may be the ring's
// anchor. The node must be linked.
func (n *Node) Next() *Node { return n.next }

// Link inserts node s after this node. Any previous link of s is
// overwritten; s must not be linked into another ring.
func (n *Node) Link(s *Node) {
	s.next = n.next
	n.next = s
}
