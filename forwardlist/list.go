/*
Package forwardlist implements an intrusive circular singly-linked list.

The list is threaded through a Node field embedded in the element type and
carries one link per element, half the size of its doubly-linked sibling.
The trade is that removal has to find the predecessor, so it costs a scan
from the front.
*/
package forwardlist

import (
	"iter"

	"github.com/ShawnFeng0/intrusive-list/internal/member"
)

// List is a circular singly-linked list threaded through one Node field of
// the element type T. Elements are caller-allocated; the list stores no
// values and never allocates.
//
// A List must be initialized with New or Init before use and must not be
// copied after first use. The zero value is not valid.
type List[T any] struct {
	head   Node
	nodeOf func(*T) *Node
	off    uintptr
}

// New creates an empty list threaded through the Node field selected by
// nodeOf.
func New[T any](nodeOf func(*T) *Node) *List[T] {
	return new(List[T]).Init(nodeOf)
}

// Init initializes or clears list l, binding it to the Node field selected
// by nodeOf. It panics if nodeOf does not select a field of its argument.
// Elements of a cleared list are abandoned with their nodes still linked
// to one another.
func (l *List[T]) Init(nodeOf func(*T) *Node) *List[T] {
	l.head.Init()
	l.nodeOf = nodeOf
	l.off = member.Offset(nodeOf)
	return l
}

func (l *List[T]) ownerOf(n *Node) *T {
	return member.Owner[T](n, l.off)
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head.next == &l.head
}

// Singular reports whether the list has exactly one element.
func (l *List[T]) Singular() bool {
	return l.head.next != &l.head && l.head.next.next == &l.head
}

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head.next; n != &l.head; n = n.next {
		count++
	}
	return count
}

// Front returns the first element of the list or nil.
func (l *List[T]) Front() *T {
	if l.Empty() {
		return nil
	}
	return l.ownerOf(l.head.next)
}

// PushFront inserts item at the front of the list. The item must not be an
// element of any list.
func (l *List[T]) PushFront(item *T) {
	l.head.Link(l.nodeOf(item))
}

// PopFront removes and returns the first element, or nil when the list is
// empty.
func (l *List[T]) PopFront() *T {
	if l.Empty() {
		return nil
	}
	n := l.head.next
	l.head.next = n.next
	n.next = nil
	return l.ownerOf(n)
}

// InsertAfter inserts item after mark. The mark must be an element of this
// list.
func (l *List[T]) InsertAfter(item, mark *T) {
	l.nodeOf(mark).Link(l.nodeOf(item))
}

// Remove scans for item, removes it and reports whether it was found. The
// scan makes Remove O(n); at most one element is removed.
func (l *List[T]) Remove(item *T) bool {
	target := l.nodeOf(item)
	for prev := &l.head; prev.next != &l.head; prev = prev.next {
		if prev.next == target {
			prev.next = target.next
			target.next = nil
			return true
		}
	}
	return false
}

// RemoveFunc removes every element for which match returns true and
// returns the number removed. The matches need not be adjacent; the whole
// list is scanned once.
func (l *List[T]) RemoveFunc(match func(*T) bool) int {
	count := 0
	for prev := &l.head; prev.next != &l.head; {
		n := prev.next
		if match(l.ownerOf(n)) {
			prev.next = n.next
			n.next = nil
			count++
		} else {
			prev = n
		}
	}
	return count
}

// Do calls f on each element of the list in forward order. If f returns
// false, Do stops the iteration. f must not modify the list.
func (l *List[T]) Do(f func(*T) bool) {
	for n := l.head.next; n != &l.head; n = n.next {
		if !f(l.ownerOf(n)) {
			return
		}
	}
}

// All returns an iterator over the elements of the list from front to
// back. The list must not be modified during iteration; use Remove or
// RemoveFunc to erase elements.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.next; n != &l.head; n = n.next {
			if !yield(l.ownerOf(n)) {
				return
			}
		}
	}
}
