/*
Package list implements an intrusive circular doubly-linked list.

The list is threaded through a Node field embedded in the element type, so
linking an element allocates nothing and removing an element found by other
means is O(1). An element type may embed several Node fields and be a member
of that many lists at once.
*/
package list

import (
	"iter"

	"github.com/ShawnFeng0/intrusive-list/internal/member"
)

// List is a circular doubly-linked list threaded through one Node field of
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
// nodeOf:
//
//	type task struct {
//		name  string
//		ready list.Node
//	}
//
//	l := list.New(func(t *task) *list.Node { return &t.ready })
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
	return isEmpty(&l.head)
}

// Singular reports whether the list has exactly one element.
func (l *List[T]) Singular() bool {
	return isSingular(&l.head)
}

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation. The list does not track its length so
// that splicing and cutting stay O(1).
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

// Back returns the last element of the list or nil.
func (l *List[T]) Back() *T {
	if l.Empty() {
		return nil
	}
	return l.ownerOf(l.head.prev)
}

// PushFront inserts item at the front of the list. The item must not be an
// element of any list.
func (l *List[T]) PushFront(item *T) {
	l.head.Link(l.nodeOf(item))
}

// PushBack inserts item at the back of the list. The item must not be an
// element of any list.
func (l *List[T]) PushBack(item *T) {
	linkBetween(l.nodeOf(item), l.head.prev, &l.head)
}

// PopFront removes and returns the first element, or nil when the list is
// empty.
func (l *List[T]) PopFront() *T {
	if l.Empty() {
		return nil
	}
	n := l.head.next
	n.Unlink()
	return l.ownerOf(n)
}

// PopBack removes and returns the last element, or nil when the list is
// empty.
func (l *List[T]) PopBack() *T {
	if l.Empty() {
		return nil
	}
	n := l.head.prev
	n.Unlink()
	return l.ownerOf(n)
}

// Remove removes item from the list in O(1) and resets its node. The item
// must be an element of this list.
func (l *List[T]) Remove(item *T) {
	l.nodeOf(item).Unlink()
}

// TryRemove removes item if its node is linked and reports whether it did.
func (l *List[T]) TryRemove(item *T) bool {
	n := l.nodeOf(item)
	if !n.Linked() {
		return false
	}
	n.Unlink()
	return true
}

// InsertAfter inserts item after mark. The mark must be an element of this
// list.
func (l *List[T]) InsertAfter(item, mark *T) {
	l.nodeOf(mark).Link(l.nodeOf(item))
}

// InsertBefore inserts item before mark. The mark must be an element of
// this list.
func (l *List[T]) InsertBefore(item, mark *T) {
	m := l.nodeOf(mark)
	linkBetween(l.nodeOf(item), m.prev, m)
}

// MoveToFront moves item to the front of the list. The item must be an
// element of this list.
func (l *List[T]) MoveToFront(item *T) {
	n := l.nodeOf(item)
	unlinkRange(n, n)
	linkBetween(n, &l.head, l.head.next)
}

// MoveToBack moves item to the back of the list. The item must be an
// element of this list.
func (l *List[T]) MoveToBack(item *T) {
	n := l.nodeOf(item)
	unlinkRange(n, n)
	linkBetween(n, l.head.prev, &l.head)
}

// MoveAfter moves item to its new position after mark. Both must be
// elements of this list.
func (l *List[T]) MoveAfter(item, mark *T) {
	if item == mark {
		return
	}
	n, m := l.nodeOf(item), l.nodeOf(mark)
	unlinkRange(n, n)
	linkBetween(n, m, m.next)
}

// MoveBefore moves item to its new position before mark. Both must be
// elements of this list.
func (l *List[T]) MoveBefore(item, mark *T) {
	if item == mark {
		return
	}
	n, m := l.nodeOf(item), l.nodeOf(mark)
	unlinkRange(n, n)
	linkBetween(n, m.prev, m)
}

// MoveRangeToBack moves the run of elements from first through last to the
// back of the list in O(1), regardless of the run's length. The run must
// be contiguous and belong to this list; the behavior is unspecified
// otherwise.
func (l *List[T]) MoveRangeToBack(first, last *T) {
	f, b := l.nodeOf(first), l.nodeOf(last)
	unlinkRange(f, b)
	linkRange(f, b, l.head.prev, &l.head)
}

// SpliceBack moves all elements of other to the back of list l in O(1),
// leaving other empty. Both lists must be bound to the same node field.
func (l *List[T]) SpliceBack(other *List[T]) {
	l.checkBinding(other)
	if other.Empty() {
		return
	}
	first, last := other.head.next, other.head.prev
	linkRange(first, last, l.head.prev, &l.head)
	other.head.Init()
}

// SpliceFront moves all elements of other to the front of list l in O(1),
// leaving other empty. Both lists must be bound to the same node field.
func (l *List[T]) SpliceFront(other *List[T]) {
	l.checkBinding(other)
	if other.Empty() {
		return
	}
	first, last := other.head.next, other.head.prev
	linkRange(first, last, &l.head, l.head.next)
	other.head.Init()
}

// Cut splits the list at entry, moving the elements from the front through
// entry into out. Any elements previously in out are abandoned with their
// nodes still linked to one another. Cutting an empty list leaves out
// untouched, and cutting a singular list at an entry that is not its sole
// element does nothing. The entry must be an element of this list.
func (l *List[T]) Cut(out *List[T], entry *T) {
	l.checkBinding(out)
	if entry == nil {
		panic("list: cut at nil entry")
	}
	cutPosition(&out.head, &l.head, l.nodeOf(entry))
}

// RotateLeft moves the first element to the back of the list. Rotating an
// empty or singular list is a no-op.
func (l *List[T]) RotateLeft() {
	if l.Empty() {
		return
	}
	n := l.head.next
	unlinkRange(n, n)
	linkBetween(n, l.head.prev, &l.head)
}

// Next returns the element after item, or nil if item is the last. The
// item must be an element of this list.
func (l *List[T]) Next(item *T) *T {
	n := l.nodeOf(item).next
	if n == &l.head {
		return nil
	}
	return l.ownerOf(n)
}

// Prev returns the element before item, or nil if item is the first. The
// item must be an element of this list.
func (l *List[T]) Prev(item *T) *T {
	n := l.nodeOf(item).prev
	if n == &l.head {
		return nil
	}
	return l.ownerOf(n)
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
// back. The successor is captured before an element is yielded, so the
// current element may be removed during iteration.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		var next *Node
		for n := l.head.next; n != &l.head; n = next {
			next = n.next
			if !yield(l.ownerOf(n)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from back to
// front. The predecessor is captured before an element is yielded, so the
// current element may be removed during iteration.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		var prev *Node
		for n := l.head.prev; n != &l.head; n = prev {
			prev = n.prev
			if !yield(l.ownerOf(n)) {
				return
			}
		}
	}
}

func (l *List[T]) checkBinding(other *List[T]) {
	if other == l {
		panic("list: source and destination are the same list")
	}
	if other.off != l.off {
		panic("list: lists are bound to different node fields")
	}
}
