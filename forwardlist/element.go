package forwardlist

// Element is a ready-made list element carrying a value, for callers that
// have no struct of their own to thread a Node through.
type Element[V any] struct {
	node  Node
	Value V
}

// NewElement creates an unlinked element holding v.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{Value: v}
}

// ElementList is a list of value-carrying Elements. It is a List bound to
// the Element node field, so all List operations apply.
//
// Create one with NewElementList; the zero value is not valid.
type ElementList[V any] struct {
	List[Element[V]]
}

// NewElementList creates an empty list of Elements.
func NewElementList[V any]() *ElementList[V] {
	l := new(ElementList[V])
	l.Init(func(e *Element[V]) *Node { return &e.node })
	return l
}
