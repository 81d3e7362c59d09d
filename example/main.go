package main

import (
	"fmt"

	"github.com/ShawnFeng0/intrusive-list/list"
)

type task struct {
	name string

	// One node per list; a task sits on both lists at once.
	ready   list.Node
	expired list.Node
}

func main() {
	ready := list.New(func(t *task) *list.Node { return &t.ready })
	expired := list.New(func(t *task) *list.Node { return &t.expired })

	compact := &task{name: "compact"}
	flush := &task{name: "flush"}
	upload := &task{name: "upload"}

	ready.PushBack(compact)
	ready.PushBack(flush)
	ready.PushBack(upload)

	// The same tasks join a second list through their other node field.
	expired.PushFront(flush)
	expired.PushFront(upload)

	// Removal is O(1) and leaves the other list untouched.
	ready.Remove(flush)

	for t := range ready.All() {
		fmt.Println("ready:", t.name)
	}

	for t := range expired.All() {
		fmt.Println("expired:", t.name)
	}
}
