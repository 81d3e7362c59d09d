package list_test

import (
	stdlist "container/list"
	"testing"
)

func BenchmarkInsertDelete(b *testing.B) {
	b.Run("intrusive list", func(b *testing.B) {
		l := newItemList()
		it := &item{}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack(it)
			l.Remove(it)
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			e := l.PushBack("a")
			l.Remove(e)
		}
	})
}

func BenchmarkMoveAfter(b *testing.B) {
	b.Run("intrusive list", func(b *testing.B) {
		l := newItemList()
		pushItems(l, 1, 2)

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			front := l.Front()
			l.MoveAfter(front, l.Next(front))
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()

		l.PushBack("a")
		l.PushBack("b")

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			front := l.Front()
			l.MoveAfter(front, front.Next())
		}
	})
}
