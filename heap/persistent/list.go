// Package persistent implements an immutable singly-linked list whose
// handles share suffixes. Append and Tail are O(1) and never copy elements:
//
//	a := New[string]().Append("D").Append("C").Append("B").Append("A")
//	b := a.Tail()         // B -> C -> D, the same nodes a points into
//	c := b.Append("X")    // X -> B -> C -> D
//
// Nodes are reference counted. Each *List owns one count on its head node
// until Drop is called; a node never changes after it is built, so any
// number of handles and iterators can read a shared chain at once.
package persistent

import (
	"iter"

	"list_ownership/heap/shared"
)

type node[T any] struct {
	elem T
	next shared.Rc[node[T]]
}

type List[T any] struct {
	head shared.Rc[node[T]]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) IsEmpty() bool {
	return !l.head.IsSome()
}

// Append returns a list with elem in front of l. l is unchanged.
func (l *List[T]) Append(elem T) *List[T] {
	return &List[T]{head: shared.NewRc(node[T]{elem: elem, next: l.head.Clone()})}
}

// Tail returns l without its first element. The tail of an empty list is
// empty.
func (l *List[T]) Tail() *List[T] {
	if !l.head.IsSome() {
		return New[T]()
	}
	return &List[T]{head: l.head.Get().next.Clone()}
}

func (l *List[T]) Head() (T, bool) {
	if !l.head.IsSome() {
		var zero T
		return zero, false
	}
	return l.head.Get().elem, true
}

// Clone returns another handle to the same chain.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{head: l.head.Clone()}
}

// Drop gives up l's reference to its chain. Nodes are released front to
// back only while l was their last owner; the walk stops at the first node
// another handle still holds. l is empty afterwards.
func (l *List[T]) Drop() {
	cur := l.head.Take()
	for cur.IsSome() {
		n, last := cur.Release()
		if !last {
			return
		}
		cur = n.next
	}
}

func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// All yields the elements front to back. Every call starts from the current
// head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iter walks a chain without taking references. The list it came from must
// stay alive (not dropped) while the iterator is in use; reaching a node
// that was reclaimed in the meantime panics.
type Iter[T any] struct {
	// borrowed from the chain, not counted
	next shared.Rc[node[T]]
}

func (it *Iter[T]) Next() (T, bool) {
	if !it.next.IsSome() {
		var zero T
		return zero, false
	}
	n := it.next.Get()
	it.next = n.next
	return n.elem, true
}
