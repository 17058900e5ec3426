// Package deque implements a doubly-linked deque whose nodes are shared
// between their neighbours and mutated through runtime-checked cells.
//
// Every interior node is owned twice, by the node before it and the node
// after it, so the links form reference cycles. Removing a node therefore
// severs both directions explicitly; a node whose count does not drop to
// zero on removal is a leak, and PopFront asserts that it does.
package deque

import (
	"list_ownership/heap/shared"

	"github.com/goose-lang/std"
)

type node[T any] struct {
	elem T
	next link[T]
	prev link[T]
}

type link[T any] = shared.Rc[shared.RefCell[node[T]]]

func newNode[T any](elem T) link[T] {
	return shared.NewRc(shared.NewRefCell(node[T]{elem: elem}))
}

// Deque is not safe for concurrent use.
type Deque[T any] struct {
	head link[T]
	tail link[T]
}

func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) IsEmpty() bool {
	return !d.head.IsSome()
}

// borrowAlso borrows b mutably while held is active. On conflict held is
// released before panicking, so a failed operation leaves every cell usable.
func borrowAlso[T any](held *shared.RefMut[node[T]], b link[T]) *shared.RefMut[node[T]] {
	w, err := b.Get().TryBorrowMut()
	if err != nil {
		held.Release()
		panic(err)
	}
	return w
}

// PushFront puts elem at the front. The new node ends up with two owners:
// the head field plus either the old head's prev or the tail field.
func (d *Deque[T]) PushFront(elem T) {
	newHead := newNode(elem)
	if !d.head.IsSome() {
		d.tail = newHead.Clone()
		d.head = newHead
		return
	}
	wOld := d.head.Get().BorrowMut()
	wNew := borrowAlso(wOld, newHead)
	std.Assert(!wOld.Get().prev.IsSome())
	wOld.Get().prev = newHead.Clone()
	wNew.Get().next = d.head.Take()
	wNew.Release()
	wOld.Release()
	d.head = newHead
}

// PopFront removes the front element. The removed node loses both of its
// owners, the head field and either the next node's prev or the tail field,
// and its count must reach zero.
func (d *Deque[T]) PopFront() (T, bool) {
	if !d.head.IsSome() {
		var zero T
		return zero, false
	}
	wOld := d.head.Get().BorrowMut()
	if next := wOld.Get().next; next.IsSome() {
		wNew := borrowAlso(wOld, next)
		newHead := wOld.Get().next.Take()
		back := wNew.Get().prev.Take()
		wNew.Release()
		wOld.Release()
		std.Assert(shared.PtrEq(back, d.head))
		back.Release()
		oldHead := d.head.Take()
		d.head = newHead
		return reclaim(oldHead), true
	}
	wOld.Release()
	std.Assert(shared.PtrEq(d.tail, d.head))
	d.tail.Release()
	return reclaim(d.head.Take()), true
}

func reclaim[T any](old link[T]) T {
	c, last := old.Release()
	std.Assert(last)
	n := c.IntoInner()
	std.Assert(!n.next.IsSome() && !n.prev.IsSome())
	return n.elem
}

// PeekFront returns a copy of the front element.
func (d *Deque[T]) PeekFront() (T, bool) {
	if !d.head.IsSome() {
		var zero T
		return zero, false
	}
	r := d.head.Get().Borrow()
	defer r.Release()
	return r.Get().elem, true
}

// Clear pops every element, unlinking each node in both directions.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PopFront(); !ok {
			return
		}
	}
}
