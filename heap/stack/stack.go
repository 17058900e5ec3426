// Package stack implements a generic stack that owns its nodes exclusively,
// with three ways to walk it: by value (consuming), by read-only view, and
// by pointer.
package stack

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

type Stack[T any] struct {
	head *node[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
}

func (s *Stack[T]) Pop() (T, bool) {
	n := s.head
	if n == nil {
		var zero T
		return zero, false
	}
	s.head = n.next
	n.next = nil
	return n.elem, true
}

// Peek returns a copy of the top element.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the top element, valid until it is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// Drop releases every node with a loop that detaches each node's successor
// first, so teardown depth does not grow with the length of the stack.
func (s *Stack[T]) Drop() {
	cur := s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// IntoIter moves the whole chain into a consuming iterator. s is empty when
// IntoIter returns.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	it.rest.head = s.head
	s.head = nil
	return it
}

func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.head}
}

func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: s.head}
}

// Drain consumes s, yielding its elements from top to bottom. Stopping early
// drops whatever was not yielded.
func (s *Stack[T]) Drain() iter.Seq[T] {
	it := s.IntoIter()
	return func(yield func(T) bool) {
		defer it.Drop()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All yields the elements from top to bottom without modifying s.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// AllMut yields a pointer to each element from top to bottom.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := s.IterMut()
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// IntoIter owns the remainder of a stack and pops one element per step.
type IntoIter[T any] struct {
	rest Stack[T]
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.rest.Pop()
}

// Drop releases the elements not yet yielded.
func (it *IntoIter[T]) Drop() {
	it.rest.Drop()
}

// Iter is a read-only cursor into a stack.
type Iter[T any] struct {
	next *node[T]
}

func (it *Iter[T]) Next() (T, bool) {
	n := it.next
	if n == nil {
		var zero T
		return zero, false
	}
	it.next = n.next
	return n.elem, true
}

// IterMut is a cursor that hands out each element's address once. The
// cursor has already moved on when an element is yielded.
type IterMut[T any] struct {
	next *node[T]
}

func (it *IterMut[T]) Next() (*T, bool) {
	n := it.next
	if n == nil {
		return nil, false
	}
	it.next = n.next
	return &n.elem, true
}
