package shared

import (
	"errors"
	"fmt"

	"github.com/goose-lang/std"
)

var (
	// ErrBorrowed is the cause of a failed mutable borrow: readers are active.
	ErrBorrowed = errors.New("already borrowed")
	// ErrMutablyBorrowed is the cause of any failed borrow while a writer is
	// active.
	ErrMutablyBorrowed = errors.New("already mutably borrowed")
)

// BorrowError describes a borrow that conflicted with one already active on
// the same cell.
type BorrowError struct {
	Mutable bool // the rejected borrow was a BorrowMut
	Readers int  // readers active at the time
	err     error
}

func (e *BorrowError) Error() string {
	kind := "immutably"
	if e.Mutable {
		kind = "mutably"
	}
	return fmt.Sprintf("shared: cannot borrow %s (%d readers): %v", kind, e.Readers, e.err)
}

func (e *BorrowError) Unwrap() error {
	return e.err
}

const writing = -1

// RefCell holds a value whose borrows are checked when they happen: any
// number of readers, or exactly one writer.
type RefCell[T any] struct {
	value T
	// >0 readers, writing, or 0 when idle
	state int
}

func NewRefCell[T any](value T) RefCell[T] {
	return RefCell[T]{value: value}
}

// TryBorrow starts a shared read of the value.
func (c *RefCell[T]) TryBorrow() (*Ref[T], error) {
	if c.state == writing {
		return nil, &BorrowError{Mutable: false, err: ErrMutablyBorrowed}
	}
	c.state++
	return &Ref[T]{cell: c}, nil
}

// TryBorrowMut starts an exclusive write of the value.
func (c *RefCell[T]) TryBorrowMut() (*RefMut[T], error) {
	switch {
	case c.state == writing:
		return nil, &BorrowError{Mutable: true, err: ErrMutablyBorrowed}
	case c.state > 0:
		return nil, &BorrowError{Mutable: true, Readers: c.state, err: ErrBorrowed}
	}
	c.state = writing
	return &RefMut[T]{cell: c}, nil
}

// Borrow is TryBorrow, panicking with a *BorrowError on conflict.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// BorrowMut is TryBorrowMut, panicking with a *BorrowError on conflict.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	w, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return w
}

// IntoInner moves the value out. No borrow may be active.
func (c *RefCell[T]) IntoInner() T {
	std.Assert(c.state == 0)
	var zero T
	value := c.value
	c.value = zero
	return value
}

// Ref is an active read of a RefCell. Guards are handed out as pointers so
// that every copy sees the same release.
type Ref[T any] struct {
	cell *RefCell[T]
}

func (r *Ref[T]) Get() T {
	std.Assert(r.cell != nil)
	return r.cell.value
}

// Release ends the read. Releasing twice, through any copy of the pointer,
// is a no-op.
func (r *Ref[T]) Release() {
	if r.cell == nil {
		return
	}
	std.Assert(r.cell.state > 0)
	r.cell.state--
	r.cell = nil
}

// RefMut is an active write of a RefCell.
type RefMut[T any] struct {
	cell *RefCell[T]
}

// Get returns a pointer to the value, valid until Release.
func (w *RefMut[T]) Get() *T {
	std.Assert(w.cell != nil)
	return &w.cell.value
}

func (w *RefMut[T]) Release() {
	if w.cell == nil {
		return
	}
	std.Assert(w.cell.state == writing)
	w.cell.state = 0
	w.cell = nil
}
