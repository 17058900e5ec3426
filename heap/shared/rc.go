// Package shared provides single-threaded shared-ownership primitives:
// a reference-counted handle (Rc), a non-owning observer of it (Weak), and a
// mutable cell whose aliasing rules are checked at runtime (RefCell).
//
// Go reclaims memory with a tracing collector, so these types do not free
// anything themselves. They make ownership explicit and observable: a box
// whose strong count reaches zero gives up its value and can no longer be
// read through any handle.
//
// None of these types are safe for concurrent use.
package shared

import "github.com/goose-lang/std"

type rcBox[T any] struct {
	value  T
	strong uint64
}

// Rc is a counted handle to a shared value. The zero Rc is absent (points at
// nothing), which makes Rc usable directly as an optional link.
//
// Copy an Rc only with Clone. Plain assignment duplicates the pointer
// without counting it.
type Rc[T any] struct {
	box *rcBox[T]
}

// NewRc allocates a box holding value with a strong count of one.
func NewRc[T any](value T) Rc[T] {
	return Rc[T]{box: &rcBox[T]{value: value, strong: 1}}
}

// IsSome reports whether r points at a live box.
func (r Rc[T]) IsSome() bool {
	return r.box != nil
}

// Clone returns another owning handle to the same box. Cloning an absent Rc
// returns an absent Rc.
func (r Rc[T]) Clone() Rc[T] {
	if r.box == nil {
		return Rc[T]{}
	}
	std.Assert(r.box.strong > 0)
	r.box.strong = std.SumAssumeNoOverflow(r.box.strong, 1)
	return Rc[T]{box: r.box}
}

// Get returns a pointer to the shared value. r must be present and its box
// not yet reclaimed.
func (r Rc[T]) Get() *T {
	std.Assert(r.box != nil)
	std.Assert(r.box.strong > 0)
	return &r.box.value
}

// Take moves the handle out of r, leaving r absent. The count is unchanged:
// ownership moves from r to the result.
func (r *Rc[T]) Take() Rc[T] {
	out := *r
	r.box = nil
	return out
}

// Release gives up r's reference and leaves r absent. If r was the last
// owner, the value is moved out of the box and returned with true; every
// other handle to that box is then dangling. Releasing an absent Rc is a
// no-op returning false.
func (r *Rc[T]) Release() (T, bool) {
	var zero T
	box := r.box
	if box == nil {
		return zero, false
	}
	r.box = nil
	std.Assert(box.strong > 0)
	box.strong--
	if box.strong > 0 {
		return zero, false
	}
	value := box.value
	box.value = zero
	return value, true
}

// StrongCount is the number of owning handles to r's box, or 0 if r is
// absent.
func (r Rc[T]) StrongCount() uint64 {
	if r.box == nil {
		return 0
	}
	return r.box.strong
}

// PtrEq reports whether a and b point at the same box. Two absent handles
// are equal.
func PtrEq[T any](a, b Rc[T]) bool {
	return a.box == b.box
}

// Downgrade returns a non-owning observer of r's box.
func (r Rc[T]) Downgrade() Weak[T] {
	return Weak[T]{box: r.box}
}

// Weak observes a box without keeping its value alive.
type Weak[T any] struct {
	box *rcBox[T]
}

// StrongCount is the number of owning handles still alive. It is 0 once the
// value has been reclaimed.
func (w Weak[T]) StrongCount() uint64 {
	if w.box == nil {
		return 0
	}
	return w.box.strong
}

// Upgrade returns a new owning handle if the value is still alive.
func (w Weak[T]) Upgrade() (Rc[T], bool) {
	if w.box == nil || w.box.strong == 0 {
		return Rc[T]{}, false
	}
	w.box.strong = std.SumAssumeNoOverflow(w.box.strong, 1)
	return Rc[T]{box: w.box}, true
}
