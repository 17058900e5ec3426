package stack_test

import (
	"list_ownership/heap/stack"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drain[T any](s *stack.Stack[T]) []T {
	els := []T{}
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		els = append(els, v)
	}
	return els
}

func fromSlice[T any](elems ...T) *stack.Stack[T] {
	s := stack.New[T]()
	for _, e := range elems {
		s.Push(e)
	}
	return s
}

func TestStackBasics(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[int]()
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, _ := s.Pop()
	assert.Equal(3, v)
	v, _ = s.Pop()
	assert.Equal(2, v)

	s.Push(4)
	s.Push(5)

	assert.Equal([]int{5, 4, 1}, drain(s))
	_, ok = s.Pop()
	assert.False(ok)
}

func TestStackPeek(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[string]()
	_, ok := s.Peek()
	assert.False(ok)
	_, ok = s.PeekMut()
	assert.False(ok)

	s.Push("a")
	s.Push("b")
	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal("b", top)

	p, ok := s.PeekMut()
	require.True(t, ok)
	*p = "B"

	top, _ = s.Peek()
	assert.Equal("B", top)
	v, _ := s.Pop()
	assert.Equal("B", v, "peek and pop agree")
	top, _ = s.Peek()
	assert.Equal("a", top)
}

func TestStackIterators(t *testing.T) {
	tests := []struct {
		name  string
		elems []int
	}{
		{name: "empty", elems: nil},
		{name: "single", elems: []int{1}},
		{name: "several", elems: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			want := slices.Clone(tt.elems)
			slices.Reverse(want)
			if want == nil {
				want = []int{}
			}

			s := fromSlice(tt.elems...)

			got := []int{}
			it := s.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				got = append(got, v)
			}
			assert.Equal(want, got, "iter")
			_, ok := it.Next()
			assert.False(ok, "iter stays exhausted")

			got = []int{}
			mit := s.IterMut()
			for p, ok := mit.Next(); ok; p, ok = mit.Next() {
				got = append(got, *p)
				*p *= 10
			}
			assert.Equal(want, got, "iter mut")

			got = []int{}
			into := s.IntoIter()
			assert.True(s.IsEmpty(), "into iter takes the stack")
			for v, ok := into.Next(); ok; v, ok = into.Next() {
				got = append(got, v)
			}
			for i := range want {
				want[i] *= 10
			}
			assert.Equal(want, got, "into iter sees writes from iter mut")
			_, ok = into.Next()
			assert.False(ok)
		})
	}
}

func TestStackIntoIterPartial(t *testing.T) {
	assert := assert.New(t)

	s := fromSlice(1, 2, 3)
	it := s.IntoIter()
	v, _ := it.Next()
	assert.Equal(3, v)
	v, _ = it.Next()
	assert.Equal(2, v)
	it.Drop()
	_, ok := it.Next()
	assert.False(ok)

	s.Push(7)
	assert.Equal([]int{7}, drain(s), "stack unaffected by the abandoned iterator")
}

func TestStackSeq(t *testing.T) {
	assert := assert.New(t)

	s := fromSlice(1, 2, 3)
	assert.Equal([]int{3, 2, 1}, slices.Collect(s.All()))

	for p := range s.AllMut() {
		*p++
	}
	assert.Equal([]int{4, 3, 2}, slices.Collect(s.All()))

	for v := range s.All() {
		if v == 3 {
			break
		}
	}
	top, _ := s.Peek()
	assert.Equal(4, top, "breaking out of All leaves s alone")

	got := []int{}
	for v := range s.Drain() {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	assert.Equal([]int{4, 3}, got)
	assert.True(s.IsEmpty())
}

func TestStackDropLong(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[[]byte]()
	for range 200_000 {
		s.Push(make([]byte, 8))
	}
	s.Drop()
	assert.True(s.IsEmpty())
	s.Drop()
}

func TestStackProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOf(rapid.Int()).Draw(t, "elems")
		want := slices.Clone(elems)
		slices.Reverse(want)

		s := fromSlice(elems...)
		if top, ok := s.Peek(); ok != (len(elems) > 0) || (ok && top != want[0]) {
			t.Fatalf("peek = (%d, %v)", top, ok)
		}
		if got := slices.Collect(s.All()); !slices.Equal(got, want) {
			t.Fatalf("all = %v, want %v", got, want)
		}
		n := 0
		for range s.AllMut() {
			n++
		}
		if n != len(elems) {
			t.Fatalf("all mut yielded %d, want %d", n, len(elems))
		}
		if got := slices.Collect(s.Drain()); !slices.Equal(got, want) {
			t.Fatalf("drain = %v, want %v", got, want)
		}
		if !s.IsEmpty() {
			t.Fatalf("stack not empty after drain")
		}
	})
}
