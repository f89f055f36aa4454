package datastructures

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListOf(values ...int) *DoublyLinkedList[int] {
	l := NewDoublyLinkedList[int]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// requireConsistent checks both traversal directions against want.
func requireConsistent(t *testing.T, l *DoublyLinkedList[int], want []int) {
	t.Helper()
	require.NoError(t, l.Verify())
	assert.Equal(t, len(want), l.Length())
	if len(want) == 0 {
		assert.Empty(t, l.Values())
		assert.Empty(t, slices.Collect(l.Backward()))
		return
	}
	assert.Equal(t, want, l.Values())
	backward := slices.Clone(want)
	slices.Reverse(backward)
	assert.Equal(t, backward, slices.Collect(l.Backward()))
}

// prevValue returns the value held by the node before the first node holding v.
func prevValue(t *testing.T, l *DoublyLinkedList[int], v int) (int, bool) {
	t.Helper()
	at := l.lookup(v)
	require.NotEqual(t, none, at, "value %d not in list", v)
	p := l.nodes[at].prev
	if p == none {
		return 0, false
	}
	return l.nodes[p].value, true
}

func TestNewListIsEmpty(t *testing.T) {
	l := NewDoublyLinkedList[string]()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Length())
	assert.Equal(t, "[]", l.String())
	require.NoError(t, l.Verify())

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
}

func TestPushBackOrdering(t *testing.T) {
	l := NewDoublyLinkedList[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(l.Backward()))
	require.NoError(t, l.Verify())
}

func TestPushFront(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l.PushFront(10)
	l.PushFront(20)
	l.PushFront(30)

	requireConsistent(t, l, []int{30, 20, 10})
	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, 30, front)
	assert.Equal(t, 10, back)
}

func TestSingleNode(t *testing.T) {
	l := newListOf(7)
	assert.Equal(t, l.head, l.tail)
	assert.Equal(t, none, l.nodes[l.head].prev)
	assert.Equal(t, none, l.nodes[l.head].next)
}

func TestPushFrontDeleteFrontRoundTrip(t *testing.T) {
	l := newListOf(1, 2, 3)
	head, tail := l.head, l.tail

	l.PushFront(99)
	v, err := l.DeleteFront()
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	assert.Equal(t, head, l.head)
	assert.Equal(t, tail, l.tail)
	requireConsistent(t, l, []int{1, 2, 3})
}

func TestInsertAfterValue(t *testing.T) {
	t.Run("middle repairs successor prev", func(t *testing.T) {
		l := newListOf(10, 20, 30)
		require.NoError(t, l.InsertAfterValue(10, 15))

		requireConsistent(t, l, []int{10, 15, 20, 30})
		p, ok := prevValue(t, l, 20)
		require.True(t, ok)
		assert.Equal(t, 15, p)
	})

	t.Run("after tail becomes tail", func(t *testing.T) {
		l := newListOf(10, 20)
		require.NoError(t, l.InsertAfterValue(20, 25))

		requireConsistent(t, l, []int{10, 20, 25})
		back, _ := l.Back()
		assert.Equal(t, 25, back)
	})

	t.Run("first match only", func(t *testing.T) {
		l := newListOf(5, 5)
		require.NoError(t, l.InsertAfterValue(5, 6))
		requireConsistent(t, l, []int{5, 6, 5})
	})

	t.Run("not found", func(t *testing.T) {
		l := newListOf(10, 20)
		assert.ErrorIs(t, l.InsertAfterValue(99, 1), ErrNotFound)
		requireConsistent(t, l, []int{10, 20})
	})

	t.Run("empty", func(t *testing.T) {
		l := NewDoublyLinkedList[int]()
		assert.ErrorIs(t, l.InsertAfterValue(1, 2), ErrEmpty)
		assert.True(t, l.IsEmpty())
	})
}

func TestInsertAtIndex(t *testing.T) {
	t.Run("zero on empty", func(t *testing.T) {
		l := NewDoublyLinkedList[int]()
		require.NoError(t, l.InsertAtIndex(0, 42))
		requireConsistent(t, l, []int{42})
	})

	t.Run("out of range leaves list unchanged", func(t *testing.T) {
		l := newListOf(1, 2, 3)
		assert.ErrorIs(t, l.InsertAtIndex(5, 9), ErrOutOfRange)
		assert.ErrorIs(t, l.InsertAtIndex(-1, 9), ErrOutOfRange)
		requireConsistent(t, l, []int{1, 2, 3})
	})

	t.Run("out of range on empty", func(t *testing.T) {
		l := NewDoublyLinkedList[int]()
		assert.ErrorIs(t, l.InsertAtIndex(1, 9), ErrOutOfRange)
		assert.True(t, l.IsEmpty())
	})

	t.Run("at length appends", func(t *testing.T) {
		l := newListOf(1, 2, 3)
		require.NoError(t, l.InsertAtIndex(3, 4))
		requireConsistent(t, l, []int{1, 2, 3, 4})
	})

	t.Run("middle", func(t *testing.T) {
		l := newListOf(1, 2, 4)
		require.NoError(t, l.InsertAtIndex(2, 3))
		requireConsistent(t, l, []int{1, 2, 3, 4})

		p, ok := prevValue(t, l, 4)
		require.True(t, ok)
		assert.Equal(t, 3, p)
	})
}

func TestDeleteFrontAndBack(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	_, err := l.DeleteFront()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = l.DeleteBack()
	assert.ErrorIs(t, err, ErrEmpty)

	l = newListOf(1)
	v, err := l.DeleteBack()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	requireConsistent(t, l, nil)

	l = newListOf(1)
	v, err = l.DeleteFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	requireConsistent(t, l, nil)

	l = newListOf(1, 2, 3)
	v, err = l.DeleteBack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	requireConsistent(t, l, []int{1, 2})

	v, err = l.DeleteFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	requireConsistent(t, l, []int{2})
}

func TestDeleteByValue(t *testing.T) {
	t.Run("interior", func(t *testing.T) {
		l := newListOf(10, 20, 30, 40)
		require.NoError(t, l.DeleteByValue(20))
		requireConsistent(t, l, []int{10, 30, 40})

		p, ok := prevValue(t, l, 30)
		require.True(t, ok)
		assert.Equal(t, 10, p)
	})

	t.Run("head", func(t *testing.T) {
		l := newListOf(10, 20, 30)
		require.NoError(t, l.DeleteByValue(10))
		requireConsistent(t, l, []int{20, 30})
		_, ok := prevValue(t, l, 20)
		assert.False(t, ok)
	})

	t.Run("tail", func(t *testing.T) {
		l := newListOf(10, 20, 30)
		require.NoError(t, l.DeleteByValue(30))
		requireConsistent(t, l, []int{10, 20})
	})

	t.Run("only node", func(t *testing.T) {
		l := newListOf(10)
		require.NoError(t, l.DeleteByValue(10))
		requireConsistent(t, l, nil)
	})

	t.Run("not found", func(t *testing.T) {
		l := newListOf(10, 20)
		assert.ErrorIs(t, l.DeleteByValue(99), ErrNotFound)
		requireConsistent(t, l, []int{10, 20})
	})

	t.Run("empty", func(t *testing.T) {
		l := NewDoublyLinkedList[int]()
		assert.ErrorIs(t, l.DeleteByValue(1), ErrEmpty)
	})
}

func TestDeletedSlotsAreReused(t *testing.T) {
	l := newListOf(1, 2, 3)
	require.NoError(t, l.DeleteByValue(2))
	assert.Equal(t, 1, l.free.Size())

	l.PushBack(4)
	assert.Len(t, l.nodes, 3)
	assert.Equal(t, 0, l.free.Size())
	requireConsistent(t, l, []int{1, 3, 4})
}

func TestReverse(t *testing.T) {
	empty := NewDoublyLinkedList[int]()
	empty.Reverse()
	requireConsistent(t, empty, nil)

	single := newListOf(1)
	single.Reverse()
	requireConsistent(t, single, []int{1})

	l := newListOf(1, 2, 3, 4)
	l.Reverse()
	requireConsistent(t, l, []int{4, 3, 2, 1})

	l.Reverse()
	requireConsistent(t, l, []int{1, 2, 3, 4})
}

func TestQueriesDoNotMutate(t *testing.T) {
	l := newListOf(3, 1, 4, 1, 5)
	before := l.Values()
	head, tail := l.head, l.tail

	for range 3 {
		found, index := l.Find(1)
		assert.True(t, found)
		assert.Equal(t, 1, index)

		found, index = l.Find(42)
		assert.False(t, found)
		assert.Equal(t, 0, index)

		assert.Equal(t, 5, l.Length())
		assert.False(t, l.IsEmpty())
	}

	assert.Equal(t, before, l.Values())
	assert.Equal(t, head, l.head)
	assert.Equal(t, tail, l.tail)
}

func TestAllStopsEarly(t *testing.T) {
	l := newListOf(1, 2, 3, 4)
	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)

	// restartable
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))
}

func TestString(t *testing.T) {
	l := newListOf(10, 20, 30)
	assert.Equal(t, "10 <-> 20 <-> 30", l.String())
}

func TestClear(t *testing.T) {
	l := newListOf(1, 2, 3)
	l.Clear()
	requireConsistent(t, l, nil)

	l.PushBack(5)
	requireConsistent(t, l, []int{5})
}

func TestInvariantsAfterMixedOperations(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	var want []int

	steps := []func(){
		func() { l.PushBack(1); want = append(want, 1) },
		func() { l.PushFront(0); want = append([]int{0}, want...) },
		func() { _ = l.InsertAtIndex(1, 5); want = slices.Insert(want, 1, 5) },
		func() { _ = l.InsertAfterValue(1, 2); want = slices.Insert(want, 3, 2) },
		func() { _ = l.DeleteByValue(5); want = slices.Delete(want, 1, 2) },
		func() { l.Reverse(); slices.Reverse(want) },
		func() { _, _ = l.DeleteBack(); want = want[:len(want)-1] },
		func() { l.PushBack(9); want = append(want, 9) },
		func() { _, _ = l.DeleteFront(); want = want[1:] },
	}

	for i, step := range steps {
		step()
		require.NoError(t, l.Verify(), "after step %d", i)
		requireConsistent(t, l, want)
	}
}

func TestVerifyDetectsBrokenPrev(t *testing.T) {
	l := newListOf(1, 2, 3)
	l.nodes[l.tail].prev = l.head
	assert.ErrorIs(t, l.Verify(), ErrCorrupted)
}
