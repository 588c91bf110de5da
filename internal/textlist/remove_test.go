package textlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveAt(t *testing.T) {
	t.Parallel()

	l := mustFrom(t, "a", "b", "c")
	removed, err := l.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, "b", removed)
	require.Equal(t, []string{"a", "c"}, l.Values())
	require.Equal(t, 2, l.Len())
	require.False(t, l.slots[2].ok)

	_, err = l.RemoveAt(2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = l.RemoveAt(-1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.Equal(t, []string{"a", "c"}, l.Values())

	_, err = New().RemoveAt(0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestRemoveByValue(t *testing.T) {
	t.Parallel()

	l := mustFrom(t, "a", "b", "a")
	require.True(t, l.Remove("a"))
	require.Equal(t, []string{"b", "a"}, l.Values())

	require.False(t, l.Remove("z"))
	require.Equal(t, 2, l.Len())
}

func TestRemoveFrom(t *testing.T) {
	t.Parallel()

	l := mustFrom(t, "a", "b", "a", "c")

	ok, err := l.RemoveFrom("a", 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, l.Values())

	ok, err = l.RemoveFrom("a", 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, l.Values())

	_, err = l.RemoveFrom("a", 3)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = l.RemoveFrom("a", -1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.Equal(t, 3, l.Len())
}

func TestRemoveAll(t *testing.T) {
	t.Parallel()

	l := mustFrom(t, "a", "b", "a", "a", "c", "a")
	require.True(t, l.RemoveAll("a"))
	require.Equal(t, []string{"b", "c"}, l.Values())
	for _, s := range l.slots[l.Len():] {
		require.False(t, s.ok)
	}

	require.False(t, l.RemoveAll("a"))
	require.Equal(t, 2, l.Len())

	require.True(t, l.RemoveAll("b"))
	require.True(t, l.RemoveAll("c"))
	require.True(t, l.IsEmpty())
}
