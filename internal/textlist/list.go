package textlist

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultCapacity is the capacity of a list built with New.
const DefaultCapacity = 10

// NotFound is returned by searches that find no match.
const NotFound = -1

// slot is one cell of the backing buffer. The zero slot marks an unused cell
// and is distinct from a present empty string.
type slot struct {
	text string
	ok   bool
}

// List is an ordered, growable sequence of strings.
type List struct {
	slots []slot
	n     int
}

// New returns an empty list with DefaultCapacity.
func New() *List {
	return &List{slots: make([]slot, DefaultCapacity)}
}

// NewWithCapacity returns an empty list that can hold capacity elements
// before it first grows.
func NewWithCapacity(capacity int) (*List, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	return &List{slots: make([]slot, capacity)}, nil
}

// NewFrom returns a list holding a copy of values, with capacity len(values).
// A nil slice is rejected; an empty one yields an empty list.
func NewFrom(values []string) (*List, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: values must not be nil", ErrInvalidArgument)
	}
	l := &List{slots: make([]slot, len(values))}
	for i, v := range values {
		l.slots[i] = slot{text: v, ok: true}
	}
	l.n = len(values)
	return l, nil
}

func (l *List) Len() int { return l.n }

func (l *List) IsEmpty() bool { return l.n == 0 }

// Cap returns the capacity of the backing buffer.
func (l *List) Cap() int { return len(l.slots) }

// Get returns the element at i.
func (l *List) Get(i int) (string, error) {
	if err := l.checkIndex("get", i, l.n); err != nil {
		return "", err
	}
	return l.slots[i].text, nil
}

// Set replaces the element at i with v and returns the previous element.
func (l *List) Set(i int, v string) (string, error) {
	if err := l.checkIndex("set", i, l.n); err != nil {
		return "", err
	}
	prev := l.slots[i].text
	l.slots[i] = slot{text: v, ok: true}
	return prev, nil
}

// Clear removes every element. The capacity is kept.
func (l *List) Clear() {
	clear(l.slots[:l.n])
	l.n = 0
}

// Clone returns a list with its own storage and the same elements.
func (l *List) Clone() *List {
	c := &List{slots: make([]slot, l.n), n: l.n}
	copy(c.slots, l.slots[:l.n])
	return c
}

// Values returns a copy of the elements in order.
func (l *List) Values() []string {
	out := make([]string, l.n)
	for i := range out {
		out[i] = l.slots[i].text
	}
	return out
}

// All yields index/element pairs in order. The list must not be modified
// during iteration.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(i, l.slots[i].text) {
				return
			}
		}
	}
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.slots[i].text)
	}
	sb.WriteByte(']')
	return sb.String()
}
