package textlist

// Add appends v, doubling the buffer first when it is full.
func (l *List) Add(v string) {
	l.reserve(1, l.n)
	l.slots[l.n] = slot{text: v, ok: true}
	l.n++
}

// Insert places v at pos and shifts [pos, Len()) one to the right.
// pos == Len() appends.
func (l *List) Insert(pos int, v string) error {
	if err := l.checkIndex("insert", pos, l.n+1); err != nil {
		return err
	}
	l.reserve(1, pos)
	l.slots[pos] = slot{text: v, ok: true}
	l.n++
	return nil
}

// AddAll appends values in order, growing at most once. It reports false and
// does nothing when values is nil or empty.
func (l *List) AddAll(values []string) bool {
	if len(values) == 0 {
		return false
	}
	at := l.n
	l.reserve(len(values), at)
	for i, v := range values {
		l.slots[at+i] = slot{text: v, ok: true}
	}
	l.n += len(values)
	return true
}

// reserve makes room for k more elements and opens a gap of width k at
// index at, leaving l.n unchanged. When the buffer is too small it is
// reallocated to max(needed, 2*cap) and the elements are copied around the
// gap in the same pass.
func (l *List) reserve(k, at int) {
	needed := l.n + k
	if needed <= len(l.slots) {
		copy(l.slots[at+k:needed], l.slots[at:l.n])
		return
	}
	grown := make([]slot, max(needed, 2*len(l.slots)))
	copy(grown, l.slots[:at])
	copy(grown[at+k:], l.slots[at:l.n])
	l.slots = grown
}
