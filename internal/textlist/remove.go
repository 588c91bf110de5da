package textlist

// RemoveAt removes and returns the element at i, shifting the elements after
// it one to the left.
func (l *List) RemoveAt(i int) (string, error) {
	if err := l.checkIndex("remove", i, l.n); err != nil {
		return "", err
	}
	return l.removeAt(i), nil
}

// Remove deletes the first element equal to v and reports whether one was found.
func (l *List) Remove(v string) bool {
	i := l.indexFrom(v, 0)
	if i == NotFound {
		return false
	}
	l.removeAt(i)
	return true
}

// RemoveFrom deletes the first element equal to v at or after from.
func (l *List) RemoveFrom(v string, from int) (bool, error) {
	if err := l.checkIndex("remove from", from, l.n); err != nil {
		return false, err
	}
	i := l.indexFrom(v, from)
	if i == NotFound {
		return false, nil
	}
	l.removeAt(i)
	return true, nil
}

// RemoveAll deletes every element equal to v and reports whether any was removed.
func (l *List) RemoveAll(v string) bool {
	kept := 0
	for i := 0; i < l.n; i++ {
		if l.slots[i].text == v {
			continue
		}
		l.slots[kept] = l.slots[i]
		kept++
	}
	if kept == l.n {
		return false
	}
	clear(l.slots[kept:l.n])
	l.n = kept
	return true
}

func (l *List) removeAt(i int) string {
	removed := l.slots[i].text
	copy(l.slots[i:], l.slots[i+1:l.n])
	l.n--
	l.slots[l.n] = slot{}
	return removed
}
