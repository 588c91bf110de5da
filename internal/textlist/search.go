package textlist

import "strings"

// IndexOf returns the index of the first element equal to v, or NotFound.
func (l *List) IndexOf(v string) int {
	return l.indexFrom(v, 0)
}

// LastIndexOf returns the index of the last element equal to v, or NotFound.
func (l *List) LastIndexOf(v string) int {
	for i := l.n - 1; i >= 0; i-- {
		s := l.slots[i]
		if !s.ok {
			continue
		}
		if s.text == v {
			return i
		}
	}
	return NotFound
}

// Count returns how many elements match v. With ignoreCase set, elements
// match under Unicode case folding.
func (l *List) Count(v string, ignoreCase bool) int {
	count := 0
	for i := 0; i < l.n; i++ {
		text := l.slots[i].text
		if ignoreCase {
			if strings.EqualFold(text, v) {
				count++
			}
		} else if text == v {
			count++
		}
	}
	return count
}

func (l *List) indexFrom(v string, from int) int {
	for i := from; i < l.n; i++ {
		if l.slots[i].text == v {
			return i
		}
	}
	return NotFound
}
