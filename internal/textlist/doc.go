// Package textlist implements an array-backed, growable list of strings.
//
// The list keeps an explicit length over a fixed-capacity buffer and doubles
// the buffer when it runs out of room. Indices are 0-based. A List is not
// safe for concurrent use; callers sharing one must serialize access.
package textlist
