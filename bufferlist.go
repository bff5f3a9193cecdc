// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "sync"

// BufferList is a thread-safe, ordered collection of handles.
//
// BufferList carries its own mutex, independent of any FIFO's lock. Mirror
// edge lists must remain mutable while a push holds the owning FIFO's lock
// and walks the destination list.
type BufferList[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewBufferList returns an empty BufferList.
func NewBufferList[T any]() *BufferList[T] {
	return &BufferList[T]{}
}

// Append adds h at the tail.
func (l *BufferList[T]) Append(h T) {
	l.mu.Lock()
	l.items = append(l.items, h)
	l.mu.Unlock()
}

// Pop removes and returns the first handle for which predicate returns true.
// It reports false if no element matched.
func (l *BufferList[T]) Pop(predicate func(T) bool) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, h := range l.items {
		if predicate(h) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return h, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the current element count.
func (l *BufferList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Cursor returns a re-entrant iteration cursor over l. The cursor tolerates
// concurrent mutation of l: each Next call re-reads the current length, so
// elements appended after the cursor was created may or may not be visited,
// and elements removed ahead of the cursor are simply skipped.
func (l *BufferList[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Cursor is a re-entrant, halt-able iterator produced by BufferList.Cursor.
type Cursor[T any] struct {
	list   *BufferList[T]
	idx    int
	halted bool
}

// Next returns the next element in iteration order, or false when the
// cursor has been halted or has reached the end of the list.
func (c *Cursor[T]) Next() (T, bool) {
	c.list.mu.Lock()
	defer c.list.mu.Unlock()
	var zero T
	if c.halted || c.idx >= len(c.list.items) {
		return zero, false
	}
	v := c.list.items[c.idx]
	c.idx++
	return v, true
}

// Halt stops the cursor early; subsequent Next calls return false.
func (c *Cursor[T]) Halt() {
	c.halted = true
}
