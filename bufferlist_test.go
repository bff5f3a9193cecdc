// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/fifo"
)

func TestBufferListAppendPop(t *testing.T) {
	l := fifo.NewBufferList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	if got := l.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	v, ok := l.Pop(func(x int) bool { return x == 2 })
	if !ok || v != 2 {
		t.Fatalf("Pop(==2) = (%d, %v), want (2, true)", v, ok)
	}
	if got := l.Len(); got != 2 {
		t.Fatalf("Len() after pop = %d, want 2", got)
	}

	_, ok = l.Pop(func(x int) bool { return x == 99 })
	if ok {
		t.Fatal("Pop(==99) found a match that should not exist")
	}
}

func TestBufferListPopFirst(t *testing.T) {
	l := fifo.NewBufferList[string]()
	l.Append("a")
	l.Append("b")

	v, ok := l.Pop(func(string) bool { return true })
	if !ok || v != "a" {
		t.Fatalf("Pop(first) = (%q, %v), want (\"a\", true)", v, ok)
	}
	v, ok = l.Pop(func(string) bool { return true })
	if !ok || v != "b" {
		t.Fatalf("Pop(first) = (%q, %v), want (\"b\", true)", v, ok)
	}
	_, ok = l.Pop(func(string) bool { return true })
	if ok {
		t.Fatal("Pop(first) on empty list found a match")
	}
}

func TestBufferListCursorToleratesConcurrentMutation(t *testing.T) {
	l := fifo.NewBufferList[int]()
	for i := range 5 {
		l.Append(i)
	}

	cur := l.Cursor()
	v, ok := cur.Next()
	if !ok || v != 0 {
		t.Fatalf("first Next() = (%d, %v), want (0, true)", v, ok)
	}

	// Mutate the list mid-iteration; the cursor must not panic or deadlock.
	l.Pop(func(x int) bool { return x == 4 })
	l.Append(5)

	var seen []int
	for {
		v, ok := cur.Next()
		if !ok {
			break
		}
		seen = append(seen, v)
	}
	if len(seen) == 0 {
		t.Fatal("cursor saw no further elements after concurrent mutation")
	}
}

func TestBufferListCursorHalt(t *testing.T) {
	l := fifo.NewBufferList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	cur := l.Cursor()
	cur.Next()
	cur.Halt()

	if _, ok := cur.Next(); ok {
		t.Fatal("Next() after Halt() returned an element")
	}
}

func TestBufferListConcurrentAppend(t *testing.T) {
	l := fifo.NewBufferList[int]()
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			l.Append(v)
		}(i)
	}
	wg.Wait()

	if got := l.Len(); got != 100 {
		t.Fatalf("Len() = %d, want 100", got)
	}
}
