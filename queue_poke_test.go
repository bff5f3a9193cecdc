// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo_test

import (
	"testing"
	"time"

	"code.hybscloud.com/fifo"
)

func TestPokeWakesPullPokeConsumer(t *testing.T) {
	q := fifo.NewFrameQueue("q", -1, fifo.BlockNoInput)

	type result struct {
		v   *fifo.Frame
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := q.PopFlags(fifo.PullPoke)
		done <- result{v, err}
	}()

	time.Sleep(20 * time.Millisecond)
	q.Poke()

	select {
	case r := <-done:
		if r.err != fifo.ErrAgain || r.v != nil {
			t.Fatalf("PopFlags(PullPoke) after Poke = (%v, %v), want (nil, ErrAgain)", r.v, r.err)
		}
	case <-time.After(time.Second):
		t.Fatal("PopFlags never returned after Poke")
	}

	if err := q.Push(fifo.NewFrame([]byte("x"), 5)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	got := q.Pop()
	if got == nil || got.PTS != 5 {
		t.Fatalf("Pop() after push = %v, want PTS 5", got)
	}
}

func TestPokeIgnoredByPlainPull(t *testing.T) {
	q := fifo.NewFrameQueue("q", -1, fifo.BlockNoInput)

	done := make(chan *fifo.Frame, 1)
	go func() {
		done <- q.Pop()
	}()

	time.Sleep(20 * time.Millisecond)
	q.Poke()

	// A consumer that did not request PullPoke transparently retries and
	// blocks again; it should only return once an item actually arrives.
	time.Sleep(20 * time.Millisecond)
	if err := q.Push(fifo.NewFrame([]byte("y"), 9)); err != nil {
		t.Fatalf("Push: %v", err)
	}

	select {
	case v := <-done:
		if v == nil || v.PTS != 9 {
			t.Fatalf("Pop() = %v, want PTS 9", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Pop() never returned after push")
	}
}
