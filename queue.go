// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import (
	"math"
	"sync"

	"code.hybscloud.com/atomix"
)

// Queue is a bounded, mirror-capable FIFO.
//
// Capacity has three regimes: -1 means unbounded, 0 means the queue never
// retains items (a pure fan-out relay), and a positive value bounds the
// queue at that size. Queue is safe for concurrent use by producers,
// consumers, and reconfigurators.
type Queue[T Payload[T]] struct {
	mu      sync.Mutex
	condIn  *sync.Cond // empty-to-nonempty transitions, and pokes
	condOut *sync.Cond // full-to-nonfull transitions

	items      []T
	capacity   int
	blockFlags BlockFlags
	poked      bool

	owner string

	sources *BufferList[*Queue[T]]
	dests   *BufferList[*Queue[T]]

	refs atomix.Int64
}

// New creates a Queue owned by owner (used only for logging), with the
// given capacity and persistent block flags. It panics if capacity < -1,
// mirroring the teacher's constructor-panics-on-bad-args convention.
func New[T Payload[T]](owner string, capacity int, flags BlockFlags) *Queue[T] {
	if capacity < -1 {
		panic("fifo: capacity must be >= -1")
	}
	q := &Queue[T]{
		capacity:   capacity,
		blockFlags: flags,
		owner:      owner,
		sources:    NewBufferList[*Queue[T]](),
		dests:      NewBufferList[*Queue[T]](),
	}
	q.condIn = sync.NewCond(&q.mu)
	q.condOut = sync.NewCond(&q.mu)
	q.refs.Store(1)
	return q
}

// Retain increments q's reference count and returns q, for storing a fresh
// reference (e.g. in a mirror edge list).
func (q *Queue[T]) Retain() *Queue[T] {
	if q == nil {
		return nil
	}
	q.refs.Add(1)
	return q
}

// release drops a reference to q. When the last reference is dropped, q is
// destroyed: its own mirror edges are drained without signaling, since no
// consumer can still be waiting on a FIFO with no references, and every
// queued item is dropped.
func (q *Queue[T]) release() {
	if q == nil {
		return
	}
	if q.refs.Add(-1) == 0 {
		q.closeLocked()
	}
}

// Close drops the caller's own reference to q, the one established by New.
// Once every reference (the owner's plus any mirror edge) is gone, q is
// destroyed: its remaining edges are torn down and every item still queued
// is dropped. Close is idempotent on a nil q.
func (q *Queue[T]) Close() {
	q.release()
}

func (q *Queue[T]) closeLocked() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		h, ok := q.sources.Pop(func(*Queue[T]) bool { return true })
		if !ok {
			break
		}
		h.release()
	}
	for {
		h, ok := q.dests.Pop(func(*Queue[T]) bool { return true })
		if !ok {
			break
		}
		h.release()
	}
	for _, it := range q.items {
		it.Drop()
	}
	q.items = nil
}

// Push pushes item onto q, then fans it out to every destination mirrored
// from q, recursively. Pushing to a nil q is a no-op returning nil, which is
// how optional outputs are modeled.
//
// Push blocks when q is over capacity and BlockMaxOutput is set; otherwise
// it returns ErrQueueFull. It returns ErrOutOfMemory immediately, halting
// fan-out, if cloning item fails. Any other fan-out error is remembered and
// returned only after every destination has been attempted.
func (q *Queue[T]) Push(item T) error {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushLocked(item)
}

func (q *Queue[T]) pushLocked(item T) error {
	var err error

	if q.capacity != 0 {
		var zero T
		if item != zero && q.capacity != -1 && len(q.items) > q.capacity+1 {
			if q.blockFlags&BlockMaxOutput == 0 {
				return ErrQueueFull
			}
			q.condOut.Wait()
		}

		cloned, cerr := cloneItem[T](item)
		if cerr != nil {
			return ErrOutOfMemory
		}
		q.items = append(q.items, cloned)
		q.condIn.Signal()
	}

	cur := q.dests.Cursor()
	for {
		d, ok := cur.Next()
		if !ok {
			break
		}
		derr := d.Push(item)
		if derr == ErrOutOfMemory {
			cur.Halt()
			return ErrOutOfMemory
		} else if derr != nil && err == nil {
			err = derr
		}
	}

	return err
}

// Poke wakes any consumer blocked in Pop/Peek on q without enqueuing an
// item. A consumer that requested PullPoke observes the poke and returns
// ErrAgain; one that did not simply re-checks the queue.
func (q *Queue[T]) Poke() {
	if q == nil {
		return
	}
	logPoke(q.owner)
	q.mu.Lock()
	q.poked = true
	q.mu.Unlock()
	q.condIn.Signal()
}

// Pop removes and returns the oldest item in q, blocking per q's block
// flags. It is PopFlags with flags == 0, discarding the status.
func (q *Queue[T]) Pop() T {
	v, _ := q.PopFlags(0)
	return v
}

// PopFlags is Pop with per-call flags (PullNoBlockFlag, PullPoke).
func (q *Queue[T]) PopFlags(flags PullFlags) (T, error) {
	var zero T
	if q == nil {
		return zero, nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pullLocked(flags, true)
}

// Peek returns a clone of the oldest item in q without removing it,
// blocking per q's block flags. It is PeekFlags with flags == 0, discarding
// the status.
func (q *Queue[T]) Peek() T {
	v, _ := q.PeekFlags(0)
	return v
}

// PeekFlags is Peek with per-call flags (PullNoBlockFlag, PullPoke).
func (q *Queue[T]) PeekFlags(flags PullFlags) (T, error) {
	var zero T
	if q == nil {
		return zero, nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pullLocked(flags, false)
}

func (q *Queue[T]) pullLocked(flags PullFlags, pop bool) (T, error) {
	var zero T

	wantPoke := flags&PullPoke != 0
	noBlock := flags&PullNoBlockFlag != 0

	for len(q.items) == 0 {
		blockNoInput := q.blockFlags&BlockNoInput != 0
		if !blockNoInput || noBlock {
			return zero, ErrAgain
		}

		if !q.poked {
			q.condIn.Wait()
		}

		if wantPoke && q.poked {
			q.poked = false
			return zero, ErrAgain
		}
		q.poked = false
	}

	if pop {
		out := q.items[0]
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
		if q.capacity > 0 {
			q.condOut.Signal()
		}
		return out, nil
	}

	cloned, cerr := cloneItem[T](q.items[0])
	if cerr != nil {
		return zero, nil
	}
	return cloned, nil
}

// IsFull reports whether q is over its capacity bound: always true when
// capacity == 0, always false when capacity == -1, otherwise len(items) >
// capacity+1.
func (q *Queue[T]) IsFull() bool {
	if q == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	switch {
	case q.capacity == 0:
		return true
	case q.capacity == -1:
		return false
	default:
		return len(q.items) > q.capacity+1
	}
}

// Size returns the current queued item count.
func (q *Queue[T]) Size() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// MaxSize returns the queue's capacity, mapping -1 (unbounded) to the
// maximum representable int.
func (q *Queue[T]) MaxSize() int {
	if q == nil {
		return math.MaxInt
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.capacity == -1 {
		return math.MaxInt
	}
	return q.capacity
}

// SetMaxQueued updates q's capacity. It does not wake waiters; a caller
// that raises capacity must follow with a Push or Poke if it wants existing
// waiters to re-evaluate.
func (q *Queue[T]) SetMaxQueued(n int) {
	q.mu.Lock()
	q.capacity = n
	q.mu.Unlock()
}

// SetBlockFlags updates q's persistent block flags. It does not wake
// waiters, for the same reason as SetMaxQueued.
func (q *Queue[T]) SetBlockFlags(f BlockFlags) {
	q.mu.Lock()
	q.blockFlags = f
	q.mu.Unlock()
}
