// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

// Mirror registers a directed edge src -> dst: every future push onto src
// also reaches dst. Both sides receive a fresh reference. Mirror returns
// ErrInvalidArgument if either handle is nil. No deduplication is
// performed; callers must not request duplicate edges.
func (dst *Queue[T]) Mirror(src *Queue[T]) error {
	if dst == nil || src == nil {
		return ErrInvalidArgument
	}
	logMirror(dst.owner, src.owner)
	dst.sources.Append(src.Retain())
	src.dests.Append(dst.Retain())
	return nil
}

// Unmirror removes the single matching src -> dst edge. It panics if the
// edge is not present. Callers are expected to unmirror exactly what they
// mirrored.
func (dst *Queue[T]) Unmirror(src *Queue[T]) {
	logUnmirror(dst.owner, src.owner)

	removedDst, ok := src.dests.Pop(func(e *Queue[T]) bool { return e == dst })
	if !ok {
		panic("fifo: unmirror: edge not found in src.dests")
	}
	removedDst.release()

	removedSrc, ok := dst.sources.Pop(func(e *Queue[T]) bool { return e == src })
	if !ok {
		panic("fifo: unmirror: edge not found in dst.sources")
	}
	removedSrc.release()
}

// UnmirrorAll drains every inbound and outbound edge of ref. For each
// inbound edge it pops ref from the source's own dests list; for each
// outbound edge it pops ref from the destination's own sources list and
// pokes the destination, so a consumer blocked on it wakes and observes the
// topology change the same way it would observe an explicit Poke. No wake
// is sent for inbound edges, since removing a source from a sink cannot
// unblock the sink's own waiters.
//
// UnmirrorAll assumes the caller holds its own reference to ref distinct
// from the edge references being drained here, true of any ordinary
// *Queue[T] handle, so ref's own refcount does not reach zero mid-call.
func (ref *Queue[T]) UnmirrorAll() {
	if ref == nil {
		return
	}
	logUnmirrorAllStart(ref.owner)

	ref.mu.Lock()
	defer ref.mu.Unlock()

	for {
		src, ok := ref.sources.Pop(func(*Queue[T]) bool { return true })
		if !ok {
			break
		}
		logUnmirrorAllFromSource(ref.owner, src.owner)
		if own, ok := src.dests.Pop(func(e *Queue[T]) bool { return e == ref }); ok {
			own.release()
		}
		src.release()
	}

	for {
		dst, ok := ref.dests.Pop(func(*Queue[T]) bool { return true })
		if !ok {
			break
		}
		logUnmirrorAllFromDest(ref.owner, dst.owner)
		if own, ok := dst.sources.Pop(func(e *Queue[T]) bool { return e == ref }); ok {
			own.release()
		}

		dst.Poke()

		dst.release()
	}
}
