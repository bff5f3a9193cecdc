// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fifo provides a concurrent, mirror-capable FIFO queue used to
// connect the nodes of a media-processing graph (demuxers, decoders,
// filters, encoders, muxers).
//
// Each node owns one or more Queue instances on its outputs; downstream
// nodes pull from those queues. A "mirror" edge lets one queue automatically
// fan every pushed item out to a dynamic set of downstream queues, forming
// an arbitrary dataflow topology that can be reconfigured while producers
// and consumers are active.
//
// # Quick Start
//
// Queue is parameterized over an item trait, Payload[T]:
//
//	type Payload[T any] interface {
//	    comparable
//	    Clone() (T, error)
//	    Drop()
//	}
//
// Two concrete instantiations ship with this module: Frame (decoded
// audio/video frames) and Packet (compressed packets). Both are
// behaviorally identical as far as Queue is concerned; only the payload
// differs.
//
//	q := fifo.NewFrameQueue("decoder[0]", -1, 0)
//	q.Push(f)
//	out := q.Pop()
//
// # Mirroring
//
// Mirror registers a fan-out edge; every push onto the source also reaches
// the destination, recursively:
//
//	a := fifo.NewFrameQueue("demux", -1, 0)
//	b := fifo.NewFrameQueue("decode", -1, 0)
//	b.Mirror(a) // every push to a now also reaches b
//	a.Push(f)
//	fa := a.Pop() // a clone of f
//	fb := b.Pop() // a clone of f
//
// Call UnmirrorAll on shutdown to detach a queue from the graph and wake
// any consumer blocked on its former destinations.
//
// # Backpressure and blocking
//
// Capacity has three regimes: -1 is unbounded, 0 makes the queue a pure
// fan-out relay that never retains items, and a positive value bounds the
// queue at that size. BlockFlags controls whether a full Push or an empty
// Pop/Peek blocks or returns an error immediately:
//
//	q := fifo.NewFrameQueue("encode", 4, fifo.BlockMaxOutput|fifo.BlockNoInput)
//
// A consumer that wants to distinguish an out-of-band wake (Poke, or the
// removal of every mirror edge via UnmirrorAll) from an actual item arrival
// should pass PullPoke to PopFlags/PeekFlags.
package fifo
