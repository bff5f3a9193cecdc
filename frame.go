// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "code.hybscloud.com/atomix"

// Frame is a decoded audio/video frame with a cheaply-clonable, refcounted
// backing buffer.
type Frame struct {
	Data []byte
	PTS  int64

	refs *atomix.Int64
}

// NewFrame allocates a Frame owning data, with an initial reference count
// of 1.
func NewFrame(data []byte, pts int64) *Frame {
	refs := new(atomix.Int64)
	refs.Store(1)
	return &Frame{Data: data, PTS: pts, refs: refs}
}

// Clone returns a refcounted copy of f: the copy shares f's backing buffer,
// and Drop only releases the buffer once every clone has been dropped.
// Cloning the nil Frame returns nil and no error.
func (f *Frame) Clone() (*Frame, error) {
	if f == nil {
		return nil, nil
	}
	f.refs.Add(1)
	clone := *f
	return &clone, nil
}

// Drop releases f's reference to its backing buffer. Dropping the nil
// Frame is a no-op.
func (f *Frame) Drop() {
	if f == nil {
		return
	}
	if f.refs.Add(-1) == 0 {
		f.Data = nil
	}
}

// FrameQueue is a Queue of Frame items.
type FrameQueue = Queue[*Frame]

// NewFrameQueue creates a FrameQueue. See New for the capacity encoding.
func NewFrameQueue(owner string, capacity int, flags BlockFlags) *FrameQueue {
	return New[*Frame](owner, capacity, flags)
}
