// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "code.hybscloud.com/atomix"

// Packet is a compressed, muxer-ready packet with a cheaply-clonable,
// refcounted backing buffer.
type Packet struct {
	Data        []byte
	PTS, DTS    int64
	StreamIndex int

	refs *atomix.Int64
}

// NewPacket allocates a Packet owning data, with an initial reference
// count of 1.
func NewPacket(data []byte, pts, dts int64, streamIndex int) *Packet {
	refs := new(atomix.Int64)
	refs.Store(1)
	return &Packet{Data: data, PTS: pts, DTS: dts, StreamIndex: streamIndex, refs: refs}
}

// Clone returns a refcounted copy of p: the copy shares p's backing buffer,
// and Drop only releases the buffer once every clone has been dropped.
// Cloning the nil Packet returns nil and no error.
func (p *Packet) Clone() (*Packet, error) {
	if p == nil {
		return nil, nil
	}
	p.refs.Add(1)
	clone := *p
	return &clone, nil
}

// Drop releases p's reference to its backing buffer. Dropping the nil
// Packet is a no-op.
func (p *Packet) Drop() {
	if p == nil {
		return
	}
	if p.refs.Add(-1) == 0 {
		p.Data = nil
	}
}

// PacketQueue is a Queue of Packet items.
type PacketQueue = Queue[*Packet]

// NewPacketQueue creates a PacketQueue. See New for the capacity encoding.
func NewPacketQueue(owner string, capacity int, flags BlockFlags) *PacketQueue {
	return New[*Packet](owner, capacity, flags)
}
