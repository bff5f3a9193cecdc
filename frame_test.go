// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo_test

import (
	"testing"

	"code.hybscloud.com/fifo"
)

func TestFrameCloneSharesBuffer(t *testing.T) {
	f := fifo.NewFrame([]byte("abc"), 1)
	clone, err := f.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if &clone.Data[0] != &f.Data[0] {
		t.Fatal("Clone did not share the backing buffer")
	}
	if clone.PTS != f.PTS {
		t.Fatalf("clone.PTS = %d, want %d", clone.PTS, f.PTS)
	}
}

func TestFrameDropOnlyFreesAfterLastReference(t *testing.T) {
	f := fifo.NewFrame([]byte("abc"), 1)
	clone, _ := f.Clone()

	f.Drop()
	if clone.Data == nil {
		t.Fatal("Drop on original cleared data while a clone is still live")
	}

	clone.Drop()
}

func TestFrameNilReceiverIsNoOp(t *testing.T) {
	var f *fifo.Frame

	clone, err := f.Clone()
	if clone != nil || err != nil {
		t.Fatalf("Clone on nil Frame = (%v, %v), want (nil, nil)", clone, err)
	}
	f.Drop()
}
