// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrAgain indicates a non-blocking pull found the queue empty, or that a
// blocking pull woke up on a poke rather than an item arrival.
//
// ErrAgain is a control flow signal, not a failure: the caller should retry
// later rather than propagate the error up as a fatal condition.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrAgain = iox.ErrWouldBlock

// ErrQueueFull is returned by Push when the queue is over capacity and
// BlockMaxOutput is not set.
var ErrQueueFull = errors.New("fifo: queue full")

// ErrOutOfMemory is returned by Push when cloning the pushed item fails.
// It halts fan-out immediately; unlike other errors, Push does not continue
// distributing to remaining destinations once ErrOutOfMemory occurs.
var ErrOutOfMemory = errors.New("fifo: out of memory")

// ErrInvalidArgument is returned by Mirror when either handle is nil, and by
// ParseBlockFlags when the input contains an unknown token.
var ErrInvalidArgument = errors.New("fifo: invalid argument")

// IsAgain reports whether err is (or wraps) ErrAgain.
func IsAgain(err error) bool {
	return errors.Is(err, ErrAgain)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
