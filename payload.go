// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

// Payload is the item trait a Queue is parameterized over. It is the Go
// generics equivalent of the original's TYPE/CLONE_FN/FREE_FN macro
// parameters.
//
// T is expected to be a pointer type, or otherwise comparable to its own
// zero value meaningfully, since a zero T stands in for a "null" item: Push
// treats a null item as exempt from the capacity backpressure check, and a
// failed Clone during Peek yields a zero T with a nil error rather than
// propagating the clone error.
type Payload[T any] interface {
	comparable

	// Clone returns a deep, typically refcounted, copy of the receiver.
	// Cloning the zero value must return the zero value and a nil error.
	Clone() (T, error)

	// Drop releases the resources held by the receiver. Drop must be safe
	// to call on the zero value as a no-op.
	Drop()
}

// cloneItem clones item, tolerating a zero value of T: cloning a null item
// yields a null item.
func cloneItem[T Payload[T]](item T) (T, error) {
	var zero T
	if item == zero {
		return zero, nil
	}
	return item.Clone()
}
