// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

// Builder creates Queues with fluent configuration.
//
// Builder mirrors the teacher's fluent-configuration idiom. Unlike the
// teacher, there is exactly one queue algorithm here, so Builder only
// collects construction arguments; it has no algorithm to select.
//
// Example:
//
//	b := fifo.NewBuilder(8).WithOwner("decoder[0]").WithBlockFlags(fifo.BlockNoInput)
//	q := fifo.Build[*fifo.Frame](b)
type Builder struct {
	owner    string
	capacity int
	flags    BlockFlags
}

// NewBuilder creates a queue builder with the given capacity. Capacity
// follows the same -1/0/>0 encoding as New.
func NewBuilder(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// WithOwner sets the owner identity used only for logging.
func (b *Builder) WithOwner(owner string) *Builder {
	b.owner = owner
	return b
}

// WithBlockFlags sets the persistent block flags.
func (b *Builder) WithBlockFlags(f BlockFlags) *Builder {
	b.flags = f
	return b
}

// Build creates the configured Queue[T].
func Build[T Payload[T]](b *Builder) *Queue[T] {
	return New[T](b.owner, b.capacity, b.flags)
}
