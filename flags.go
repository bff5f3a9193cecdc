// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "strings"

// BlockFlags controls the blocking behavior of a Queue.
type BlockFlags uint8

const (
	// BlockNoInput makes Pop/Peek block while the queue is empty instead of
	// returning ErrAgain immediately.
	BlockNoInput BlockFlags = 1 << iota
	// BlockMaxOutput makes Push block while the queue is over capacity
	// instead of returning ErrQueueFull immediately.
	BlockMaxOutput
	// PullNoBlock, as a BlockFlags bit, participates in the
	// ParseBlockFlags/String round trip. Per-call non-blocking behavior is
	// requested instead via PullFlags.PullNoBlockFlag.
	PullNoBlock
)

// PullFlags modifies the behavior of a single Pop/Peek call.
type PullFlags uint8

const (
	// PullNoBlockFlag forces this call to return ErrAgain instead of
	// blocking, overriding BlockNoInput for this call only.
	PullNoBlockFlag PullFlags = 1 << iota
	// PullPoke makes this call distinguish a poke-wake from an item
	// arrival: on a poke it returns a zero-value item and ErrAgain instead
	// of re-checking the queue.
	PullPoke
)

var blockFlagNames = [...]struct {
	flag BlockFlags
	name string
}{
	{BlockNoInput, "block_no_input"},
	{BlockMaxOutput, "block_max_output"},
	{PullNoBlock, "pull_no_block"},
}

// String renders f as a comma-joined, lowercase token list. It is the
// inverse of ParseBlockFlags.
func (f BlockFlags) String() string {
	var tokens []string
	for _, bf := range blockFlagNames {
		if f&bf.flag != 0 {
			tokens = append(tokens, bf.name)
		}
	}
	return strings.Join(tokens, ",")
}

// ParseBlockFlags parses a comma-separated list of lowercase tokens
// ("block_no_input", "block_max_output", "pull_no_block") into a BlockFlags
// set. An empty string yields an empty set successfully. Unknown tokens
// yield ErrInvalidArgument; the returned flags are unspecified on error.
func ParseBlockFlags(s string) (BlockFlags, error) {
	var out BlockFlags
	if s == "" {
		return out, nil
	}
	for _, tok := range strings.Split(s, ",") {
		matched := false
		for _, bf := range blockFlagNames {
			if tok == bf.name {
				out |= bf.flag
				matched = true
				break
			}
		}
		if !matched {
			return out, ErrInvalidArgument
		}
	}
	return out, nil
}
