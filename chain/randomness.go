// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

// Randomness supplies the seed mixed into every fresh genome.
type Randomness interface {
	CurrentSeed() []byte
}

var _ Randomness = &BlockRandomness{}

// BlockRandomness derives the seed from the parent block, which is not
// known until the parent is accepted.
type BlockRandomness struct {
	Parent ids.ID
	Height uint64
}

func (r *BlockRandomness) CurrentSeed() []byte {
	b := make([]byte, len(r.Parent)+8)
	copy(b, r.Parent[:])
	binary.BigEndian.PutUint64(b[len(r.Parent):], r.Height)
	return hashing.ComputeHash256(b)
}
