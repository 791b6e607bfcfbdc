// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/blake2b"
)

const GenomeLen = 16

// Genome is an opaque 128-bit pattern. Nothing in this package assigns
// meaning to individual bits.
type Genome [GenomeLen]byte

func (g Genome) String() string { return hex.EncodeToString(g[:]) }

func (g Genome) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Genome) UnmarshalText(b []byte) error {
	if hex.DecodedLen(len(b)) != GenomeLen {
		return ErrInvalidGenome
	}
	_, err := hex.Decode(g[:], b)
	return err
}

// FreshGenome hashes the randomness [seed], the [sender], and the position
// of the transaction in its block into 16 bytes. Two transactions from the
// same sender in one block land at different indexes and so get different
// genomes.
func FreshGenome(seed []byte, sender ids.ShortID, txIndex uint32) (Genome, error) {
	h, err := blake2b.New(GenomeLen, nil)
	if err != nil {
		return Genome{}, err
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], txIndex)
	_, _ = h.Write(seed)
	_, _ = h.Write(sender[:])
	_, _ = h.Write(idx[:])

	var g Genome
	copy(g[:], h.Sum(nil))
	return g, nil
}

// Crossover takes every bit from [a] where [selector] is 1 and from [b]
// where it is 0.
func Crossover(a, b, selector Genome) Genome {
	var child Genome
	for i := range child {
		child[i] = (selector[i] & a[i]) | (^selector[i] & b[i])
	}
	return child
}
