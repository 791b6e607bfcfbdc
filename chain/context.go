// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvm/balances"
)

// Currency is the balance ledger the stake and payment logic runs against.
type Currency interface {
	Reserve(db database.Database, addr ids.ShortID, amount uint64) error
	Unreserve(db database.Database, addr ids.ShortID, amount uint64) (uint64, error)
	FreeBalance(db database.Database, addr ids.ShortID) (uint64, error)
	Transfer(db database.Database, from ids.ShortID, to ids.ShortID, amount uint64, req balances.ExistenceRequirement) error
}

var _ Currency = &balances.Ledger{}

// TransactionContext is everything a transaction may read or write while it
// executes. [Database] is expected to be a layer private to the transaction
// that is discarded if Execute fails.
type TransactionContext struct {
	Genesis    *Genesis
	Database   database.Database
	Currency   Currency
	Randomness Randomness

	BlockTime uint64
	Height    uint64
	TxID      ids.ID
	TxIndex   uint32
	Sender    ids.ShortID

	events uint16
}

func (c *TransactionContext) freshGenome() (Genome, error) {
	return FreshGenome(c.Randomness.CurrentSeed(), c.Sender, c.TxIndex)
}

func (c *TransactionContext) authorized(owner ids.ShortID) bool {
	return owner == c.Sender
}

// emit records [e] under the current block height and transaction index.
func (c *TransactionContext) emit(e Event) error {
	k := EventKey(c.Height, c.TxIndex, c.events)
	c.events++
	return putEvent(c.Database, k, &EventRecord{
		Height:  c.Height,
		TxID:    c.TxID,
		TxIndex: c.TxIndex,
		Event:   e,
	})
}
