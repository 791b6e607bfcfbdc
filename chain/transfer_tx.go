// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

var _ UnsignedTransaction = &TransferTx{}

// TransferTx hands an asset, and the stake that backs it, to [To].
type TransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	To      ids.ShortID `serialize:"true" json:"to"`
	AssetID uint64      `serialize:"true" json:"assetId"`
}

func (t *TransferTx) Execute(c *TransactionContext) error {
	owner, exists, err := GetOwner(c.Database, t.AssetID)
	if err != nil {
		return err
	}
	if !exists || !c.authorized(owner) {
		return ErrNotOwner
	}

	// Only the recipient's reservation is checked; the sender is released
	// unconditionally.
	if err := moveStake(c, c.Sender, t.To); err != nil {
		return err
	}
	if err := putOwner(c.Database, t.AssetID, t.To); err != nil {
		return err
	}
	return c.emit(&AssetTransferred{
		From:    c.Sender,
		To:      t.To,
		AssetID: t.AssetID,
	})
}

func (t *TransferTx) Copy() UnsignedTransaction {
	return &TransferTx{
		BaseTx:  t.BaseTx.Copy(),
		To:      t.To,
		AssetID: t.AssetID,
	}
}

func (t *TransferTx) Activity() *Activity {
	return &Activity{
		Typ:    Transfer,
		Assets: []uint64{t.AssetID},
		To:     t.To.String(),
	}
}
