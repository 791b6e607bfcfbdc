// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/assetvm/balances"
)

var _ UnsignedTransaction = &BuyTx{}

// BuyTx pays the listed price of an asset to its owner and takes ownership.
type BuyTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	AssetID uint64 `serialize:"true" json:"assetId"`
}

func (t *BuyTx) Execute(c *TransactionContext) error {
	seller, exists, err := GetOwner(c.Database, t.AssetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidAssetID
	}
	if c.authorized(seller) {
		return ErrBuyerIsOwner
	}
	listing, exists, err := GetListing(c.Database, t.AssetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotForSale
	}

	// Free balance must strictly exceed price + stake.
	free, err := c.Currency.FreeBalance(c.Database, c.Sender)
	if err != nil {
		return err
	}
	required, err := smath.Add64(listing.Price, c.Genesis.StakePerAsset)
	if err != nil || free <= required {
		return ErrInsufficientBalanceForBuy
	}

	if err := moveStake(c, seller, c.Sender); err != nil {
		return err
	}
	if err := c.Currency.Transfer(c.Database, c.Sender, seller, listing.Price, balances.KeepAlive); err != nil {
		return err
	}
	if err := putOwner(c.Database, t.AssetID, c.Sender); err != nil {
		return err
	}
	if err := deleteListing(c.Database, t.AssetID); err != nil {
		return err
	}
	return c.emit(&AssetTraded{
		Buyer:   c.Sender,
		Seller:  seller,
		AssetID: t.AssetID,
	})
}

func (t *BuyTx) Copy() UnsignedTransaction {
	return &BuyTx{
		BaseTx:  t.BaseTx.Copy(),
		AssetID: t.AssetID,
	}
}

func (t *BuyTx) Activity() *Activity {
	return &Activity{
		Typ:    Buy,
		Assets: []uint64{t.AssetID},
	}
}
