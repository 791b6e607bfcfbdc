// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &SellTx{}

// SellTx lists an asset at [Price], or removes its listing when [Delist]
// is set.
type SellTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	AssetID uint64 `serialize:"true" json:"assetId"`
	Price   uint64 `serialize:"true" json:"price"`
	Delist  bool   `serialize:"true" json:"delist"`
}

// ListPrice returns the asking price, if any.
func (t *SellTx) ListPrice() (uint64, bool) {
	if t.Delist {
		return 0, false
	}
	return t.Price, true
}

func (t *SellTx) Execute(c *TransactionContext) error {
	owner, exists, err := GetOwner(c.Database, t.AssetID)
	if err != nil {
		return err
	}
	if !exists || !c.authorized(owner) {
		return ErrNotOwner
	}

	price, listed := t.ListPrice()
	if listed {
		err = putListing(c.Database, t.AssetID, &Listing{Price: price})
	} else {
		err = deleteListing(c.Database, t.AssetID)
	}
	if err != nil {
		return err
	}
	return c.emit(&AssetListed{
		Owner:   c.Sender,
		AssetID: t.AssetID,
		Price:   price,
		Listed:  listed,
	})
}

func (t *SellTx) Copy() UnsignedTransaction {
	return &SellTx{
		BaseTx:  t.BaseTx.Copy(),
		AssetID: t.AssetID,
		Price:   t.Price,
		Delist:  t.Delist,
	}
}

func (t *SellTx) Activity() *Activity {
	price, _ := t.ListPrice()
	return &Activity{
		Typ:    Sell,
		Assets: []uint64{t.AssetID},
		Price:  price,
	}
}
