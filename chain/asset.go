// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type Asset struct {
	ID     uint64 `serialize:"true" json:"id"`
	Genome Genome `serialize:"true" json:"genome"`
}

// Listing is the asking price set by an asset's owner. A missing listing
// means the asset is not for sale.
type Listing struct {
	Price uint64 `serialize:"true" json:"price"`
}

// TxStatus is the outcome of an applied transaction.
type TxStatus struct {
	Height  uint64 `serialize:"true" json:"height"`
	Success bool   `serialize:"true" json:"success"`
	Error   string `serialize:"true" json:"error,omitempty"`
}
