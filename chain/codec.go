// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/assetvm/codec"
)

func init() {
	errs := wrappers.Errs{}
	errs.Add(
		// Transactions
		codec.RegisterType(&CreateTx{}),
		codec.RegisterType(&BreedTx{}),
		codec.RegisterType(&SellTx{}),
		codec.RegisterType(&TransferTx{}),
		codec.RegisterType(&BuyTx{}),

		// Events
		codec.RegisterType(&AssetCreated{}),
		codec.RegisterType(&AssetTransferred{}),
		codec.RegisterType(&AssetListed{}),
		codec.RegisterType(&AssetTraded{}),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codec.Marshal(source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codec.Unmarshal(source, destination)
}
