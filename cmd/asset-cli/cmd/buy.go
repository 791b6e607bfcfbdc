// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
)

var buyCmd = &cobra.Command{
	Use:   "buy [options] <asset id>",
	Short: "Buys a listed asset at its asking price",
	Long: `
Issues "BuyTx". The free balance must exceed the asking price plus
the stake per asset.

$ asset-cli buy 3
<<COMMENT
success
COMMENT

`,
	RunE: buyFunc,
}

func buyFunc(cmd *cobra.Command, args []string) error {
	assetIDs, err := getAssetIDOp(args, 1)
	if err != nil {
		return err
	}
	return issue(&chain.BuyTx{
		BaseTx:  &chain.BaseTx{},
		AssetID: assetIDs[0],
	}, &assetIDs[0])
}
