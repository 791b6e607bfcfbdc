// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/parser"
)

var sellCmd = &cobra.Command{
	Use:   "sell [options] <asset id> [price]",
	Short: "Lists an owned asset for sale, or delists it",
	Long: `
Issues "SellTx". Without a price the asset is taken off the market.

# lists asset 3 for 100
$ asset-cli sell 3 100
<<COMMENT
success
COMMENT

# delists asset 3
$ asset-cli sell 3
<<COMMENT
success
COMMENT

`,
	RunE: sellFunc,
}

func sellFunc(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
	}
	assetID, err := parser.ParseAssetID(args[0])
	if err != nil {
		return err
	}
	utx := &chain.SellTx{
		BaseTx:  &chain.BaseTx{},
		AssetID: assetID,
		Delist:  true,
	}
	if len(args) == 2 {
		price, err := parser.ParsePrice(args[1])
		if err != nil {
			return err
		}
		utx.Price = price
		utx.Delist = false
	}
	return issue(utx, &assetID)
}
