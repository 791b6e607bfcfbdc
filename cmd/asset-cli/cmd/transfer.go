// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/parser"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [options] <to> <asset id>",
	Short: "Gives an owned asset to another address",
	Long: `
Issues "TransferTx". The recipient must be able to reserve the
stake per asset; the sender's stake is released.

$ asset-cli transfer 6Y3kysjF9jnHnYkdS9yGAuoHyae2eNmeV 3
<<COMMENT
success
COMMENT

`,
	RunE: transferFunc,
}

func transferFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	to, err := parser.ParseAddress(args[0])
	if err != nil {
		return err
	}
	assetID, err := parser.ParseAssetID(args[1])
	if err != nil {
		return err
	}
	return issue(&chain.TransferTx{
		BaseTx:  &chain.BaseTx{},
		To:      to,
		AssetID: assetID,
	}, &assetID)
}
