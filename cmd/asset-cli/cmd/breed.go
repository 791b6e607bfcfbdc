// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
)

var breedCmd = &cobra.Command{
	Use:   "breed [options] <parent a> <parent b>",
	Short: "Mints a new asset by crossing two existing ones",
	Long: `
Issues "BreedTx". The parents can be owned by anyone but must be
two different assets.

$ asset-cli breed 0 1
<<COMMENT
success
COMMENT

$ asset-cli breed 0 0
<<COMMENT
error
COMMENT

`,
	RunE: breedFunc,
}

func breedFunc(cmd *cobra.Command, args []string) error {
	parents, err := getAssetIDOp(args, 2)
	if err != nil {
		return err
	}
	return issue(&chain.BreedTx{
		BaseTx:  &chain.BaseTx{},
		ParentA: parents[0],
		ParentB: parents[1],
	}, nil)
}
