// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
)

var createCmd = &cobra.Command{
	Use:   "create [options]",
	Short: "Mints a new asset with a fresh genome",
	Long: `
Issues "CreateTx". The new asset is owned by the key's address and
reserves the stake per asset from its free balance.

$ asset-cli create
<<COMMENT
success
COMMENT

`,
	RunE: createFunc,
}

func createFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errUnexpectedArgs(0, len(args))
	}
	return issue(&chain.CreateTx{BaseTx: &chain.BaseTx{}}, nil)
}
