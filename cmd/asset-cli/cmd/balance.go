// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/client"
	"github.com/ava-labs/assetvm/parser"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [address]",
	Short: "Reads the balance and owned assets of an address",
	Long: `
Without an address, the address of the configured key is used.

$ asset-cli balance
$ asset-cli balance 6Y3kysjF9jnHnYkdS9yGAuoHyae2eNmeV

`,
	RunE: balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	var addr ids.ShortID
	switch len(args) {
	case 0:
		priv, err := loadKey(privateKeyFile)
		if err != nil {
			return err
		}
		addr = priv.PublicKey().Address()
	case 1:
		a, err := parser.ParseAddress(args[0])
		if err != nil {
			return err
		}
		addr = a
	default:
		return errUnexpectedArgs(1, len(args))
	}

	cli := client.New(uri, requestTimeout)
	if err := printBalance(cli, addr); err != nil {
		return err
	}
	owned, err := cli.OwnedAssets(addr)
	if err != nil {
		return err
	}
	color.Cyan("Owned=%v", owned)
	return nil
}
