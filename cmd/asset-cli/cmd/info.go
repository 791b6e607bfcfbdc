// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options] <asset id>",
	Short: "Reads the genome, owner and listing of an asset",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	assetIDs, err := getAssetIDOp(args, 1)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	info, err := cli.Asset(assetIDs[0])
	if err != nil {
		return err
	}
	client.PrintAsset(assetIDs[0], info)
	return nil
}
