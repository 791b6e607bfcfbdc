// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "asset-cli" implements assetvm client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "asset-cli",
		Short:      "AssetVM CLI",
		SuggestFor: []string{"asset-cli", "assetcli", "assetctl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,
		keyCmd,
		createCmd,
		breedCmd,
		sellCmd,
		transferCmd,
		buyCmd,
		infoCmd,
		balanceCmd,
		eventsCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".asset-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9650",
		"RPC endpoint for VM",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
