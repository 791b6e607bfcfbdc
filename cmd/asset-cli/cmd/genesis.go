// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
)

var (
	genesisFile string

	stakePerAsset      int64
	maxAssetID         int64
	existentialDeposit int64
	maxBlockTxs        int64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&stakePerAsset,
		"stake-per-asset",
		-1,
		"balance reserved on the owner of every asset",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&maxAssetID,
		"max-asset-id",
		-1,
		"number of assets that can ever be minted",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&existentialDeposit,
		"existential-deposit",
		-1,
		"minimum total balance of a live account",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&maxBlockTxs,
		"max-block-txs",
		-1,
		"maximum number of transactions in a block",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	Long: `
Creates a new genesis from an allocations file, a JSON list of
{"address": <cb58>, "balance": <amount>} entries.

$ asset-cli genesis allocations.json --stake-per-asset=50

`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("invalid args")
		}
		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	if stakePerAsset >= 0 {
		genesis.StakePerAsset = uint64(stakePerAsset)
	}
	if maxAssetID >= 0 {
		genesis.MaxAssetID = uint64(maxAssetID)
	}
	if existentialDeposit >= 0 {
		genesis.ExistentialDeposit = uint64(existentialDeposit)
	}
	if maxBlockTxs >= 0 {
		genesis.MaxBlockTxs = uint64(maxBlockTxs)
	}

	a, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	allocs := []*balances.Allocation{}
	if err := json.Unmarshal(a, &allocs); err != nil {
		return err
	}
	genesis.Allocations = allocs
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis with %d allocations and saved to %s", len(allocs), genesisFile)
	return nil
}
