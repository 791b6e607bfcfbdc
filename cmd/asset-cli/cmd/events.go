// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/client"
	"github.com/ava-labs/assetvm/parser"
)

var eventsCmd = &cobra.Command{
	Use:   "events [options] [from height] [to height]",
	Short: "Prints the events emitted in a range of blocks",
	Long: `
Missing heights default to the last accepted block.

$ asset-cli events
$ asset-cli events 1 10

`,
	RunE: eventsFunc,
}

func eventsFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return errUnexpectedArgs(2, len(args))
	}
	cli := client.New(uri, requestTimeout)
	_, last, err := cli.Accepted()
	if err != nil {
		return err
	}
	start, end, err := parser.ParseHeightRange(args, last)
	if err != nil {
		return err
	}
	events, err := cli.Events(start, end)
	if err != nil {
		return err
	}
	for _, e := range events {
		switch ev := e.Event.(type) {
		case *chain.AssetCreated:
			color.Green("%d/%d created asset=%d owner=%s", e.Height, e.TxIndex, ev.AssetID, ev.Owner)
		case *chain.AssetTransferred:
			color.Cyan("%d/%d transferred asset=%d from=%s to=%s", e.Height, e.TxIndex, ev.AssetID, ev.From, ev.To)
		case *chain.AssetListed:
			if ev.Listed {
				color.Yellow("%d/%d listed asset=%d owner=%s price=%d", e.Height, e.TxIndex, ev.AssetID, ev.Owner, ev.Price)
			} else {
				color.Yellow("%d/%d delisted asset=%d owner=%s", e.Height, e.TxIndex, ev.AssetID, ev.Owner)
			}
		case *chain.AssetTraded:
			color.Magenta("%d/%d traded asset=%d buyer=%s seller=%s", e.Height, e.TxIndex, ev.AssetID, ev.Buyer, ev.Seller)
		}
	}
	return nil
}
