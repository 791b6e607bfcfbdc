// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/client"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "Prints the most recently applied transactions",
	RunE:  activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	cli := client.New(uri, requestTimeout)
	activity, err := cli.RecentActivity()
	if err != nil {
		return err
	}
	for _, a := range activity {
		at := time.Unix(a.Tmstmp, 0).Format(time.RFC3339)
		if a.Error != "" {
			color.Red("%s %s %s sender=%s assets=%v error=%s", at, a.Typ, a.TxID, a.Sender, a.Assets, a.Error)
			continue
		}
		color.Green("%s %s %s sender=%s assets=%v to=%s price=%d", at, a.Typ, a.TxID, a.Sender, a.Assets, a.To, a.Price)
	}
	return nil
}
