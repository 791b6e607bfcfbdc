// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package version implements "version" commands.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvm/version"
	"github.com/ava-labs/assetvm/vm"
)

// NewCommand implements "assetvm version" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints out the version",
		RunE:  versionFunc,
	}
}

func versionFunc(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s@%s\n", vm.Name, version.Version)
	return nil
}
