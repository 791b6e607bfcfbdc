// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key [options]",
	Short: "Creates a new key in the default location",
	Long: `
Creates a new key in the default location.
It will error if the key file already exists.

$ asset-cli key

`,
	RunE: keyFunc,
}

func keyFunc(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(privateKeyFile); err == nil {
		// Already found, remind the user they have it
		priv, err := loadKey(privateKeyFile)
		if err != nil {
			return err
		}
		color.Green("ABORTING!!! key for %s already exists at %s", priv.PublicKey().Address(), privateKeyFile)
		return os.ErrExist
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	priv, err := factory.NewPrivateKey()
	if err != nil {
		return err
	}
	if err := saveKey(privateKeyFile, priv); err != nil {
		return err
	}
	color.Green("created address %s and saved to %s", priv.PublicKey().Address(), privateKeyFile)
	return nil
}
