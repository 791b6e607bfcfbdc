// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto"
	"github.com/ava-labs/avalanchego/utils/formatting"
	"github.com/fatih/color"

	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/client"
	"github.com/ava-labs/assetvm/parser"
)

var factory = &crypto.FactorySECP256K1R{}

func loadKey(path string) (crypto.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := formatting.Decode(formatting.CB58, strings.TrimSpace(string(b)))
	if err != nil {
		return nil, err
	}
	return factory.ToPrivateKey(raw)
}

func saveKey(path string, priv crypto.PrivateKey) error {
	s, err := formatting.EncodeWithChecksum(formatting.CB58, priv.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), fsModeWrite)
}

func getAssetIDOp(args []string, n int) ([]uint64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected exactly %d argument(s), got %d", n, len(args))
	}
	assetIDs := make([]uint64, n)
	for i, arg := range args {
		id, err := parser.ParseAssetID(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %q", err, arg)
		}
		assetIDs[i] = id
	}
	return assetIDs, nil
}

// issue signs [utx] with the configured key, waits for it to be applied, and
// prints [assetID] afterwards when given.
func issue(utx chain.UnsignedTransaction, assetID *uint64) error {
	priv, err := loadKey(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)

	opts := []client.OpOption{client.WithPollTx()}
	if assetID != nil {
		opts = append(opts, client.WithInfo(*assetID))
	}
	if _, err := client.SignIssueTx(context.Background(), cli, utx, priv, opts...); err != nil {
		return err
	}
	return printBalance(cli, priv.PublicKey().Address())
}

func printBalance(cli client.Client, addr ids.ShortID) error {
	acct, err := cli.Balance(addr)
	if err != nil {
		return err
	}
	color.Cyan("Address=%s Free=%d Reserved=%d", addr, acct.Free, acct.Reserved)
	return nil
}

func errUnexpectedArgs(max int, got int) error {
	return fmt.Errorf("expected at most %d argument(s), got %d", max, got)
}
