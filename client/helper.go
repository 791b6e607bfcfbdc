// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto"
	"github.com/fatih/color"

	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/vm"
)

// Signs and issues the transaction. A zero nonce is replaced so that
// repeating an operation does not produce a duplicate transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv crypto.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	if utx.GetNonce() == 0 {
		utx.SetNonce(uint64(time.Now().UnixNano()))
	}
	tx, err := chain.SignTx(utx, priv)
	if err != nil {
		return ids.Empty, err
	}

	a := tx.Activity()
	color.Yellow("issuing %s tx %s (sender=%s, nonce=%d)", a.Typ, tx.ID(), a.Sender, tx.GetNonce())
	txID, err = cli.IssueTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		status, err := cli.PollTx(ctx, txID)
		if err != nil {
			return txID, err
		}
		if !status.Success {
			color.Red("transaction %s failed at height %d: %s", txID, status.Height, status.Error)
			return txID, fmt.Errorf("%w: %s", ErrTxFailed, status.Error)
		}
		color.Green("transaction %s applied at height %d", txID, status.Height)
	}

	if ret.assetID != nil {
		info, err := cli.Asset(*ret.assetID)
		if err != nil {
			color.Red("cannot get asset info %v", err)
			return txID, err
		}
		PrintAsset(*ret.assetID, info)
	}
	return txID, nil
}

// PrintAsset writes a one-line summary of an asset.
func PrintAsset(id uint64, info *vm.AssetReply) {
	if !info.Exists {
		color.Red("asset %d does not exist", id)
		return
	}
	price := "not for sale"
	if info.Listed {
		price = fmt.Sprintf("price=%d", info.Price)
	}
	color.Blue("asset %d: genome=%s owner=%s %s", id, info.Asset.Genome, info.Owner, price)
}
