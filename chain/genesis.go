// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"math"

	"github.com/ava-labs/avalanchego/database"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/balances"
)

type Genesis struct {
	// StakePerAsset is reserved against an owner's balance for every asset
	// it owns.
	StakePerAsset uint64 `serialize:"true" json:"stakePerAsset"`

	// MaxAssetID bounds the asset counter. Once the counter reaches it no
	// more assets can be minted.
	MaxAssetID uint64 `serialize:"true" json:"maxAssetId"`

	// ExistentialDeposit is the minimum total balance an account must keep
	// to stay alive in the ledger.
	ExistentialDeposit uint64 `serialize:"true" json:"existentialDeposit"`

	MaxBlockTxs uint64 `serialize:"true" json:"maxBlockTxs"`

	Allocations []*balances.Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		StakePerAsset:      50,
		MaxAssetID:         math.MaxUint32,
		ExistentialDeposit: 1,
		MaxBlockTxs:        256,
	}
}

func ParseGenesis(b []byte) (*Genesis, error) {
	g := new(Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	if err := g.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genesis) Verify() error {
	if g.MaxAssetID == 0 {
		return ErrInvalidMaxAssetID
	}
	if g.MaxBlockTxs == 0 {
		return ErrInvalidBlockTxs
	}
	return nil
}

func (g *Genesis) Ledger() *balances.Ledger {
	return balances.New(g.ExistentialDeposit)
}

// Load writes the genesis allocations into [db].
func (g *Genesis) Load(db database.Database) error {
	if err := g.Ledger().Allocate(db, g.Allocations); err != nil {
		return err
	}
	log.Info("loaded genesis", "allocations", len(g.Allocations), "stake", g.StakePerAsset, "maxAssetId", g.MaxAssetID)
	return nil
}
