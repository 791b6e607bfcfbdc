// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"
)

// mint assigns the next asset id to [genome], stakes it on [owner], and
// records ownership.
func mint(c *TransactionContext, owner ids.ShortID, genome Genome) (uint64, error) {
	id, err := nextAssetID(c.Database, c.Genesis.MaxAssetID)
	if err != nil {
		return 0, err
	}
	if err := reserveStake(c, owner); err != nil {
		return 0, err
	}
	if err := putAsset(c.Database, &Asset{ID: id, Genome: genome}); err != nil {
		return 0, err
	}
	if err := putOwner(c.Database, id, owner); err != nil {
		return 0, err
	}
	if err := SetAssetCount(c.Database, id+1); err != nil {
		return 0, err
	}
	log.Info("minted asset", "id", id, "owner", owner, "genome", genome)
	return id, c.emit(&AssetCreated{Owner: owner, AssetID: id})
}
