// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"
)

// reserveStake holds one stake unit against [addr].
func reserveStake(c *TransactionContext, addr ids.ShortID) error {
	if err := c.Currency.Reserve(c.Database, addr, c.Genesis.StakePerAsset); err != nil {
		return fmt.Errorf("%w: %v", ErrStakingFailed, err)
	}
	return nil
}

// releaseStake returns one stake unit to [addr]. Whatever part of the stake
// [addr] no longer had reserved is ignored.
func releaseStake(c *TransactionContext, addr ids.ShortID) error {
	left, err := c.Currency.Unreserve(c.Database, addr, c.Genesis.StakePerAsset)
	if err != nil {
		return err
	}
	if left > 0 {
		log.Debug("stake partially released", "address", addr, "missing", left)
	}
	return nil
}

// moveStake reserves on [to] before releasing [from]. If the reservation
// fails [from] keeps its stake.
func moveStake(c *TransactionContext, from ids.ShortID, to ids.ShortID) error {
	if err := reserveStake(c, to); err != nil {
		return err
	}
	return releaseStake(c, from)
}
