// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Genesis Correctness
	ErrInvalidMaxAssetID = errors.New("max asset id must be non-zero")
	ErrInvalidBlockTxs   = errors.New("max block txs must be non-zero")

	// Block Correctness
	ErrTimestampTooEarly      = errors.New("block timestamp too early")
	ErrNoTxs                  = errors.New("no transactions")
	ErrTooManyTxs             = errors.New("too many transactions")
	ErrInvalidHeight          = errors.New("invalid block height")
	ErrParentBlockNotAccepted = errors.New("parent block not accepted")

	// Tx Correctness
	ErrInvalidSignature = errors.New("invalid signature")
	ErrNotInitialized   = errors.New("transaction not initialized")
	ErrDuplicateTx      = errors.New("duplicate transaction")
	ErrInvalidType      = errors.New("invalid transaction type")

	// Execution Correctness
	ErrCountOverflow             = errors.New("asset count overflow")
	ErrNotOwner                  = errors.New("sender is not the asset owner")
	ErrSameParent                = errors.New("parents must be different assets")
	ErrInvalidAssetID            = errors.New("asset does not exist")
	ErrBuyerIsOwner              = errors.New("buyer already owns the asset")
	ErrNotForSale                = errors.New("asset is not for sale")
	ErrInsufficientBalanceForBuy = errors.New("not enough balance to buy asset")
	ErrStakingFailed             = errors.New("not enough balance to stake asset")

	// Storage
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrInvalidGenome    = errors.New("invalid genome encoding")
	ErrCorruption       = errors.New("corruption detected")
)
