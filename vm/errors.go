// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrNoPendingTx    = errors.New("no pending tx")
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrMempoolFull    = errors.New("mempool full")
	ErrNotInitialized = errors.New("vm not initialized")
	ErrCorruption     = errors.New("corruption detected")

	ErrInvalidEventRange  = errors.New("event range start exceeds its end")
	ErrEventRangeTooLarge = errors.New("event range too large")
)
