// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetNonce() uint64
	SetNonce(uint64)

	// Execute checks every precondition before its first write. Callers
	// still run it on a private layer so a failure after the first write
	// leaves nothing behind.
	Execute(*TransactionContext) error
	Activity() *Activity
}
