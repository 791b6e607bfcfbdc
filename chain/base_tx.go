// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Nonce distinguishes otherwise identical transactions signed by the
	// same key.
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) GetNonce() uint64 { return b.Nonce }

func (b *BaseTx) SetNonce(n uint64) { b.Nonce = n }

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{Nonce: b.Nonce}
}
