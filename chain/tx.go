// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

var f = &crypto.FactorySECP256K1R{}

// signedPayload prefixes the unsigned transaction with its type id so that
// two transaction types with identical fields never share a signature.
type signedPayload struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
}

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	unsignedBytes []byte
	bytes         []byte
	id            ids.ID
	size          uint64
	sender        ids.ShortID
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

// UnsignedBytes is the message a sender signs for [utx].
func UnsignedBytes(utx UnsignedTransaction) ([]byte, error) {
	return Marshal(&signedPayload{UnsignedTransaction: utx})
}

// SignTx signs [utx] with [priv] and returns the initialized transaction.
func SignTx(utx UnsignedTransaction, priv crypto.PrivateKey) (*Transaction, error) {
	msg, err := UnsignedBytes(utx)
	if err != nil {
		return nil, err
	}
	sig, err := priv.Sign(msg)
	if err != nil {
		return nil, err
	}
	tx := NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Init computes the serialized form and id of [t] and recovers its sender.
func (t *Transaction) Init() error {
	if t.UnsignedTransaction == nil {
		return ErrInvalidType
	}
	utx, err := UnsignedBytes(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.unsignedBytes = utx

	pk, err := f.RecoverPublicKey(t.unsignedBytes, t.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	t.sender = pk.Address()

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	id, err := ids.ToID(hashing.ComputeHash256(t.bytes))
	if err != nil {
		return err
	}
	t.id = id
	t.size = uint64(len(t.bytes))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) UnsignedBytes() []byte { return t.unsignedBytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() ids.ShortID { return t.sender }

// BlockContext is shared by every transaction executed in one block.
type BlockContext struct {
	Genesis    *Genesis
	Currency   Currency
	Randomness Randomness
	BlockTime  uint64
	Height     uint64
}

// Execute applies [t] on a private layer over [db] and commits the layer
// into [db] only if the transaction succeeds.
func (t *Transaction) Execute(db database.Database, bctx *BlockContext, txIndex uint32) error {
	if t.id == ids.Empty {
		return ErrNotInitialized
	}
	has, err := HasTransaction(db, t.id)
	if err != nil {
		return err
	}
	if has {
		return ErrDuplicateTx
	}

	vdb := versiondb.New(db)
	c := &TransactionContext{
		Genesis:    bctx.Genesis,
		Database:   vdb,
		Currency:   bctx.Currency,
		Randomness: bctx.Randomness,
		BlockTime:  bctx.BlockTime,
		Height:     bctx.Height,
		TxID:       t.id,
		TxIndex:    txIndex,
		Sender:     t.sender,
	}
	if err := t.UnsignedTransaction.Execute(c); err != nil {
		vdb.Abort()
		return err
	}
	return vdb.Commit()
}

func (t *Transaction) Activity() *Activity {
	a := t.UnsignedTransaction.Activity()
	a.TxID = t.id.String()
	a.Sender = t.sender.String()
	return a
}
