// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	log "github.com/inconshreveable/log15"
)

type Block struct {
	Prnt   ids.ID         `serialize:"true" json:"parent"`
	Tmstmp int64          `serialize:"true" json:"timestamp"`
	Hght   uint64         `serialize:"true" json:"height"`
	Txs    []*Transaction `serialize:"true" json:"txs"`

	id    ids.ID
	t     time.Time
	bytes []byte
}

// GenesisBlock is the height 0 block every chain starts from.
func GenesisBlock() (*Block, error) {
	b := &Block{}
	if err := b.init(); err != nil {
		return nil, err
	}
	return b, nil
}

func NewBlock(parent *Block, tmstp int64, txs []*Transaction) (*Block, error) {
	if len(txs) == 0 {
		return nil, ErrNoTxs
	}
	if tmstp < parent.Tmstmp {
		return nil, ErrTimestampTooEarly
	}
	b := &Block{
		Prnt:   parent.ID(),
		Tmstmp: tmstp,
		Hght:   parent.Height() + 1,
		Txs:    txs,
	}
	if err := b.init(); err != nil {
		return nil, err
	}
	return b, nil
}

func ParseBlock(source []byte) (*Block, error) {
	b := new(Block)
	if _, err := Unmarshal(source, b); err != nil {
		return nil, err
	}
	for _, tx := range b.Txs {
		if err := tx.Init(); err != nil {
			return nil, err
		}
	}
	b.bytes = source
	id, err := ids.ToID(hashing.ComputeHash256(b.bytes))
	if err != nil {
		return nil, err
	}
	b.id = id
	b.t = time.Unix(b.Tmstmp, 0)
	return b, nil
}

func (b *Block) init() error {
	bytes, err := Marshal(b)
	if err != nil {
		return err
	}
	b.bytes = bytes
	id, err := ids.ToID(hashing.ComputeHash256(b.bytes))
	if err != nil {
		return err
	}
	b.id = id
	b.t = time.Unix(b.Tmstmp, 0)
	return nil
}

func (b *Block) ID() ids.ID { return b.id }

func (b *Block) Parent() ids.ID { return b.Prnt }

func (b *Block) Bytes() []byte { return b.bytes }

func (b *Block) Height() uint64 { return b.Hght }

func (b *Block) Timestamp() time.Time { return b.t }

// Context returns the execution context shared by the transactions of [b].
func (b *Block) Context(g *Genesis, currency Currency) *BlockContext {
	return &BlockContext{
		Genesis:    g,
		Currency:   currency,
		Randomness: &BlockRandomness{Parent: b.Prnt, Height: b.Hght},
		BlockTime:  uint64(b.Tmstmp),
		Height:     b.Hght,
	}
}

// Apply executes the transactions of [b] in order on a layer over [db].
// A failed transaction is recorded with its error and does not stop the
// block. The returned layer also marks [b] as last accepted and must be
// committed by the caller.
func (b *Block) Apply(db database.Database, g *Genesis, currency Currency) (*versiondb.Database, []error, error) {
	if len(b.Txs) > int(g.MaxBlockTxs) {
		return nil, nil, ErrTooManyTxs
	}
	lastID, err := GetLastAccepted(db)
	if err != nil {
		return nil, nil, err
	}
	if lastID != b.Prnt {
		return nil, nil, ErrParentBlockNotAccepted
	}
	source, err := GetBlock(db, lastID)
	if err != nil {
		return nil, nil, err
	}
	parent, err := ParseBlock(source)
	if err != nil {
		return nil, nil, err
	}
	if b.Hght != parent.Hght+1 {
		return nil, nil, ErrInvalidHeight
	}
	if b.Tmstmp < parent.Tmstmp {
		return nil, nil, ErrTimestampTooEarly
	}

	vdb := versiondb.New(db)
	bctx := b.Context(g, currency)
	results := make([]error, len(b.Txs))
	for i, tx := range b.Txs {
		txErr := tx.Execute(vdb, bctx, uint32(i))
		results[i] = txErr
		if txErr == ErrDuplicateTx {
			// the first execution keeps its status
			log.Debug("skipping duplicate tx", "txId", tx.ID())
			continue
		}
		status := &TxStatus{Height: b.Hght, Success: txErr == nil}
		if txErr != nil {
			status.Error = txErr.Error()
			log.Debug("failed tx execution", "txId", tx.ID(), "type", tx.UnsignedTransaction.Activity().Typ, "err", txErr)
		}
		if err := SetTxStatus(vdb, tx.ID(), status); err != nil {
			vdb.Abort()
			return nil, nil, err
		}
	}
	if err := SetLastAccepted(vdb, b); err != nil {
		vdb.Abort()
		return nil, nil, err
	}
	return vdb, results, nil
}
