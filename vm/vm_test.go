// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
)

var f = &crypto.FactorySECP256K1R{}

type testKey struct {
	priv crypto.PrivateKey
	addr ids.ShortID
}

func newTestKeys(t *testing.T, n int) []*testKey {
	t.Helper()
	keys := make([]*testKey, n)
	for i := range keys {
		priv, err := f.NewPrivateKey()
		require.NoError(t, err)
		keys[i] = &testKey{priv: priv, addr: priv.PublicKey().Address()}
	}
	return keys
}

func newTestVM(t *testing.T, db database.Database, g *chain.Genesis) *VM {
	t.Helper()
	b, err := json.Marshal(g)
	require.NoError(t, err)

	var cfg Config
	cfg.SetDefaults()
	cfg.BuildInterval = 10 * time.Millisecond

	vm := New(db)
	require.NoError(t, vm.Initialize(b, cfg))
	vm.SetBlockBuilder(vm.NewManualBuilder())
	return vm
}

func sign(t *testing.T, utx chain.UnsignedTransaction, k *testKey) *chain.Transaction {
	t.Helper()
	tx, err := chain.SignTx(utx, k.priv)
	require.NoError(t, err)
	return tx
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 1)
	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{{Address: keys[0].addr, Balance: 500}}

	db := memdb.New()
	vm := newTestVM(t, db, g)
	genesis := vm.LastAccepted()
	assert.Equal(t, uint64(0), genesis.Height())

	require.Empty(t, vm.Submit(sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{}}, keys[0])))
	blk, err := vm.BuildBlock()
	require.NoError(t, err)
	assert.Equal(t, genesis.ID(), blk.Parent())

	// restarting on the same database resumes from the last block and does
	// not allocate twice
	restarted := newTestVM(t, db, g)
	assert.Equal(t, blk.ID(), restarted.LastAccepted().ID())
	require.NoError(t, restarted.View(func(db database.Database) error {
		a, err := restarted.Ledger().Account(db, keys[0].addr)
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(450), a.Free)
		assert.Equal(t, uint64(50), a.Reserved)
		return nil
	}))

	_, err = New(memdb.New()).BuildBlock()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Error(t, New(memdb.New()).Initialize([]byte("{"), Config{}))
}

func TestSubmitAndBuild(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 3)
	seller, buyerA, buyerB := keys[0], keys[1], keys[2]
	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{
		{Address: seller.addr, Balance: 1000},
		{Address: buyerA.addr, Balance: 10000},
		{Address: buyerB.addr, Balance: 10000},
	}
	vm := newTestVM(t, memdb.New(), g)

	require.Empty(t, vm.Submit(sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{}}, seller)))
	_, err := vm.BuildBlock()
	require.NoError(t, err)

	// precondition failures are reported synchronously
	errs := vm.Submit(sign(t, &chain.BuyTx{BaseTx: &chain.BaseTx{}, AssetID: 0}, buyerA))
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], chain.ErrNotForSale)
	assert.Equal(t, 0, vm.Pending())

	require.Empty(t, vm.Submit(sign(t, &chain.SellTx{BaseTx: &chain.BaseTx{}, AssetID: 0, Price: 100}, seller)))
	_, err = vm.BuildBlock()
	require.NoError(t, err)

	// both buys pass the dry-run; only the first one applies
	first := sign(t, &chain.BuyTx{BaseTx: &chain.BaseTx{}, AssetID: 0}, buyerA)
	second := sign(t, &chain.BuyTx{BaseTx: &chain.BaseTx{}, AssetID: 0}, buyerB)
	require.Empty(t, vm.Submit(first, second))
	errs = vm.Submit(first)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], chain.ErrDuplicateTx)

	blk, err := vm.BuildBlock()
	require.NoError(t, err)
	assert.Len(t, blk.Txs, 2)
	assert.Equal(t, uint64(3), blk.Height())

	require.NoError(t, vm.View(func(db database.Database) error {
		owner, exists, err := chain.GetOwner(db, 0)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, buyerA.addr, owner)

		status, _, err := chain.GetTxStatus(db, first.ID())
		require.NoError(t, err)
		assert.True(t, status.Success)
		status, _, err = chain.GetTxStatus(db, second.ID())
		require.NoError(t, err)
		assert.False(t, status.Success)
		assert.Equal(t, chain.ErrNotForSale.Error(), status.Error)

		a, err := vm.Ledger().Account(db, buyerA.addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(10000-150), a.Free)
		assert.Equal(t, uint64(50), a.Reserved)
		return nil
	}))

	// an applied tx cannot be resubmitted
	errs = vm.Submit(first)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], chain.ErrDuplicateTx)

	_, err = vm.BuildBlock()
	assert.ErrorIs(t, err, ErrNoPendingTx)

	activity := vm.RecentActivity()
	require.Len(t, activity, 4)
	assert.Equal(t, chain.Buy, activity[0].Typ)
	assert.Equal(t, chain.ErrNotForSale.Error(), activity[0].Error)
	assert.Equal(t, chain.Buy, activity[1].Typ)
	assert.Empty(t, activity[1].Error)
	assert.Equal(t, chain.Create, activity[3].Typ)
}

func TestBuildBlockMaxTxs(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 1)
	g := chain.DefaultGenesis()
	g.MaxBlockTxs = 2
	g.Allocations = []*balances.Allocation{{Address: keys[0].addr, Balance: 1000}}
	vm := newTestVM(t, memdb.New(), g)

	txs := make([]*chain.Transaction, 3)
	for i := range txs {
		txs[i] = sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{Nonce: uint64(i)}}, keys[0])
	}
	require.Empty(t, vm.Submit(txs...))

	blk, err := vm.BuildBlock()
	require.NoError(t, err)
	require.Len(t, blk.Txs, 2)
	assert.Equal(t, txs[0].ID(), blk.Txs[0].ID())
	assert.Equal(t, txs[1].ID(), blk.Txs[1].ID())

	blk, err = vm.BuildBlock()
	require.NoError(t, err)
	require.Len(t, blk.Txs, 1)
	assert.Equal(t, txs[2].ID(), blk.Txs[0].ID())

	cached, err := vm.GetBlock(blk.ID())
	require.NoError(t, err)
	assert.Equal(t, blk.ID(), cached.ID())

	require.NoError(t, vm.View(func(db database.Database) error {
		owned, err := chain.GetOwnedAssets(db, keys[0].addr)
		require.NoError(t, err)
		assert.Equal(t, []uint64{0, 1, 2}, owned)
		return nil
	}))
}

func TestRun(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 1)
	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{{Address: keys[0].addr, Balance: 1000}}
	vm := newTestVM(t, memdb.New(), g)
	vm.SetBlockBuilder(vm.NewTimeBuilder())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- vm.Run(ctx)
	}()

	tx := sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{}}, keys[0])
	require.Empty(t, vm.Submit(tx))
	require.Eventually(t, func() bool {
		var applied bool
		_ = vm.View(func(db database.Database) (err error) {
			applied, err = chain.HasTransaction(db, tx.ID())
			return err
		})
		return applied
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, uint64(1), vm.LastAccepted().Height())
}

var errFailedWrite = errors.New("failed write")

// failingDB fails every batch write while [fail] is set.
type failingDB struct {
	database.Database
	fail bool
}

func (db *failingDB) NewBatch() database.Batch {
	b := db.Database.NewBatch()
	if db.fail {
		return &failingBatch{Batch: b}
	}
	return b
}

type failingBatch struct {
	database.Batch
}

func (*failingBatch) Write() error { return errFailedWrite }

func TestBuildBlockCommitFailure(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 1)
	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{{Address: keys[0].addr, Balance: 1000}}
	db := &failingDB{Database: memdb.New()}
	vm := newTestVM(t, db, g)
	genesis := vm.LastAccepted()

	txs := make([]*chain.Transaction, 3)
	for i := range txs {
		txs[i] = sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{Nonce: uint64(i)}}, keys[0])
	}
	require.Empty(t, vm.Submit(txs[:2]...))

	db.fail = true
	_, err := vm.BuildBlock()
	require.ErrorIs(t, err, errFailedWrite)
	db.fail = false

	// nothing was lost and nothing was applied
	assert.Equal(t, 2, vm.Pending())
	assert.Equal(t, genesis.ID(), vm.LastAccepted().ID())

	// a later arrival stays behind the requeued txs
	require.Empty(t, vm.Submit(txs[2]))
	blk, err := vm.BuildBlock()
	require.NoError(t, err)
	require.Len(t, blk.Txs, 3)
	for i, tx := range txs {
		assert.Equal(t, tx.ID(), blk.Txs[i].ID(), "#%d", i)
	}
}

func TestRunNotInitialized(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.ErrorIs(t, New(memdb.New()).Run(ctx), ErrNotInitialized)
}
