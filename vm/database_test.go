// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
)

func TestOpenDatabaseMemory(t *testing.T) {
	t.Parallel()

	db, err := OpenDatabase("")
	require.NoError(t, err)
	_, ok := db.(*memdb.Database)
	assert.True(t, ok)
	require.NoError(t, db.Close())
}

func TestOpenDatabaseResume(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t, 1)
	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{{Address: keys[0].addr, Balance: 500}}
	dir := t.TempDir()

	db, err := OpenDatabase(dir)
	require.NoError(t, err)
	vm := newTestVM(t, db, g)
	require.Empty(t, vm.Submit(sign(t, &chain.CreateTx{BaseTx: &chain.BaseTx{}}, keys[0])))
	blk, err := vm.BuildBlock()
	require.NoError(t, err)
	require.NoError(t, vm.Shutdown())

	db, err = OpenDatabase(dir)
	require.NoError(t, err)
	restarted := newTestVM(t, db, g)
	defer restarted.Shutdown()

	assert.Equal(t, blk.ID(), restarted.LastAccepted().ID())
	assert.Equal(t, uint64(1), restarted.LastAccepted().Height())
	require.NoError(t, restarted.View(func(db database.Database) error {
		owner, exists, err := chain.GetOwner(db, 0)
		if err != nil {
			return err
		}
		assert.True(t, exists)
		assert.Equal(t, keys[0].addr, owner)

		a, err := restarted.Ledger().Account(db, keys[0].addr)
		if err != nil {
			return err
		}
		// allocations are not applied a second time
		assert.Equal(t, uint64(450), a.Free)
		assert.Equal(t, uint64(50), a.Reserved)
		return nil
	}))
}
