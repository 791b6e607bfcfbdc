// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto"

	"github.com/ava-labs/assetvm/balances"
)

var (
	alice = ids.ShortID{0x1}
	bob   = ids.ShortID{0x2}
	carol = ids.ShortID{0x3}
)

func newTestKey(t *testing.T) (crypto.PrivateKey, ids.ShortID) {
	t.Helper()
	priv, err := f.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	return priv, priv.PublicKey().Address()
}

// newTestState returns a database holding [g] and the genesis block.
func newTestState(t *testing.T, g *Genesis) database.Database {
	t.Helper()
	db := memdb.New()
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
	gb, err := GenesisBlock()
	if err != nil {
		t.Fatal(err)
	}
	if err := SetLastAccepted(db, gb); err != nil {
		t.Fatal(err)
	}
	return db
}

func newTestContext(db database.Database, g *Genesis, sender ids.ShortID, txIndex uint32) *TransactionContext {
	return &TransactionContext{
		Genesis:    g,
		Database:   db,
		Currency:   g.Ledger(),
		Randomness: &BlockRandomness{Height: 1},
		Height:     1,
		TxID:       ids.GenerateTestID(),
		TxIndex:    txIndex,
		Sender:     sender,
	}
}

// mustCreate mints an asset for [owner] and returns its id.
func mustCreate(t *testing.T, db database.Database, g *Genesis, owner ids.ShortID) uint64 {
	t.Helper()
	id, err := GetAssetCount(db)
	if err != nil {
		t.Fatal(err)
	}
	utx := &CreateTx{BaseTx: &BaseTx{}}
	if err := utx.Execute(newTestContext(db, g, owner, uint32(id))); err != nil {
		t.Fatal(err)
	}
	return id
}

func mustAccount(t *testing.T, db database.Database, g *Genesis, addr ids.ShortID) *balances.Account {
	t.Helper()
	a, err := g.Ledger().Account(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func mustOwner(t *testing.T, db database.Database, id uint64) ids.ShortID {
	t.Helper()
	owner, exists, err := GetOwner(db, id)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatalf("asset %d has no owner", id)
	}
	return owner
}

func testGenesis(allocs ...*balances.Allocation) *Genesis {
	g := DefaultGenesis()
	g.Allocations = allocs
	return g
}
