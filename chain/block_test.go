// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/crypto"

	"github.com/ava-labs/assetvm/balances"
)

func mustSign(t *testing.T, utx UnsignedTransaction, priv crypto.PrivateKey) *Transaction {
	t.Helper()
	tx, err := SignTx(utx, priv)
	if err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestBlockApply(t *testing.T) {
	t.Parallel()

	sellerKey, seller := newTestKey(t)
	buyerAKey, buyerA := newTestKey(t)
	buyerBKey, buyerB := newTestKey(t)
	g := testGenesis(
		&balances.Allocation{Address: seller, Balance: 1000},
		&balances.Allocation{Address: buyerA, Balance: 1000},
		&balances.Allocation{Address: buyerB, Balance: 1000},
	)
	db := newTestState(t, g)
	defer db.Close()

	genesis, err := GenesisBlock()
	if err != nil {
		t.Fatal(err)
	}

	// block 1: mint and list
	blk1, err := NewBlock(genesis, 1, []*Transaction{
		mustSign(t, &CreateTx{BaseTx: &BaseTx{}}, sellerKey),
		mustSign(t, &SellTx{BaseTx: &BaseTx{}, AssetID: 0, Price: 100}, sellerKey),
	})
	if err != nil {
		t.Fatal(err)
	}
	vdb, results, err := blk1.Apply(db, g, g.Ledger())
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		if r != nil {
			t.Fatalf("#%d: unexpected failure %v", i, r)
		}
	}
	if err := vdb.Commit(); err != nil {
		t.Fatal(err)
	}

	// block 2: two buyers race for the same listing
	first := mustSign(t, &BuyTx{BaseTx: &BaseTx{}, AssetID: 0}, buyerAKey)
	second := mustSign(t, &BuyTx{BaseTx: &BaseTx{}, AssetID: 0}, buyerBKey)
	blk2, err := NewBlock(blk1, 2, []*Transaction{first, second, first})
	if err != nil {
		t.Fatal(err)
	}
	vdb, results, err = blk2.Apply(db, g, g.Ledger())
	if err != nil {
		t.Fatal(err)
	}
	if results[0] != nil {
		t.Fatalf("first buy failed %v", results[0])
	}
	if !errors.Is(results[1], ErrNotForSale) {
		t.Fatalf("second buy expected %v, got %v", ErrNotForSale, results[1])
	}
	if !errors.Is(results[2], ErrDuplicateTx) {
		t.Fatalf("replayed buy expected %v, got %v", ErrDuplicateTx, results[2])
	}
	if err := vdb.Commit(); err != nil {
		t.Fatal(err)
	}

	if owner := mustOwner(t, db, 0); owner != buyerA {
		t.Fatalf("owner expected %s, got %s", buyerA, owner)
	}
	status, exists, err := GetTxStatus(db, first.ID())
	if err != nil || !exists || !status.Success || status.Height != 2 {
		t.Fatalf("unexpected status of first buy %+v (%v)", status, err)
	}
	status, exists, err = GetTxStatus(db, second.ID())
	if err != nil || !exists || status.Success || status.Error != ErrNotForSale.Error() {
		t.Fatalf("unexpected status of second buy %+v (%v)", status, err)
	}
	if a := mustAccount(t, db, g, buyerB); a.Free != 1000 || a.Reserved != 0 {
		t.Fatalf("losing buyer expected 1000/0, got %d/%d", a.Free, a.Reserved)
	}

	last, err := GetLastAccepted(db)
	if err != nil {
		t.Fatal(err)
	}
	if last != blk2.ID() {
		t.Fatalf("last accepted expected %s, got %s", blk2.ID(), last)
	}
	source, err := GetBlock(db, last)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseBlock(source)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.ID() != blk2.ID() || parsed.Height() != 2 || len(parsed.Txs) != 3 {
		t.Fatalf("parsed block does not match")
	}
	if parsed.Txs[1].Sender() != buyerB {
		t.Fatalf("parsed sender expected %s, got %s", buyerB, parsed.Txs[1].Sender())
	}

	events, err := GetEvents(db, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	types := []string{Created, Listed, Traded}
	if len(events) != len(types) {
		t.Fatalf("events expected %d, got %d", len(types), len(events))
	}
	for i, e := range events {
		if e.Event.Type() != types[i] {
			t.Fatalf("#%d: event expected %s, got %s", i, types[i], e.Event.Type())
		}
	}
}

func TestBlockApplyInvalid(t *testing.T) {
	t.Parallel()

	priv, sender := newTestKey(t)
	g := testGenesis(&balances.Allocation{Address: sender, Balance: 1000})
	g.MaxBlockTxs = 1
	db := newTestState(t, g)
	defer db.Close()

	genesis, err := GenesisBlock()
	if err != nil {
		t.Fatal(err)
	}
	create := func() *Transaction {
		return mustSign(t, &CreateTx{BaseTx: &BaseTx{}}, priv)
	}

	if _, err := NewBlock(genesis, 1, nil); !errors.Is(err, ErrNoTxs) {
		t.Fatalf("expected %v, got %v", ErrNoTxs, err)
	}
	if _, err := NewBlock(&Block{Tmstmp: 5}, 4, []*Transaction{create()}); !errors.Is(err, ErrTimestampTooEarly) {
		t.Fatalf("expected %v, got %v", ErrTimestampTooEarly, err)
	}

	tooMany, err := NewBlock(genesis, 1, []*Transaction{create(), create()})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tooMany.Apply(db, g, g.Ledger()); !errors.Is(err, ErrTooManyTxs) {
		t.Fatalf("expected %v, got %v", ErrTooManyTxs, err)
	}

	orphanParent := &Block{Hght: 7}
	if err := orphanParent.init(); err != nil {
		t.Fatal(err)
	}
	orphan, err := NewBlock(orphanParent, 1, []*Transaction{create()})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := orphan.Apply(db, g, g.Ledger()); !errors.Is(err, ErrParentBlockNotAccepted) {
		t.Fatalf("expected %v, got %v", ErrParentBlockNotAccepted, err)
	}
}
