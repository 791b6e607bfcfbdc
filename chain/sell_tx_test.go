// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvm/balances"
)

func TestSellTx(t *testing.T) {
	t.Parallel()

	g := testGenesis(&balances.Allocation{Address: alice, Balance: 1000})
	db := newTestState(t, g)
	defer db.Close()

	id := mustCreate(t, db, g, alice)

	tt := []struct {
		utx    *SellTx
		sender ids.ShortID
		listed bool
		price  uint64
		err    error
	}{
		{ // not the owner
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id, Price: 10},
			sender: bob,
			err:    ErrNotOwner,
		},
		{ // missing asset
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: 7, Price: 10},
			sender: alice,
			err:    ErrNotOwner,
		},
		{
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id, Price: 10},
			sender: alice,
			listed: true,
			price:  10,
		},
		{ // relisting overwrites the price
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id, Price: 25},
			sender: alice,
			listed: true,
			price:  25,
		},
		{ // zero is a valid price
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id},
			sender: alice,
			listed: true,
		},
		{
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id, Price: 99, Delist: true},
			sender: alice,
		},
		{ // delisting twice is fine
			utx:    &SellTx{BaseTx: &BaseTx{}, AssetID: id, Delist: true},
			sender: alice,
		},
	}
	for i, tv := range tt {
		c := newTestContext(db, g, tv.sender, 0)
		c.Height = uint64(10 + i)
		err := tv.utx.Execute(c)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
		events, err := GetEvents(db, c.Height, c.Height)
		if err != nil {
			t.Fatal(err)
		}
		if tv.err != nil {
			if len(events) != 0 {
				t.Fatalf("#%d: failed tx emitted %d events", i, len(events))
			}
			continue
		}

		l, exists, err := GetListing(db, id)
		if err != nil {
			t.Fatal(err)
		}
		if exists != tv.listed {
			t.Fatalf("#%d: listed expected %t, got %t", i, tv.listed, exists)
		}
		if exists && l.Price != tv.price {
			t.Fatalf("#%d: price expected %d, got %d", i, tv.price, l.Price)
		}

		if len(events) != 1 {
			t.Fatalf("#%d: events expected 1, got %d", i, len(events))
		}
		e, ok := events[0].Event.(*AssetListed)
		if !ok {
			t.Fatalf("#%d: unexpected event %T", i, events[0].Event)
		}
		if e.Owner != alice || e.AssetID != id || e.Listed != tv.listed || e.Price != tv.price {
			t.Fatalf("#%d: unexpected event %+v", i, e)
		}
	}
}
