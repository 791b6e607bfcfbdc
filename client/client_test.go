// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/vm"
)

func TestClient(t *testing.T) {
	f := &crypto.FactorySECP256K1R{}
	sellerKey, err := f.NewPrivateKey()
	require.NoError(t, err)
	buyerKey, err := f.NewPrivateKey()
	require.NoError(t, err)
	seller, buyer := sellerKey.PublicKey().Address(), buyerKey.PublicKey().Address()

	g := chain.DefaultGenesis()
	g.Allocations = []*balances.Allocation{
		{Address: seller, Balance: 1000},
		{Address: buyer, Balance: 10000},
	}
	genesisBytes, err := json.Marshal(g)
	require.NoError(t, err)

	var cfg vm.Config
	cfg.SetDefaults()
	cfg.BuildInterval = 10 * time.Millisecond
	instance := vm.New(memdb.New())
	require.NoError(t, instance.Initialize(genesisBytes, cfg))

	handlers, err := instance.Handlers()
	require.NoError(t, err)
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(endpoint, h)
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = instance.Run(ctx)
	}()

	cli := New(srv.URL, 5*time.Second)
	cli.(*client).pollInterval = 20 * time.Millisecond

	ok, err := cli.Ping()
	require.NoError(t, err)
	assert.True(t, ok)

	rg, err := cli.Genesis()
	require.NoError(t, err)
	assert.Equal(t, g.StakePerAsset, rg.StakePerAsset)
	require.Len(t, rg.Allocations, 2)
	assert.Equal(t, seller, rg.Allocations[0].Address)

	pollCtx, pollCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pollCancel()

	_, err = SignIssueTx(pollCtx, cli, &chain.CreateTx{BaseTx: &chain.BaseTx{}}, sellerKey, WithPollTx())
	require.NoError(t, err)
	_, err = SignIssueTx(pollCtx, cli, &chain.SellTx{BaseTx: &chain.BaseTx{}, AssetID: 0, Price: 100}, sellerKey, WithPollTx(), WithInfo(0))
	require.NoError(t, err)

	price, listed, err := cli.Listing(0)
	require.NoError(t, err)
	assert.True(t, listed)
	assert.Equal(t, uint64(100), price)

	// rejected synchronously
	_, err = SignIssueTx(pollCtx, cli, &chain.BuyTx{BaseTx: &chain.BaseTx{}, AssetID: 0}, sellerKey)
	assert.Error(t, err)

	_, err = SignIssueTx(pollCtx, cli, &chain.BuyTx{BaseTx: &chain.BaseTx{}, AssetID: 0}, buyerKey, WithPollTx())
	require.NoError(t, err)

	owner, exists, err := cli.Owner(0)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, buyer, owner)

	owned, err := cli.OwnedAssets(buyer)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, owned)

	count, err := cli.AssetCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	acct, err := cli.Balance(buyer)
	require.NoError(t, err)
	assert.Equal(t, uint64(10000-150), acct.Free)
	assert.Equal(t, uint64(50), acct.Reserved)

	_, height, err := cli.Accepted()
	require.NoError(t, err)
	events, err := cli.Events(1, height)
	require.NoError(t, err)
	require.Len(t, events, 3)
	traded, ok := events[2].Event.(*chain.AssetTraded)
	require.True(t, ok)
	assert.Equal(t, buyer, traded.Buyer)
	assert.Equal(t, seller, traded.Seller)

	activity, err := cli.RecentActivity()
	require.NoError(t, err)
	require.Len(t, activity, 3)
	assert.Equal(t, chain.Buy, activity[0].Typ)
}
