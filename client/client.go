// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "assetvm" client SDK.
package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/fatih/color"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/vm"
)

// Client defines assetvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)

	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)
	// Accepted fetches the ID and height of the last accepted block.
	Accepted() (ids.ID, uint64, error)

	// Returns the number of assets ever minted.
	AssetCount() (uint64, error)
	// Returns the asset with its owner and listing.
	Asset(id uint64) (*vm.AssetReply, error)
	// Returns the owner of an asset.
	Owner(id uint64) (owner ids.ShortID, exists bool, err error)
	// Returns the asking price of an asset.
	Listing(id uint64) (price uint64, listed bool, err error)
	// Returns the assets held by an address.
	OwnedAssets(addr ids.ShortID) ([]uint64, error)
	// Balance returns the free and reserved balance of an account
	Balance(addr ids.ShortID) (*balances.Account, error)
	// Events returns the events emitted between two heights, inclusive.
	Events(start uint64, end uint64) ([]*Event, error)
	// Returns the most recently applied transactions.
	RecentActivity() ([]*chain.Activity, error)

	// Issues the transaction and returns the transaction ID.
	IssueTx(d []byte) (ids.ID, error)
	// Returns the outcome of a transaction, or pending if it is queued.
	TxStatus(id ids.ID) (pending bool, status *chain.TxStatus, err error)
	// Polls the transaction until it is applied.
	PollTx(ctx context.Context, txID ids.ID) (*chain.TxStatus, error)
}

// Event is a decoded event record.
type Event struct {
	Height  uint64
	TxID    ids.ID
	TxIndex uint32
	Event   chain.Event
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req, pollInterval: time.Second}
}

type client struct {
	req          rpc.EndpointRequester
	pollInterval time.Duration
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Accepted() (ids.ID, uint64, error) {
	resp := new(vm.LastAcceptedReply)
	if err := cli.req.SendRequest(
		"lastAccepted",
		nil,
		resp,
	); err != nil {
		color.Red("failed to get curr block %v", err)
		return ids.ID{}, 0, err
	}
	return resp.BlockID, resp.Height, nil
}

func (cli *client) AssetCount() (uint64, error) {
	resp := new(vm.AssetCountReply)
	if err := cli.req.SendRequest(
		"assetCount",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (cli *client) Asset(id uint64) (*vm.AssetReply, error) {
	resp := new(vm.AssetReply)
	if err := cli.req.SendRequest(
		"asset",
		&vm.AssetArgs{AssetID: id},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Owner(id uint64) (ids.ShortID, bool, error) {
	resp := new(vm.OwnerReply)
	if err := cli.req.SendRequest(
		"owner",
		&vm.AssetArgs{AssetID: id},
		resp,
	); err != nil {
		return ids.ShortEmpty, false, err
	}
	return resp.Owner, resp.Exists, nil
}

func (cli *client) Listing(id uint64) (uint64, bool, error) {
	resp := new(vm.ListingReply)
	if err := cli.req.SendRequest(
		"listing",
		&vm.AssetArgs{AssetID: id},
		resp,
	); err != nil {
		return 0, false, err
	}
	return resp.Price, resp.Listed, nil
}

func (cli *client) OwnedAssets(addr ids.ShortID) ([]uint64, error) {
	resp := new(vm.OwnedAssetsReply)
	if err := cli.req.SendRequest(
		"ownedAssets",
		&vm.AddressArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Assets, nil
}

func (cli *client) Balance(addr ids.ShortID) (*balances.Account, error) {
	resp := new(vm.BalanceReply)
	if err := cli.req.SendRequest(
		"balance",
		&vm.AddressArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (cli *client) Events(start uint64, end uint64) ([]*Event, error) {
	resp := new(vm.EventsReply)
	if err := cli.req.SendRequest(
		"events",
		&vm.EventsArgs{Start: start, End: end},
		resp,
	); err != nil {
		return nil, err
	}
	events := make([]*Event, len(resp.Events))
	for i, v := range resp.Events {
		e, err := chain.NewEvent(v.Type)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(v.Event, e); err != nil {
			return nil, err
		}
		events[i] = &Event{
			Height:  v.Height,
			TxID:    v.TxID,
			TxIndex: v.TxIndex,
			Event:   e,
		}
	}
	return events, nil
}

func (cli *client) RecentActivity() ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, error) {
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&vm.IssueTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) TxStatus(txID ids.ID) (bool, *chain.TxStatus, error) {
	resp := new(vm.TxStatusReply)
	if err := cli.req.SendRequest(
		"txStatus",
		&vm.TxStatusArgs{TxID: txID},
		resp,
	); err != nil {
		return false, nil, err
	}
	return resp.Pending, resp.Status, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (*chain.TxStatus, error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(cli.pollInterval):
		case <-ctx.Done():
			break done
		}

		pending, status, err := cli.TxStatus(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if status != nil {
			return status, nil
		}
		if !pending {
			// neither queued nor applied, so it was dropped
			return nil, ErrTxNotApplied
		}
	}
	return nil, ctx.Err()
}

type Op struct {
	pollTx  bool
	assetID *uint64
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// Prints out asset information once the transaction is applied.
func WithInfo(assetID uint64) OpOption {
	return func(op *Op) { op.assetID = &assetID }
}
