// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	errs := svc.vm.Submit(tx)
	reply.Success = len(errs) == 0
	if reply.Success {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%v", errs)
}

type TxStatusArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type TxStatusReply struct {
	// Pending is true while the transaction waits in the mempool
	Pending bool            `serialize:"true" json:"pending"`
	Status  *chain.TxStatus `serialize:"true" json:"status"`
}

func (svc *PublicService) TxStatus(_ *http.Request, args *TxStatusArgs, reply *TxStatusReply) error {
	return svc.vm.View(func(db database.Database) error {
		status, exists, err := chain.GetTxStatus(db, args.TxID)
		if err != nil {
			return err
		}
		if exists {
			reply.Status = status
			return nil
		}
		reply.Pending = svc.vm.mempool.Has(args.TxID)
		return nil
	})
}

type LastAcceptedReply struct {
	Height  uint64 `serialize:"true" json:"height"`
	BlockID ids.ID `serialize:"true" json:"blockId"`
}

func (svc *PublicService) LastAccepted(_ *http.Request, _ *struct{}, reply *LastAcceptedReply) error {
	la := svc.vm.LastAccepted()
	reply.Height = la.Height()
	reply.BlockID = la.ID()
	return nil
}

type AssetCountReply struct {
	Count uint64 `serialize:"true" json:"count"`
}

func (svc *PublicService) AssetCount(_ *http.Request, _ *struct{}, reply *AssetCountReply) error {
	return svc.vm.View(func(db database.Database) (err error) {
		reply.Count, err = chain.GetAssetCount(db)
		return err
	})
}

type AssetArgs struct {
	AssetID uint64 `serialize:"true" json:"assetId"`
}

type AssetReply struct {
	Exists bool         `serialize:"true" json:"exists"`
	Asset  *chain.Asset `serialize:"true" json:"asset"`
	Owner  ids.ShortID  `serialize:"true" json:"owner"`
	Price  uint64       `serialize:"true" json:"price"`
	Listed bool         `serialize:"true" json:"listed"`
}

// Asset returns the genome, owner, and listing of an asset at once.
func (svc *PublicService) Asset(_ *http.Request, args *AssetArgs, reply *AssetReply) error {
	return svc.vm.View(func(db database.Database) error {
		asset, exists, err := chain.GetAsset(db, args.AssetID)
		if err != nil || !exists {
			return err
		}
		owner, _, err := chain.GetOwner(db, args.AssetID)
		if err != nil {
			return err
		}
		listing, listed, err := chain.GetListing(db, args.AssetID)
		if err != nil {
			return err
		}
		reply.Exists = true
		reply.Asset = asset
		reply.Owner = owner
		reply.Listed = listed
		if listed {
			reply.Price = listing.Price
		}
		return nil
	})
}

type OwnerReply struct {
	Exists bool        `serialize:"true" json:"exists"`
	Owner  ids.ShortID `serialize:"true" json:"owner"`
}

func (svc *PublicService) Owner(_ *http.Request, args *AssetArgs, reply *OwnerReply) error {
	return svc.vm.View(func(db database.Database) (err error) {
		reply.Owner, reply.Exists, err = chain.GetOwner(db, args.AssetID)
		return err
	})
}

type ListingReply struct {
	Listed bool   `serialize:"true" json:"listed"`
	Price  uint64 `serialize:"true" json:"price"`
}

func (svc *PublicService) Listing(_ *http.Request, args *AssetArgs, reply *ListingReply) error {
	return svc.vm.View(func(db database.Database) error {
		l, listed, err := chain.GetListing(db, args.AssetID)
		if err != nil {
			return err
		}
		reply.Listed = listed
		if listed {
			reply.Price = l.Price
		}
		return nil
	})
}

type AddressArgs struct {
	Address ids.ShortID `serialize:"true" json:"address"`
}

type OwnedAssetsReply struct {
	Assets []uint64 `serialize:"true" json:"assets"`
}

func (svc *PublicService) OwnedAssets(_ *http.Request, args *AddressArgs, reply *OwnedAssetsReply) error {
	return svc.vm.View(func(db database.Database) (err error) {
		reply.Assets, err = chain.GetOwnedAssets(db, args.Address)
		return err
	})
}

type BalanceReply struct {
	Account *balances.Account `serialize:"true" json:"account"`
}

func (svc *PublicService) Balance(_ *http.Request, args *AddressArgs, reply *BalanceReply) error {
	return svc.vm.View(func(db database.Database) (err error) {
		reply.Account, err = svc.vm.ledger.Account(db, args.Address)
		return err
	})
}

type EventsArgs struct {
	Start uint64 `serialize:"true" json:"start"`
	End   uint64 `serialize:"true" json:"end"`
}

type EventsReply struct {
	Events []*EventView `json:"events"`
}

// EventView carries an event next to its type so that it can be decoded
// with chain.NewEvent.
type EventView struct {
	Height  uint64          `json:"height"`
	TxID    ids.ID          `json:"txId"`
	TxIndex uint32          `json:"txIndex"`
	Type    string          `json:"type"`
	Event   json.RawMessage `json:"event"`
}

func (svc *PublicService) Events(_ *http.Request, args *EventsArgs, reply *EventsReply) error {
	if args.Start > args.End {
		return ErrInvalidEventRange
	}
	// End-Start cannot overflow once Start <= End
	if args.End-args.Start >= svc.vm.config.MaxEventRange {
		return fmt.Errorf("%w: [%d, %d] spans more than %d heights", ErrEventRangeTooLarge, args.Start, args.End, svc.vm.config.MaxEventRange)
	}
	return svc.vm.View(func(db database.Database) error {
		records, err := chain.GetEvents(db, args.Start, args.End)
		if err != nil {
			return err
		}
		reply.Events = make([]*EventView, len(records))
		for i, r := range records {
			b, err := json.Marshal(r.Event)
			if err != nil {
				return err
			}
			reply.Events[i] = &EventView{
				Height:  r.Height,
				TxID:    r.TxID,
				TxIndex: r.TxIndex,
				Type:    r.Event.Type(),
				Event:   b,
			}
		}
		return nil
	})
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.RecentActivity()
	return nil
}
