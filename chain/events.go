// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

const (
	Created     = "assetCreated"
	Transferred = "assetTransferred"
	Listed      = "assetListed"
	Traded      = "assetTraded"
)

// Event is emitted once by every successful state transition.
type Event interface {
	Type() string
}

var (
	_ Event = &AssetCreated{}
	_ Event = &AssetTransferred{}
	_ Event = &AssetListed{}
	_ Event = &AssetTraded{}
)

type AssetCreated struct {
	Owner   ids.ShortID `serialize:"true" json:"owner"`
	AssetID uint64      `serialize:"true" json:"assetId"`
}

func (*AssetCreated) Type() string { return Created }

type AssetTransferred struct {
	From    ids.ShortID `serialize:"true" json:"from"`
	To      ids.ShortID `serialize:"true" json:"to"`
	AssetID uint64      `serialize:"true" json:"assetId"`
}

func (*AssetTransferred) Type() string { return Transferred }

type AssetListed struct {
	Owner   ids.ShortID `serialize:"true" json:"owner"`
	AssetID uint64      `serialize:"true" json:"assetId"`
	// Price is only meaningful when Listed is true; an unlisted event
	// records a delisting.
	Price  uint64 `serialize:"true" json:"price"`
	Listed bool   `serialize:"true" json:"listed"`
}

func (*AssetListed) Type() string { return Listed }

type AssetTraded struct {
	Buyer   ids.ShortID `serialize:"true" json:"buyer"`
	Seller  ids.ShortID `serialize:"true" json:"seller"`
	AssetID uint64      `serialize:"true" json:"assetId"`
}

func (*AssetTraded) Type() string { return Traded }

// NewEvent returns an empty event of type [typ], ready to be decoded into.
func NewEvent(typ string) (Event, error) {
	switch typ {
	case Created:
		return &AssetCreated{}, nil
	case Transferred:
		return &AssetTransferred{}, nil
	case Listed:
		return &AssetListed{}, nil
	case Traded:
		return &AssetTraded{}, nil
	default:
		return nil, ErrInvalidType
	}
}

type EventRecord struct {
	Height  uint64 `serialize:"true" json:"height"`
	TxID    ids.ID `serialize:"true" json:"txId"`
	TxIndex uint32 `serialize:"true" json:"txIndex"`
	Event   Event  `serialize:"true" json:"event"`
}

func putEvent(db database.Database, key []byte, r *EventRecord) error {
	b, err := Marshal(r)
	if err != nil {
		return err
	}
	return db.Put(key, b)
}

// GetEvents returns every event emitted at heights [start, end], in
// emission order. It walks a single cursor over the event prefix, so the
// cost depends on the number of stored events and not on the width of the
// range.
func GetEvents(db database.Iteratee, start uint64, end uint64) ([]*EventRecord, error) {
	records := []*EventRecord{}
	if start > end {
		return records, nil
	}
	cursor := db.NewIteratorWithStartAndPrefix(HeightPrefix(start), []byte{eventPrefix, ByteDelimiter})
	defer cursor.Release()

	for cursor.Next() {
		h, err := extractEventHeight(cursor.Key())
		if err != nil {
			return nil, err
		}
		if h > end {
			break
		}
		r := new(EventRecord)
		if _, err := Unmarshal(cursor.Value(), r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, cursor.Error()
}
