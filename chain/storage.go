// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

// 0x0/ (asset counter)
//   -> next asset id
// 0x1/ (assets)
//   -> [id] => Asset
// 0x2/ (owners)
//   -> [id] => owner
// 0x3/ (listings)
//   -> [id] => Listing
// 0x4/ (owned index)
//   -> [owner]/[id]
// 0x5/ (events)
//   -> [height][txIndex][n] => EventRecord
// 0x6/ (tx status)
//   -> [txID] => TxStatus
// 0x7/ (blocks)
//   -> [blockID] => Block
// 0x8/ (accounts, see balances)

const (
	counterPrefix = 0x0
	assetPrefix   = 0x1
	ownerPrefix   = 0x2
	listingPrefix = 0x3
	ownedPrefix   = 0x4
	eventPrefix   = 0x5
	txPrefix      = 0x6
	blockPrefix   = 0x7

	ByteDelimiter byte = '/'

	assetIDLen = 8
	heightLen  = 8
	txIndexLen = 4
	eventNLen  = 2
)

var lastAccepted = []byte("last_accepted")

func prefixedKey(pfx byte, k []byte) []byte {
	b := make([]byte, 2+len(k))
	b[0] = pfx
	b[1] = ByteDelimiter
	copy(b[2:], k)
	return b
}

func packAssetID(id uint64) []byte {
	b := make([]byte, assetIDLen)
	binary.BigEndian.PutUint64(b, id)
	return b
}

func CounterKey() []byte {
	return []byte{counterPrefix, ByteDelimiter}
}

func AssetKey(id uint64) []byte {
	return prefixedKey(assetPrefix, packAssetID(id))
}

func OwnerKey(id uint64) []byte {
	return prefixedKey(ownerPrefix, packAssetID(id))
}

func ListingKey(id uint64) []byte {
	return prefixedKey(listingPrefix, packAssetID(id))
}

// OwnedPrefix is the iteration prefix for every asset held by [owner].
func OwnedPrefix(owner ids.ShortID) []byte {
	k := prefixedKey(ownedPrefix, owner[:])
	return append(k, ByteDelimiter)
}

func OwnedKey(owner ids.ShortID, id uint64) []byte {
	return append(OwnedPrefix(owner), packAssetID(id)...)
}

func extractOwnedKey(k []byte) (uint64, error) {
	if len(k) != 2+len(ids.ShortID{})+1+assetIDLen {
		return 0, ErrInvalidKeyFormat
	}
	return binary.BigEndian.Uint64(k[len(k)-assetIDLen:]), nil
}

// HeightPrefix is the iteration prefix for every event emitted at [height].
func HeightPrefix(height uint64) []byte {
	b := make([]byte, heightLen)
	binary.BigEndian.PutUint64(b, height)
	return prefixedKey(eventPrefix, b)
}

func EventKey(height uint64, txIndex uint32, n uint16) []byte {
	b := make([]byte, heightLen+txIndexLen+eventNLen)
	binary.BigEndian.PutUint64(b, height)
	binary.BigEndian.PutUint32(b[heightLen:], txIndex)
	binary.BigEndian.PutUint16(b[heightLen+txIndexLen:], n)
	return prefixedKey(eventPrefix, b)
}

func extractEventHeight(k []byte) (uint64, error) {
	if len(k) != 2+heightLen+txIndexLen+eventNLen {
		return 0, ErrInvalidKeyFormat
	}
	return binary.BigEndian.Uint64(k[2 : 2+heightLen]), nil
}

func PrefixTxKey(txID ids.ID) []byte {
	return prefixedKey(txPrefix, txID[:])
}

func PrefixBlockKey(blockID ids.ID) []byte {
	return prefixedKey(blockPrefix, blockID[:])
}

// GetAssetCount returns the next id to be minted. An unset counter means
// no asset was ever minted.
func GetAssetCount(db database.KeyValueReader) (uint64, error) {
	v, err := db.Get(CounterKey())
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != assetIDLen {
		return 0, ErrCorruption
	}
	return binary.BigEndian.Uint64(v), nil
}

// SetAssetCount overwrites the counter. Used at genesis and in tests.
func SetAssetCount(db database.Database, count uint64) error {
	return db.Put(CounterKey(), packAssetID(count))
}

// nextAssetID returns the id the next mint would receive.
func nextAssetID(db database.KeyValueReader, max uint64) (uint64, error) {
	id, err := GetAssetCount(db)
	if err != nil {
		return 0, err
	}
	// id < max, so id+1 cannot wrap
	if id >= max {
		return 0, ErrCountOverflow
	}
	return id, nil
}

func GetAsset(db database.KeyValueReader, id uint64) (*Asset, bool, error) {
	v, err := db.Get(AssetKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	a := new(Asset)
	if _, err := Unmarshal(v, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func putAsset(db database.Database, a *Asset) error {
	b, err := Marshal(a)
	if err != nil {
		return err
	}
	return db.Put(AssetKey(a.ID), b)
}

func GetOwner(db database.KeyValueReader, id uint64) (ids.ShortID, bool, error) {
	v, err := db.Get(OwnerKey(id))
	if err == database.ErrNotFound {
		return ids.ShortEmpty, false, nil
	}
	if err != nil {
		return ids.ShortEmpty, false, err
	}
	owner, err := ids.ToShortID(v)
	if err != nil {
		return ids.ShortEmpty, false, err
	}
	return owner, true, nil
}

// putOwner sets the owner of [id] and keeps the owned index in sync.
func putOwner(db database.Database, id uint64, owner ids.ShortID) error {
	prev, exists, err := GetOwner(db, id)
	if err != nil {
		return err
	}
	if exists {
		if err := db.Delete(OwnedKey(prev, id)); err != nil {
			return err
		}
	}
	if err := db.Put(OwnerKey(id), owner[:]); err != nil {
		return err
	}
	return db.Put(OwnedKey(owner, id), nil)
}

func GetListing(db database.KeyValueReader, id uint64) (*Listing, bool, error) {
	v, err := db.Get(ListingKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	l := new(Listing)
	if _, err := Unmarshal(v, l); err != nil {
		return nil, false, err
	}
	return l, true, nil
}

func putListing(db database.Database, id uint64, l *Listing) error {
	b, err := Marshal(l)
	if err != nil {
		return err
	}
	return db.Put(ListingKey(id), b)
}

func deleteListing(db database.Database, id uint64) error {
	return db.Delete(ListingKey(id))
}

// GetOwnedAssets returns the ids held by [owner] in ascending order.
func GetOwnedAssets(db database.Iteratee, owner ids.ShortID) ([]uint64, error) {
	cursor := db.NewIteratorWithPrefix(OwnedPrefix(owner))
	defer cursor.Release()

	owned := []uint64{}
	for cursor.Next() {
		id, err := extractOwnedKey(cursor.Key())
		if err != nil {
			return nil, err
		}
		owned = append(owned, id)
	}
	return owned, cursor.Error()
}

func GetTxStatus(db database.KeyValueReader, txID ids.ID) (*TxStatus, bool, error) {
	v, err := db.Get(PrefixTxKey(txID))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	s := new(TxStatus)
	if _, err := Unmarshal(v, s); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func SetTxStatus(db database.Database, txID ids.ID, s *TxStatus) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}
	return db.Put(PrefixTxKey(txID), b)
}

func SetLastAccepted(db database.Database, block *Block) error {
	bid := block.ID()
	if err := db.Put(lastAccepted, bid[:]); err != nil {
		return err
	}
	return db.Put(PrefixBlockKey(bid), block.Bytes())
}

func HasLastAccepted(db database.KeyValueReader) (bool, error) {
	return db.Has(lastAccepted)
}

func GetLastAccepted(db database.KeyValueReader) (ids.ID, error) {
	v, err := db.Get(lastAccepted)
	if err != nil {
		return ids.ID{}, err
	}
	return ids.ToID(v)
}

func GetBlock(db database.KeyValueReader, bid ids.ID) ([]byte, error) {
	return db.Get(PrefixBlockKey(bid))
}
