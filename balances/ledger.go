// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balances implements the reservable balance ledger that backs
// asset stakes and payments.
package balances

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/codec"
)

// 0x8/ (accounts)
//   -> [address] => Account
var accountPrefix = []byte{0x8}

// Ledger reads and writes accounts in whatever database it is handed, so
// callers decide the atomicity scope (usually a versiondb layer per tx).
type Ledger struct {
	existentialDeposit uint64
}

func New(existentialDeposit uint64) *Ledger {
	return &Ledger{existentialDeposit: existentialDeposit}
}

func (l *Ledger) ExistentialDeposit() uint64 { return l.existentialDeposit }

func accounts(db database.Database) database.Database {
	return prefixdb.New(accountPrefix, db)
}

func (l *Ledger) Account(db database.Database, addr ids.ShortID) (*Account, error) {
	v, err := accounts(db).Get(addr[:])
	if err == database.ErrNotFound {
		return &Account{}, nil
	}
	if err != nil {
		return nil, err
	}
	a := new(Account)
	if _, err := codec.Unmarshal(v, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (l *Ledger) putAccount(db database.Database, addr ids.ShortID, a *Account) error {
	if a.IsEmpty() {
		return accounts(db).Delete(addr[:])
	}
	b, err := codec.Marshal(a)
	if err != nil {
		return err
	}
	return accounts(db).Put(addr[:], b)
}

func (l *Ledger) FreeBalance(db database.Database, addr ids.ShortID) (uint64, error) {
	a, err := l.Account(db, addr)
	if err != nil {
		return 0, err
	}
	return a.Free, nil
}

// Reserve moves [amount] from free to reserved.
func (l *Ledger) Reserve(db database.Database, addr ids.ShortID, amount uint64) error {
	if amount == 0 {
		return nil
	}
	a, err := l.Account(db, addr)
	if err != nil {
		return err
	}
	free, err := smath.Sub64(a.Free, amount)
	if err != nil {
		return ErrInsufficientBalance
	}
	reserved, err := smath.Add64(a.Reserved, amount)
	if err != nil {
		return ErrOverflow
	}
	a.Free, a.Reserved = free, reserved
	return l.putAccount(db, addr, a)
}

// Unreserve moves up to [amount] from reserved back to free and returns the
// part that could not be unreserved.
func (l *Ledger) Unreserve(db database.Database, addr ids.ShortID, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, nil
	}
	a, err := l.Account(db, addr)
	if err != nil {
		return 0, err
	}
	actual := amount
	if a.Reserved < actual {
		actual = a.Reserved
	}
	if actual == 0 {
		return amount, nil
	}
	// Free + Reserved cannot overflow once stored, so neither can this.
	a.Reserved -= actual
	a.Free += actual
	if err := l.putAccount(db, addr, a); err != nil {
		return 0, err
	}
	return amount - actual, nil
}

// Transfer moves [amount] of free balance from [from] to [to].
func (l *Ledger) Transfer(
	db database.Database,
	from ids.ShortID,
	to ids.ShortID,
	amount uint64,
	req ExistenceRequirement,
) error {
	if amount == 0 || from == to {
		return nil
	}
	src, err := l.Account(db, from)
	if err != nil {
		return err
	}
	dst, err := l.Account(db, to)
	if err != nil {
		return err
	}
	free, err := smath.Sub64(src.Free, amount)
	if err != nil {
		return ErrInsufficientBalance
	}
	src.Free = free
	srcTotal, err := src.Total()
	if err != nil {
		return err
	}
	if req == KeepAlive && srcTotal < l.existentialDeposit {
		return ErrKeepAlive
	}
	if dst.IsEmpty() && amount < l.existentialDeposit {
		return ErrExistentialDeposit
	}
	dstFree, err := smath.Add64(dst.Free, amount)
	if err != nil {
		return ErrOverflow
	}
	dst.Free = dstFree
	if _, err := dst.Total(); err != nil {
		return err
	}
	if srcTotal < l.existentialDeposit {
		// Reap dust left behind by an AllowDeath transfer.
		log.Debug("reaping account", "address", from, "dust", srcTotal)
		src = &Account{}
	}
	if err := l.putAccount(db, from, src); err != nil {
		return err
	}
	return l.putAccount(db, to, dst)
}

// Deposit mints [amount] of free balance into [addr].
func (l *Ledger) Deposit(db database.Database, addr ids.ShortID, amount uint64) error {
	a, err := l.Account(db, addr)
	if err != nil {
		return err
	}
	free, err := smath.Add64(a.Free, amount)
	if err != nil {
		return ErrOverflow
	}
	a.Free = free
	if _, err := a.Total(); err != nil {
		return err
	}
	return l.putAccount(db, addr, a)
}

// Allocate applies genesis allocations.
func (l *Ledger) Allocate(db database.Database, allocs []*Allocation) error {
	for _, alloc := range allocs {
		if err := l.Deposit(db, alloc.Address, alloc.Balance); err != nil {
			return err
		}
		log.Debug("allocated balance", "address", alloc.Address, "balance", alloc.Balance)
	}
	return nil
}
