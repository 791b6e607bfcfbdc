// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import (
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Account is the balance record of a single address. Only [Free] can be
// spent or reserved; [Reserved] is held against the address until it is
// unreserved.
type Account struct {
	Free     uint64 `serialize:"true" json:"free"`
	Reserved uint64 `serialize:"true" json:"reserved"`
}

// Total returns Free + Reserved.
func (a *Account) Total() (uint64, error) {
	t, err := smath.Add64(a.Free, a.Reserved)
	if err != nil {
		return 0, ErrOverflow
	}
	return t, nil
}

// IsEmpty is true for accounts that do not exist in state.
func (a *Account) IsEmpty() bool {
	return a.Free == 0 && a.Reserved == 0
}

type Allocation struct {
	Address ids.ShortID `serialize:"true" json:"address"`
	Balance uint64      `serialize:"true" json:"balance"`
}

// ExistenceRequirement controls whether a transfer may drop the sender below
// the existential deposit.
type ExistenceRequirement uint8

const (
	KeepAlive ExistenceRequirement = iota
	AllowDeath
)

func (e ExistenceRequirement) String() string {
	switch e {
	case KeepAlive:
		return "keepAlive"
	case AllowDeath:
		return "allowDeath"
	default:
		return "unknown"
	}
}
