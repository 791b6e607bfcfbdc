// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient free balance")
	ErrKeepAlive           = errors.New("transfer would kill the sender account")
	ErrExistentialDeposit  = errors.New("value too low to create account")
	ErrOverflow            = errors.New("balance overflow")
)
