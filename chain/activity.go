// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

const (
	Create   = "create"
	Breed    = "breed"
	Sell     = "sell"
	Transfer = "transfer"
	Buy      = "buy"
)

type Activity struct {
	Tmstmp int64    `json:"timestamp"`
	TxID   string   `json:"txId"`
	Sender string   `json:"sender"`
	Typ    string   `json:"type"`
	Assets []uint64 `json:"assets,omitempty"`
	To     string   `json:"to,omitempty"`
	Price  uint64   `json:"price,omitempty"`
	Error  string   `json:"error,omitempty"`
}
