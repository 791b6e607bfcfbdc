// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines command-line argument parsing operations.
package parser

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
)

var (
	ErrAssetIDEmpty   = errors.New("asset id cannot be empty")
	ErrInvalidAssetID = errors.New("asset id must be a non-negative integer")
	ErrInvalidPrice   = errors.New("price must be a non-negative integer")
	ErrAddressEmpty   = errors.New("address cannot be empty")
	ErrInvalidAddress = errors.New("address must be cb58 or 0x-prefixed hex of 20 bytes")
	ErrInvalidRange   = errors.New("range start must not exceed its end")
)

// ParseAssetID parses a decimal asset identifier.
func ParseAssetID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrAssetIDEmpty
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAssetID
	}
	return id, nil
}

// ParsePrice parses a decimal price.
func ParsePrice(s string) (uint64, error) {
	p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return p, nil
}

// ParseAddress accepts the cb58 form printed by ids.ShortID or a
// 0x-prefixed hex string.
func ParseAddress(s string) (ids.ShortID, error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 0:
		return ids.ShortEmpty, ErrAddressEmpty
	case strings.HasPrefix(s, "0x"):
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return ids.ShortEmpty, ErrInvalidAddress
		}
		addr, err := ids.ToShortID(b)
		if err != nil {
			return ids.ShortEmpty, ErrInvalidAddress
		}
		return addr, nil
	default:
		addr, err := ids.ShortFromString(s)
		if err != nil {
			return ids.ShortEmpty, ErrInvalidAddress
		}
		return addr, nil
	}
}

// ParseHeightRange reads optional [start] and [end] heights from [args].
// Missing values default to [last].
func ParseHeightRange(args []string, last uint64) (start uint64, end uint64, err error) {
	start, end = last, last
	if len(args) > 0 {
		if start, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 1 {
		if end, err = strconv.ParseUint(args[1], 10, 64); err != nil {
			return 0, 0, err
		}
	}
	if start > end {
		return 0, 0, ErrInvalidRange
	}
	return start, end, nil
}
