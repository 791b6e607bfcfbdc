// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
)

func TestParseAssetID(t *testing.T) {
	t.Parallel()

	tt := []struct {
		s   string
		id  uint64
		err error
	}{
		{s: "0", id: 0},
		{s: " 42 ", id: 42},
		{s: "18446744073709551615", id: 18446744073709551615},
		{s: "", err: ErrAssetIDEmpty},
		{s: "-1", err: ErrInvalidAssetID},
		{s: "18446744073709551616", err: ErrInvalidAssetID},
		{s: "abc", err: ErrInvalidAssetID},
	}
	for i, tv := range tt {
		id, err := ParseAssetID(tv.s)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if tv.err == nil && id != tv.id {
			t.Fatalf("#%d: id expected %d, got %d", i, tv.id, id)
		}
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	if p, err := ParsePrice("100"); err != nil || p != 100 {
		t.Fatalf("unexpected price %d (%v)", p, err)
	}
	if _, err := ParsePrice("1.5"); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("err expected %v, got %v", ErrInvalidPrice, err)
	}
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	addr := ids.ShortID{0xde, 0xad, 0xbe, 0xef}
	tt := []struct {
		s    string
		addr ids.ShortID
		err  error
	}{
		{s: addr.String(), addr: addr},
		{s: "0xdeadbeef00000000000000000000000000000000", addr: addr},
		{s: "", err: ErrAddressEmpty},
		{s: "0xdeadbeef", err: ErrInvalidAddress},
		{s: "0xzz", err: ErrInvalidAddress},
		{s: "not-an-address", err: ErrInvalidAddress},
	}
	for i, tv := range tt {
		parsed, err := ParseAddress(tv.s)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if parsed != tv.addr {
			t.Fatalf("#%d: address expected %s, got %s", i, tv.addr, parsed)
		}
	}
}

func TestParseHeightRange(t *testing.T) {
	t.Parallel()

	tt := []struct {
		args  []string
		start uint64
		end   uint64
		err   bool
	}{
		{args: nil, start: 7, end: 7},
		{args: []string{"2"}, start: 2, end: 7},
		{args: []string{"2", "3"}, start: 2, end: 3},
		{args: []string{"9"}, err: true},
		{args: []string{"x"}, err: true},
	}
	for i, tv := range tt {
		start, end, err := ParseHeightRange(tv.args, 7)
		if (err != nil) != tv.err {
			t.Fatalf("#%d: unexpected err %v", i, err)
		}
		if tv.err {
			continue
		}
		if start != tv.start || end != tv.end {
			t.Fatalf("#%d: range expected [%d, %d], got [%d, %d]", i, tv.start, tv.end, start, end)
		}
	}
}
