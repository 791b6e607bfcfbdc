// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
)

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

func (vm *VM) Ledger() *balances.Ledger {
	return vm.ledger
}

func (vm *VM) Pending() int {
	return vm.mempool.Len()
}

func (vm *VM) LastAccepted() *chain.Block {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	return vm.lastAccepted
}

// View runs [f] against the state between two blocks.
func (vm *VM) View(f func(db database.Database) error) error {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	return f(vm.db)
}
