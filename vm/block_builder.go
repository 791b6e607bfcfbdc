// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"time"

	log "github.com/inconshreveable/log15"
)

type BlockBuilder interface {
	Build(ctx context.Context)
}

var (
	_ BlockBuilder = (*TimeBuilder)(nil)
	_ BlockBuilder = (*ManualBuilder)(nil)
)

// SetBlockBuilder replaces the builder started by Run.
func (vm *VM) SetBlockBuilder(b BlockBuilder) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.builder = b
}

// Run drives the block builder until [ctx] is done.
func (vm *VM) Run(ctx context.Context) error {
	vm.mu.RLock()
	b := vm.builder
	vm.mu.RUnlock()

	if b == nil {
		return ErrNotInitialized
	}
	b.Build(ctx)
	return nil
}

// TimeBuilder batches pending transactions for [BuildInterval] and then
// builds blocks until the mempool is drained.
type TimeBuilder struct {
	vm *VM
}

func (vm *VM) NewTimeBuilder() *TimeBuilder {
	return &TimeBuilder{vm: vm}
}

func (b *TimeBuilder) Build(ctx context.Context) {
	log.Debug("starting build loop", "interval", b.vm.config.BuildInterval)
	defer log.Debug("stopped build loop")

	for {
		select {
		case <-b.vm.pending:
		case <-ctx.Done():
			return
		}

		select {
		case <-time.After(b.vm.config.BuildInterval):
		case <-ctx.Done():
			return
		}
		for b.needToBuild() {
			if _, err := b.vm.BuildBlock(); err != nil {
				log.Warn("unable to build block", "err", err)
				break
			}
			if ctx.Err() != nil {
				return
			}
		}
	}
}

// needToBuild returns true if there are outstanding transactions to be issued
// into a block.
func (b *TimeBuilder) needToBuild() bool {
	return b.vm.mempool.Len() > 0
}

// ManualBuilder never builds on its own; callers invoke BuildBlock.
type ManualBuilder struct{}

func (vm *VM) NewManualBuilder() *ManualBuilder {
	return &ManualBuilder{}
}

func (b *ManualBuilder) Build(ctx context.Context) {
	<-ctx.Done()
}
