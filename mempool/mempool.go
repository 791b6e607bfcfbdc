// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mempool

import (
	"container/heap"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/chain"
)

// Mempool holds signed transactions waiting to be applied, oldest first.
// When full, the most recent arrival is dropped so that transactions that
// were accepted earlier keep their place in line.
type Mempool struct {
	mu sync.RWMutex

	maxSize int
	seq     uint64
	// newest arrival on top
	maxHeap *internalTxHeap
	// oldest arrival on top
	minHeap *internalTxHeap
}

// New creates a new [Mempool]. [maxSize] must be > 0.
func New(maxSize int) *Mempool {
	return &Mempool{
		maxSize: maxSize,
		maxHeap: newInternalTxHeap(maxSize, false),
		minHeap: newInternalTxHeap(maxSize, true),
	}
}

// Add returns true if [tx] is pending after the call.
func (th *Mempool) Add(tx *chain.Transaction) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	// Don't add duplicates
	if th.has(tx.ID()) {
		return false
	}
	th.seq++
	return th.add(tx, th.seq)
}

// AddWithSeq puts back a transaction previously taken with PopMinWithSeq so
// that it keeps its place relative to the other pending transactions.
func (th *Mempool) AddWithSeq(tx *chain.Transaction, seq uint64) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.has(tx.ID()) {
		return false
	}
	if seq > th.seq {
		th.seq = seq
	}
	return th.add(tx, seq)
}

func (th *Mempool) add(tx *chain.Transaction, seq uint64) bool {
	txID := tx.ID()
	heap.Push(th.maxHeap, &txEntry{
		id:  txID,
		tx:  tx,
		seq: seq,
	})
	heap.Push(th.minHeap, &txEntry{
		id:  txID,
		tx:  tx,
		seq: seq,
	})
	if th.maxHeap.Len() > th.maxSize {
		evicted := th.remove(th.maxHeap.items[0].id)
		log.Debug("mempool full", "evicted", evicted.ID())
		return evicted.ID() != txID
	}
	return true
}

// PeekMin returns the oldest pending transaction, if any.
func (th *Mempool) PeekMin() (*chain.Transaction, bool) {
	th.mu.RLock()
	defer th.mu.RUnlock()

	if th.minHeap.Len() == 0 {
		return nil, false
	}
	return th.minHeap.items[0].tx, true
}

// PopMin removes and returns the oldest pending transaction, if any.
func (th *Mempool) PopMin() (*chain.Transaction, bool) {
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.minHeap.Len() == 0 {
		return nil, false
	}
	return th.remove(th.minHeap.items[0].id), true
}

// PopMinWithSeq is PopMin that also returns the arrival sequence of the
// transaction, for use with AddWithSeq.
func (th *Mempool) PopMinWithSeq() (*chain.Transaction, uint64, bool) {
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.minHeap.Len() == 0 {
		return nil, 0, false
	}
	entry := th.minHeap.items[0]
	th.remove(entry.id)
	return entry.tx, entry.seq, true
}

// PopMax removes and returns the newest pending transaction, if any.
func (th *Mempool) PopMax() (*chain.Transaction, bool) {
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.maxHeap.Len() == 0 {
		return nil, false
	}
	return th.remove(th.maxHeap.items[0].id), true
}

func (th *Mempool) Remove(id ids.ID) *chain.Transaction {
	th.mu.Lock()
	defer th.mu.Unlock()

	return th.remove(id)
}

func (th *Mempool) remove(id ids.ID) *chain.Transaction {
	maxEntry, ok := th.maxHeap.Get(id)
	if !ok {
		return nil
	}
	heap.Remove(th.maxHeap, maxEntry.index)

	minEntry, ok := th.minHeap.Get(id)
	if !ok {
		// This should never happen, as that would mean the heaps are out of
		// sync.
		return nil
	}
	return heap.Remove(th.minHeap, minEntry.index).(*txEntry).tx
}

// Prune drops every pending transaction [applied] reports as already
// executed.
func (th *Mempool) Prune(applied func(ids.ID) bool) int {
	th.mu.Lock()
	defer th.mu.Unlock()

	toRemove := []ids.ID{}
	for _, txE := range th.maxHeap.items {
		if applied(txE.id) {
			toRemove = append(toRemove, txE.id)
		}
	}
	for _, txID := range toRemove {
		th.remove(txID)
	}
	return len(toRemove)
}

func (th *Mempool) Len() int {
	th.mu.RLock()
	defer th.mu.RUnlock()

	return th.maxHeap.Len()
}

func (th *Mempool) Get(id ids.ID) (*chain.Transaction, bool) {
	th.mu.RLock()
	defer th.mu.RUnlock()

	txEntry, ok := th.maxHeap.Get(id)
	if !ok {
		return nil, false
	}
	return txEntry.tx, true
}

func (th *Mempool) Has(id ids.ID) bool {
	th.mu.RLock()
	defer th.mu.RUnlock()

	return th.has(id)
}

func (th *Mempool) has(id ids.ID) bool {
	return th.maxHeap.Has(id)
}
