// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm applies asset transactions in a single total order and serves
// the resulting state over JSON-RPC.
package vm

import (
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/balances"
	"github.com/ava-labs/assetvm/chain"
	"github.com/ava-labs/assetvm/mempool"
)

const (
	Name           = "assetvm"
	PublicEndpoint = "/public"
)

type VM struct {
	// [mu] orders every state transition and must be held when touching
	// [db] or [lastAccepted].
	mu sync.RWMutex

	config  Config
	genesis *chain.Genesis
	ledger  *balances.Ledger

	db           database.Database
	lastAccepted *chain.Block

	mempool *mempool.Mempool
	// cache of accepted blocks by id
	blocks *cache.LRU

	activityCache       []*chain.Activity
	activityCacheCursor uint64

	// signals the builder that [mempool] is non-empty
	pending chan struct{}
	builder BlockBuilder
	now     func() time.Time
}

// New returns a VM backed by [db]. Call Initialize before anything else.
func New(db database.Database) *VM {
	return &VM{db: db, now: time.Now}
}

func (vm *VM) Initialize(genesisBytes []byte, config Config) error {
	g, err := chain.ParseGenesis(genesisBytes)
	if err != nil {
		log.Error("unable to parse genesis", "err", err)
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.config = config
	vm.genesis = g
	vm.ledger = g.Ledger()
	vm.mempool = mempool.New(config.MempoolSize)
	vm.blocks = &cache.LRU{Size: config.BlockCacheSize}
	vm.activityCache = make([]*chain.Activity, config.ActivityCacheSize)
	vm.pending = make(chan struct{}, 1)
	vm.builder = vm.NewTimeBuilder()

	has, err := chain.HasLastAccepted(vm.db)
	if err != nil {
		log.Error("could not determine if have last accepted")
		return err
	}
	if has {
		blkID, err := chain.GetLastAccepted(vm.db)
		if err != nil {
			log.Error("could not get last accepted", "err", err)
			return err
		}
		blk, err := vm.getBlock(blkID)
		if err != nil {
			log.Error("could not load last accepted", "err", err)
			return err
		}
		vm.lastAccepted = blk
		log.Info("initialized assetvm from last accepted", "block", blkID, "height", blk.Height())
		return nil
	}

	vdb := versiondb.New(vm.db)
	if err := g.Load(vdb); err != nil {
		log.Error("could not set genesis allocation", "err", err)
		return err
	}
	genesisBlk, err := chain.GenesisBlock()
	if err != nil {
		log.Error("unable to init genesis block", "err", err)
		return err
	}
	if err := chain.SetLastAccepted(vdb, genesisBlk); err != nil {
		log.Error("could not set genesis as last accepted", "err", err)
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}
	vm.lastAccepted = genesisBlk
	vm.blocks.Put(genesisBlk.ID(), genesisBlk)
	log.Info("initialized assetvm from genesis", "block", genesisBlk.ID())
	return nil
}

func (vm *VM) Handlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}

// Submit checks each transaction against the current state and queues the
// ones that would succeed. The returned errors are the ones of the rejected
// transactions.
func (vm *VM) Submit(txs ...*chain.Transaction) (errs []error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	if vm.genesis == nil {
		return []error{ErrNotInitialized}
	}
	bctx := vm.nextContext()
	for _, tx := range txs {
		if err := vm.submit(tx, bctx); err != nil {
			log.Debug("rejected tx", "txId", tx.ID(), "err", err)
			errs = append(errs, err)
		}
	}
	if vm.mempool.Len() > 0 {
		select {
		case vm.pending <- struct{}{}:
		default:
		}
	}
	return errs
}

func (vm *VM) submit(tx *chain.Transaction, bctx *chain.BlockContext) error {
	if tx.UnsignedTransaction == nil {
		return ErrInvalidEmptyTx
	}
	if tx.ID() == ids.Empty {
		if err := tx.Init(); err != nil {
			return err
		}
	}
	if vm.mempool.Has(tx.ID()) {
		return chain.ErrDuplicateTx
	}

	// Dry-run on a layer that is always discarded
	dryRun := versiondb.New(vm.db)
	defer dryRun.Abort()
	if err := tx.Execute(dryRun, bctx, 0); err != nil {
		return err
	}
	if !vm.mempool.Add(tx) {
		return ErrMempoolFull
	}
	return nil
}

// nextContext approximates the context the next block will run with.
func (vm *VM) nextContext() *chain.BlockContext {
	next := &chain.Block{
		Prnt:   vm.lastAccepted.ID(),
		Tmstmp: vm.nextTimestamp(),
		Hght:   vm.lastAccepted.Height() + 1,
	}
	return next.Context(vm.genesis, vm.ledger)
}

func (vm *VM) nextTimestamp() int64 {
	t := vm.now().Unix()
	if t < vm.lastAccepted.Tmstmp {
		t = vm.lastAccepted.Tmstmp
	}
	return t
}

// BuildBlock applies up to [MaxBlockTxs] pending transactions, oldest first,
// as the next block.
func (vm *VM) BuildBlock() (*chain.Block, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.genesis == nil {
		return nil, ErrNotInitialized
	}
	txs := []*chain.Transaction{}
	seqs := []uint64{}
	for uint64(len(txs)) < vm.genesis.MaxBlockTxs {
		tx, seq, ok := vm.mempool.PopMinWithSeq()
		if !ok {
			break
		}
		txs = append(txs, tx)
		seqs = append(seqs, seq)
	}
	if len(txs) == 0 {
		return nil, ErrNoPendingTx
	}

	blk, err := chain.NewBlock(vm.lastAccepted, vm.nextTimestamp(), txs)
	if err != nil {
		vm.requeue(txs, seqs)
		return nil, err
	}
	vdb, results, err := blk.Apply(vm.db, vm.genesis, vm.ledger)
	if err != nil {
		log.Warn("unable to apply block", "err", err)
		vm.requeue(txs, seqs)
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		log.Error("unable to commit block", "id", blk.ID(), "err", err)
		vdb.Abort()
		vm.requeue(txs, seqs)
		return nil, err
	}
	vm.accepted(blk, results)

	// Anything applied through another path must not be applied twice
	if pruned := vm.mempool.Prune(func(txID ids.ID) bool {
		has, err := chain.HasTransaction(vm.db, txID)
		return err == nil && has
	}); pruned > 0 {
		log.Debug("pruned mempool", "txs", pruned)
	}
	return blk, nil
}

// requeue returns popped transactions to the mempool in their original
// arrival order.
func (vm *VM) requeue(txs []*chain.Transaction, seqs []uint64) {
	for i, tx := range txs {
		vm.mempool.AddWithSeq(tx, seqs[i])
	}
}

func (vm *VM) accepted(blk *chain.Block, results []error) {
	vm.blocks.Put(blk.ID(), blk)
	vm.lastAccepted = blk

	failed := 0
	for i, tx := range blk.Txs {
		a := tx.Activity()
		a.Tmstmp = blk.Tmstmp
		if results[i] != nil {
			failed++
			a.Error = results[i].Error()
		}
		vm.addActivity(a)
	}
	log.Info("accepted block", "id", blk.ID(), "height", blk.Height(), "txs", len(blk.Txs), "failed", failed)
}

func (vm *VM) addActivity(a *chain.Activity) {
	if len(vm.activityCache) == 0 {
		return
	}
	vm.activityCache[vm.activityCacheCursor%uint64(len(vm.activityCache))] = a
	vm.activityCacheCursor++
}

// RecentActivity returns the most recent applied transactions, newest
// first.
func (vm *VM) RecentActivity() []*chain.Activity {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	size := uint64(len(vm.activityCache))
	if size == 0 || vm.activityCacheCursor == 0 {
		return nil
	}
	n := vm.activityCacheCursor
	if n > size {
		n = size
	}
	activity := make([]*chain.Activity, 0, n)
	for i := uint64(1); i <= n; i++ {
		activity = append(activity, vm.activityCache[(vm.activityCacheCursor-i)%size])
	}
	return activity
}

// GetBlock returns an accepted block.
func (vm *VM) GetBlock(blkID ids.ID) (*chain.Block, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	return vm.getBlock(blkID)
}

func (vm *VM) getBlock(blkID ids.ID) (*chain.Block, error) {
	if blk, ok := vm.blocks.Get(blkID); ok {
		return blk.(*chain.Block), nil
	}
	source, err := chain.GetBlock(vm.db, blkID)
	if err != nil {
		return nil, err
	}
	blk, err := chain.ParseBlock(source)
	if err != nil {
		return nil, err
	}
	vm.blocks.Put(blkID, blk)
	return blk, nil
}

func (vm *VM) Shutdown() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.db == nil {
		return nil
	}
	return vm.db.Close()
}
