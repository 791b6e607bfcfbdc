// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &BreedTx{}

// BreedTx mints a child whose genome mixes the genomes of two existing
// assets. The parents do not need to be owned by the sender.
type BreedTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	ParentA uint64 `serialize:"true" json:"parentA"`
	ParentB uint64 `serialize:"true" json:"parentB"`
}

func (t *BreedTx) Execute(c *TransactionContext) error {
	if t.ParentA == t.ParentB {
		return ErrSameParent
	}
	a, exists, err := GetAsset(c.Database, t.ParentA)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidAssetID
	}
	b, exists, err := GetAsset(c.Database, t.ParentB)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidAssetID
	}
	selector, err := c.freshGenome()
	if err != nil {
		return err
	}
	_, err = mint(c, c.Sender, Crossover(a.Genome, b.Genome, selector))
	return err
}

func (t *BreedTx) Copy() UnsignedTransaction {
	return &BreedTx{
		BaseTx:  t.BaseTx.Copy(),
		ParentA: t.ParentA,
		ParentB: t.ParentB,
	}
}

func (t *BreedTx) Activity() *Activity {
	return &Activity{
		Typ:    Breed,
		Assets: []uint64{t.ParentA, t.ParentB},
	}
}
