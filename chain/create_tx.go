// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CreateTx{}

// CreateTx mints a new asset with a fresh genome for the sender.
type CreateTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (t *CreateTx) Execute(c *TransactionContext) error {
	genome, err := c.freshGenome()
	if err != nil {
		return err
	}
	_, err = mint(c, c.Sender, genome)
	return err
}

func (t *CreateTx) Copy() UnsignedTransaction {
	return &CreateTx{BaseTx: t.BaseTx.Copy()}
}

func (t *CreateTx) Activity() *Activity {
	return &Activity{Typ: Create}
}
