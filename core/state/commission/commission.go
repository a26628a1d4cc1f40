package commission

import (
	"sync"
	"sync/atomic"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/helpers"
	"github.com/cosmos/iavl"
)

const mainPrefix = byte('p')

type RCommission interface {
	Export(state *types.AppState)
	GetCommissions() *Price
}

type Commission struct {
	currentPrice *Price
	dirtyCurrent bool

	db   atomic.Value
	lock sync.RWMutex
}

func NewCommission(db *iavl.ImmutableTree) *Commission {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}
	return &Commission{
		db: immutableTree,
	}
}

func (c *Commission) immutableTree() *iavl.ImmutableTree {
	db := c.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (c *Commission) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	c.db.Store(immutableTree)
}

func (c *Commission) Export(state *types.AppState) {
	current := c.GetCommissions()
	state.Commission = types.Price{
		PayloadByte: current.PayloadByte.String(),
		NewList:     current.NewList.String(),
		AddItem:     current.AddItem.String(),
		CancelItem:  current.CancelItem.String(),
		FinishItem:  current.FinishItem.String(),
	}
}

func (c *Commission) Import(commission types.Price) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.dirtyCurrent = true
	c.currentPrice = &Price{
		PayloadByte: helpers.StringToBigInt(commission.PayloadByte),
		NewList:     helpers.StringToBigInt(commission.NewList),
		AddItem:     helpers.StringToBigInt(commission.AddItem),
		CancelItem:  helpers.StringToBigInt(commission.CancelItem),
		FinishItem:  helpers.StringToBigInt(commission.FinishItem),
	}
}

func (c *Commission) GetCommissions() *Price {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.currentPrice != nil {
		return c.currentPrice
	}
	_, value := c.immutableTree().Get([]byte{mainPrefix})
	if len(value) == 0 {
		c.currentPrice = DefaultPrice()
		return c.currentPrice
	}
	c.currentPrice = Decode(value)
	return c.currentPrice
}

func (c *Commission) Commit(db *iavl.MutableTree, version int64) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.dirtyCurrent {
		c.dirtyCurrent = false
		db.Set([]byte{mainPrefix}, c.currentPrice.Encode())
	}

	return nil
}
