package checker

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/TodoChain/todos-go-node/core/state/bus"
)

// Checker accumulates the net effect of all balance and supply mutations since
// the last reset. Balance moves inside the ledger must net out against supply
// changes, otherwise a handler created or destroyed coins.
type Checker struct {
	delta       *big.Int
	volumeDelta *big.Int

	lock sync.RWMutex
}

func NewChecker(bus *bus.Bus) *Checker {
	checker := &Checker{
		delta:       big.NewInt(0),
		volumeDelta: big.NewInt(0),
	}
	bus.SetChecker(checker)

	return checker
}

func (c *Checker) AddCoin(value *big.Int, _ ...string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.delta.Add(c.delta, value)
}

func (c *Checker) AddCoinVolume(value *big.Int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.volumeDelta.Add(c.volumeDelta, value)
}

// Reset resets checker coin data
func (c *Checker) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.delta = big.NewInt(0)
	c.volumeDelta = big.NewInt(0)
}

// RemoveBaseCoin clears the accumulated balance delta, used after genesis import
func (c *Checker) RemoveBaseCoin() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.delta = big.NewInt(0)
}

func (c *Checker) Check() error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.delta.Cmp(c.volumeDelta) != 0 {
		return fmt.Errorf("invariants error: %s", big.NewInt(0).Sub(c.volumeDelta, c.delta).String())
	}

	return nil
}
