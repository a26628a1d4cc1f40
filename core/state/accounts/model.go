package accounts

import (
	"math/big"
	"sync"

	"github.com/TodoChain/todos-go-node/core/types"
)

// Model is the in-memory representation of one ledger account: a nonce for
// replay protection and the account's balance in base units. For item accounts
// the balance is the escrowed bounty.
type Model struct {
	Nonce   uint64
	Balance *big.Int

	address types.Address
	isDirty bool
	isNew   bool

	markDirty func(types.Address)
	lock      sync.RWMutex
}

func (model *Model) setNonce(nonce uint64) {
	model.lock.Lock()
	defer model.lock.Unlock()

	model.Nonce = nonce
	model.isDirty = true
	model.markDirty(model.address)
}

func (model *Model) getBalance() *big.Int {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return big.NewInt(0).Set(model.Balance)
}

func (model *Model) setBalance(amount *big.Int) {
	model.lock.Lock()
	defer model.lock.Unlock()

	model.Balance = big.NewInt(0).Set(amount)
	model.isDirty = true
	model.markDirty(model.address)
}

// GetNonce returns used nonce of the account
func (model *Model) GetNonce() uint64 {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.Nonce
}

// GetBalance returns balance of the account
func (model *Model) GetBalance() *big.Int {
	return model.getBalance()
}

func (model *Model) isReclaimable() bool {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.Nonce == 0 && model.Balance.Sign() == 0
}
