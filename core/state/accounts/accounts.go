package accounts

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/TodoChain/todos-go-node/core/state/bus"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = byte('a')

type RAccounts interface {
	Export(state *types.AppState)
	GetAccount(address types.Address) *Model
	GetNonce(address types.Address) uint64
	GetBalance(address types.Address) *big.Int
	Exists(address types.Address) bool
}

type Accounts struct {
	list  map[types.Address]*Model
	dirty map[types.Address]struct{}

	db  atomic.Value
	bus *bus.Bus

	lock sync.RWMutex
}

func NewAccounts(stateBus *bus.Bus, db *iavl.ImmutableTree) *Accounts {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}
	accounts := &Accounts{db: immutableTree, bus: stateBus, list: map[types.Address]*Model{}, dirty: map[types.Address]struct{}{}}
	accounts.bus.SetAccounts(NewBus(accounts))

	return accounts
}

func (a *Accounts) immutableTree() *iavl.ImmutableTree {
	db := a.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (a *Accounts) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	a.db.Store(immutableTree)
}

// Commit flushes dirty accounts into the tree. Accounts with no balance and no
// nonce are reclaimed: the record is removed and the address becomes
// indistinguishable from one that never existed.
func (a *Accounts) Commit(db *iavl.MutableTree, version int64) error {
	accounts := a.getOrderedDirtyAccounts()
	for _, address := range accounts {
		account := a.getFromMap(address)
		a.lock.Lock()
		delete(a.dirty, address)
		a.lock.Unlock()

		path := append([]byte{mainPrefix}, address[:]...)

		if account.isReclaimable() {
			db.Remove(path)
			a.lock.Lock()
			delete(a.list, address)
			a.lock.Unlock()
			continue
		}

		account.lock.Lock()
		account.isDirty = false
		account.isNew = false
		data, err := rlp.EncodeToBytes(account)
		account.lock.Unlock()
		if err != nil {
			return fmt.Errorf("can't encode object at %x: %v", address[:], err)
		}

		db.Set(path, data)
	}

	return nil
}

func (a *Accounts) getOrderedDirtyAccounts() []types.Address {
	a.lock.Lock()
	keys := make([]types.Address, 0, len(a.dirty))
	for k := range a.dirty {
		keys = append(keys, k)
	}
	a.lock.Unlock()

	sort.SliceStable(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Bytes(), keys[j].Bytes()) == 1
	})

	return keys
}

// AddBalance adds the given amount to the account's balance
func (a *Accounts) AddBalance(address types.Address, amount *big.Int) {
	balance := a.GetBalance(address)
	a.SetBalance(address, big.NewInt(0).Add(balance, amount))
}

// SubBalance subtracts the given amount from the account's balance
func (a *Accounts) SubBalance(address types.Address, amount *big.Int) {
	balance := big.NewInt(0).Sub(a.GetBalance(address), amount)
	a.SetBalance(address, balance)
}

// SetBalance overwrites the account's balance and records the supply delta
func (a *Accounts) SetBalance(address types.Address, amount *big.Int) {
	account := a.getOrNew(address)
	oldBalance := account.getBalance()
	a.bus.Checker().AddCoin(big.NewInt(0).Sub(amount, oldBalance))

	account.setBalance(amount)
}

// GetBalance returns the balance of the given account
func (a *Accounts) GetBalance(address types.Address) *big.Int {
	account := a.get(address)
	if account == nil {
		return big.NewInt(0)
	}

	return account.getBalance()
}

// GetNonce returns the last used nonce of the given account
func (a *Accounts) GetNonce(address types.Address) uint64 {
	account := a.get(address)
	if account == nil {
		return 0
	}

	return account.GetNonce()
}

// SetNonce sets the last used nonce of the given account
func (a *Accounts) SetNonce(address types.Address, nonce uint64) {
	account := a.getOrNew(address)
	account.setNonce(nonce)
}

// Exists reports whether a record for the given address is present on the ledger
func (a *Accounts) Exists(address types.Address) bool {
	return a.get(address) != nil
}

// GetAccount returns the account model of the given address, or an empty model
// if the address has never been used
func (a *Accounts) GetAccount(address types.Address) *Model {
	return a.getOrNew(address)
}

func (a *Accounts) Export(state *types.AppState) {
	a.immutableTree().IterateRange([]byte{mainPrefix}, []byte{mainPrefix + 1}, true, func(key []byte, value []byte) bool {
		address := types.BytesToAddress(key[1:])

		account := a.get(address)
		if account == nil {
			return false
		}

		state.Accounts = append(state.Accounts, types.Account{
			Address: address,
			Balance: account.getBalance().String(),
			Nonce:   account.GetNonce(),
		})

		return false
	})

	sort.SliceStable(state.Accounts, func(i, j int) bool {
		return bytes.Compare(state.Accounts[i].Address.Bytes(), state.Accounts[j].Address.Bytes()) == 1
	})
}

func (a *Accounts) getOrNew(address types.Address) *Model {
	account := a.get(address)
	if account == nil {
		account = &Model{
			Nonce:     0,
			Balance:   big.NewInt(0),
			address:   address,
			markDirty: a.markDirty,
			isNew:     true,
		}
		a.setToMap(address, account)
	}

	return account
}

func (a *Accounts) get(address types.Address) *Model {
	if account := a.getFromMap(address); account != nil {
		return account
	}

	path := append([]byte{mainPrefix}, address[:]...)
	_, enc := a.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	account := &Model{}
	if err := rlp.DecodeBytes(enc, account); err != nil {
		panic(fmt.Sprintf("failed to decode account at address %s: %s", address.String(), err))
	}

	account.address = address
	account.markDirty = a.markDirty
	a.setToMap(address, account)

	return account
}

func (a *Accounts) getFromMap(address types.Address) *Model {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.list[address]
}

func (a *Accounts) setToMap(address types.Address, model *Model) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.list[address] = model
}

func (a *Accounts) markDirty(address types.Address) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.dirty[address] = struct{}{}
}
