package lists

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/TodoChain/todos-go-node/core/state/bus"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = byte('l')

type RLists interface {
	Get(address types.Address) *Model
	Exists(address types.Address) bool
	Export(state *types.AppState)
}

type Lists struct {
	list  map[types.Address]*Model
	dirty map[types.Address]struct{}

	db atomic.Value

	bus *bus.Bus

	lock sync.RWMutex
}

func NewLists(stateBus *bus.Bus, db *iavl.ImmutableTree) *Lists {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}
	return &Lists{
		bus:   stateBus,
		db:    immutableTree,
		list:  map[types.Address]*Model{},
		dirty: map[types.Address]struct{}{},
	}
}

func (l *Lists) immutableTree() *iavl.ImmutableTree {
	db := l.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (l *Lists) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	l.db.Store(immutableTree)
}

// Create registers a new list at address. The address must have been derived
// with the canonical bump for the owner and name.
func (l *Lists) Create(address types.Address, owner types.Address, name string, capacity uint16, bump uint8) {
	model := &Model{
		Owner:     owner,
		Name:      name,
		Capacity:  capacity,
		Bump:      bump,
		Items:     make([]types.Address, 0),
		address:   address,
		markDirty: l.markDirty,
	}

	l.setToMap(address, model)
	l.markDirty(address)
}

func (l *Lists) Get(address types.Address) *Model {
	return l.get(address)
}

func (l *Lists) Exists(address types.Address) bool {
	return l.get(address) != nil
}

// AddItem attaches an item account to the list. The caller checks capacity.
func (l *Lists) AddItem(address types.Address, item types.Address) {
	list := l.get(address)
	if list == nil {
		panic(fmt.Sprintf("list not found at %s", address.String()))
	}

	list.addItem(item)
	l.setToMap(address, list)
}

// RemoveItem detaches an item account, preserving the order of the rest.
func (l *Lists) RemoveItem(address types.Address, item types.Address) {
	list := l.get(address)
	if list == nil {
		panic(fmt.Sprintf("list not found at %s", address.String()))
	}

	list.removeItem(item)
	l.setToMap(address, list)
}

// Delete removes the list record entirely.
func (l *Lists) Delete(address types.Address) {
	list := l.get(address)
	if list == nil {
		panic(fmt.Sprintf("list not found at %s", address.String()))
	}

	list.lock.Lock()
	list.Items = nil
	list.deleted = true
	list.lock.Unlock()

	l.markDirty(address)
}

func (l *Lists) Export(state *types.AppState) {
	l.immutableTree().IterateRange([]byte{mainPrefix}, []byte{mainPrefix + 1}, true, func(key []byte, value []byte) bool {
		address := types.BytesToAddress(key[1:])

		model := l.get(address)
		if model != nil {
			items := make([]types.Address, len(model.Items))
			copy(items, model.Items)
			state.Lists = append(state.Lists, types.List{
				Address:  address,
				Owner:    model.Owner,
				Name:     model.Name,
				Capacity: model.Capacity,
				Bump:     model.Bump,
				Items:    items,
			})
		}

		return false
	})

	sort.SliceStable(state.Lists, func(i, j int) bool {
		return bytes.Compare(state.Lists[i].Address.Bytes(), state.Lists[j].Address.Bytes()) == 1
	})
}

func (l *Lists) Commit(db *iavl.MutableTree, version int64) error {
	dirty := l.getOrderedDirty()
	for _, address := range dirty {
		list := l.getFromMap(address)
		path := append([]byte{mainPrefix}, address.Bytes()...)

		l.lock.Lock()
		delete(l.dirty, address)
		l.lock.Unlock()

		list.lock.RLock()
		if list.deleted {
			db.Remove(path)
			l.lock.Lock()
			delete(l.list, address)
			l.lock.Unlock()
		} else {
			data, err := rlp.EncodeToBytes(list)
			if err != nil {
				list.lock.RUnlock()
				return fmt.Errorf("can't encode object at %s: %v", address.String(), err)
			}
			db.Set(path, data)
		}
		list.lock.RUnlock()
	}

	return nil
}

func (l *Lists) get(address types.Address) *Model {
	if list := l.getFromMap(address); list != nil {
		if list.deleted {
			return nil
		}
		return list
	}

	path := append([]byte{mainPrefix}, address.Bytes()...)
	_, enc := l.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	m := new(Model)
	if err := rlp.DecodeBytes(enc, m); err != nil {
		panic(fmt.Sprintf("failed to decode list at address %s: %s", address.String(), err))
	}

	m.address = address
	m.markDirty = l.markDirty
	l.setToMap(address, m)

	return m
}

func (l *Lists) getFromMap(address types.Address) *Model {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.list[address]
}

func (l *Lists) setToMap(address types.Address, model *Model) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.list[address] = model
}

func (l *Lists) markDirty(address types.Address) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.dirty[address] = struct{}{}
}

func (l *Lists) getOrderedDirty() []types.Address {
	l.lock.Lock()
	keys := make([]types.Address, 0, len(l.dirty))
	for k := range l.dirty {
		keys = append(keys, k)
	}
	l.lock.Unlock()

	sort.SliceStable(keys, func(i, j int) bool {
		compare := bytes.Compare(keys[i].Bytes(), keys[j].Bytes())
		return compare == 1
	})

	return keys
}
