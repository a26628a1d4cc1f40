package items

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"

	eventsdb "github.com/TodoChain/todos-go-node/core/events"
	"github.com/TodoChain/todos-go-node/core/state/bus"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = byte('i')

type RItems interface {
	Get(address types.Address) *Model
	Exists(address types.Address) bool
	Export(state *types.AppState)
}

type Items struct {
	list  map[types.Address]*Model
	dirty map[types.Address]struct{}

	db atomic.Value

	bus *bus.Bus

	lock sync.RWMutex
}

func NewItems(stateBus *bus.Bus, db *iavl.ImmutableTree) *Items {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}
	return &Items{
		bus:   stateBus,
		db:    immutableTree,
		list:  map[types.Address]*Model{},
		dirty: map[types.Address]struct{}{},
	}
}

func (i *Items) immutableTree() *iavl.ImmutableTree {
	db := i.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (i *Items) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	i.db.Store(immutableTree)
}

func (i *Items) Create(address types.Address, creator types.Address, name string) {
	model := &Model{
		Creator:   creator,
		Name:      name,
		address:   address,
		markDirty: i.markDirty,
	}

	i.setToMap(address, model)
	i.markDirty(address)
}

func (i *Items) Get(address types.Address) *Model {
	return i.get(address)
}

func (i *Items) Exists(address types.Address) bool {
	return i.get(address) != nil
}

func (i *Items) SetCreatorFinished(address types.Address) {
	item := i.get(address)
	if item == nil {
		panic(fmt.Sprintf("item not found at %s", address.String()))
	}

	item.setCreatorFinished()
	i.setToMap(address, item)
}

func (i *Items) SetListOwnerFinished(address types.Address) {
	item := i.get(address)
	if item == nil {
		panic(fmt.Sprintf("item not found at %s", address.String()))
	}

	item.setListOwnerFinished()
	i.setToMap(address, item)
}

// Refund closes the item record after a cancel. The bounty itself is moved by
// the caller; here the record is deleted and the refund event recorded.
func (i *Items) Refund(address types.Address, creator types.Address, amount *big.Int, height uint64) {
	i.delete(address)

	i.bus.Events().AddEvent(uint32(height), &eventsdb.BountyRefundEvent{
		Address: creator,
		Item:    address,
		Amount:  amount.String(),
	})
}

// Payout closes the item record after the second finish confirmation.
func (i *Items) Payout(address types.Address, listOwner types.Address, amount *big.Int, height uint64) {
	i.delete(address)

	i.bus.Events().AddEvent(uint32(height), &eventsdb.BountyPayoutEvent{
		Address: listOwner,
		Item:    address,
		Amount:  amount.String(),
	})
}

func (i *Items) delete(address types.Address) {
	item := i.get(address)
	if item == nil {
		panic(fmt.Sprintf("item not found at %s", address.String()))
	}

	item.lock.Lock()
	item.deleted = true
	item.lock.Unlock()

	i.markDirty(address)
}

func (i *Items) Export(state *types.AppState) {
	i.immutableTree().IterateRange([]byte{mainPrefix}, []byte{mainPrefix + 1}, true, func(key []byte, value []byte) bool {
		address := types.BytesToAddress(key[1:])

		model := i.get(address)
		if model != nil {
			state.Items = append(state.Items, types.Item{
				Address:           address,
				Creator:           model.Creator,
				Name:              model.Name,
				CreatorFinished:   model.CreatorFinished,
				ListOwnerFinished: model.ListOwnerFinished,
			})
		}

		return false
	})

	sort.SliceStable(state.Items, func(i, j int) bool {
		return bytes.Compare(state.Items[i].Address.Bytes(), state.Items[j].Address.Bytes()) == 1
	})
}

func (i *Items) Commit(db *iavl.MutableTree, version int64) error {
	dirty := i.getOrderedDirty()
	for _, address := range dirty {
		item := i.getFromMap(address)
		path := append([]byte{mainPrefix}, address.Bytes()...)

		i.lock.Lock()
		delete(i.dirty, address)
		i.lock.Unlock()

		item.lock.RLock()
		if item.deleted {
			db.Remove(path)
			i.lock.Lock()
			delete(i.list, address)
			i.lock.Unlock()
		} else {
			data, err := rlp.EncodeToBytes(item)
			if err != nil {
				item.lock.RUnlock()
				return fmt.Errorf("can't encode object at %s: %v", address.String(), err)
			}
			db.Set(path, data)
		}
		item.lock.RUnlock()
	}

	return nil
}

func (i *Items) get(address types.Address) *Model {
	if item := i.getFromMap(address); item != nil {
		if item.deleted {
			return nil
		}
		return item
	}

	path := append([]byte{mainPrefix}, address.Bytes()...)
	_, enc := i.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	m := new(Model)
	if err := rlp.DecodeBytes(enc, m); err != nil {
		panic(fmt.Sprintf("failed to decode item at address %s: %s", address.String(), err))
	}

	m.address = address
	m.markDirty = i.markDirty
	i.setToMap(address, m)

	return m
}

func (i *Items) getFromMap(address types.Address) *Model {
	i.lock.RLock()
	defer i.lock.RUnlock()

	return i.list[address]
}

func (i *Items) setToMap(address types.Address, model *Model) {
	i.lock.Lock()
	defer i.lock.Unlock()

	i.list[address] = model
}

func (i *Items) markDirty(address types.Address) {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.dirty[address] = struct{}{}
}

func (i *Items) getOrderedDirty() []types.Address {
	i.lock.Lock()
	keys := make([]types.Address, 0, len(i.dirty))
	for k := range i.dirty {
		keys = append(keys, k)
	}
	i.lock.Unlock()

	sort.SliceStable(keys, func(i, j int) bool {
		compare := bytes.Compare(keys[i].Bytes(), keys[j].Bytes())
		return compare == 1
	})

	return keys
}
