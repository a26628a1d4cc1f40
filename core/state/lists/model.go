package lists

import (
	"sync"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Model is a registered todo list. Items holds the addresses of the item
// accounts attached to the list, in attachment order.
type Model struct {
	Owner    types.Address
	Name     string
	Capacity uint16
	Bump     uint8
	Items    []types.Address

	address   types.Address
	deleted   bool
	markDirty func(address types.Address)
	lock      sync.RWMutex
}

func (m *Model) GetOwner() types.Address {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Owner
}

func (m *Model) GetName() string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Name
}

func (m *Model) GetCapacity() uint16 {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Capacity
}

func (m *Model) GetBump() uint8 {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Bump
}

func (m *Model) GetItems() []types.Address {
	m.lock.RLock()
	defer m.lock.RUnlock()

	items := make([]types.Address, len(m.Items))
	copy(items, m.Items)
	return items
}

func (m *Model) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.Items)
}

func (m *Model) Contains(item types.Address) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, a := range m.Items {
		if a == item {
			return true
		}
	}
	return false
}

func (m *Model) addItem(item types.Address) {
	m.lock.Lock()
	m.Items = append(m.Items, item)
	m.lock.Unlock()

	m.markDirty(m.address)
}

func (m *Model) removeItem(item types.Address) {
	m.lock.Lock()
	items := make([]types.Address, 0, len(m.Items))
	for _, a := range m.Items {
		if a != item {
			items = append(items, a)
		}
	}
	m.Items = items
	m.lock.Unlock()

	m.markDirty(m.address)
}

// NameSeed returns the fixed-size seed derived from a list name. Names longer
// than types.ListNameSeedLength bytes are truncated, so two names sharing a
// 32-byte prefix derive the same address.
func NameSeed(name string) []byte {
	seed := []byte(name)
	if len(seed) > types.ListNameSeedLength {
		seed = seed[:types.ListNameSeedLength]
	}
	return seed
}

// CreateListAddress derives the list address for a given owner, name and bump.
func CreateListAddress(owner types.Address, name string, bump uint8) types.Address {
	b, err := rlp.EncodeToBytes(&struct {
		Seed     string
		Owner    types.Address
		NameSeed []byte
		Bump     uint8
	}{Seed: types.ListAddressSeed, Owner: owner, NameSeed: NameSeed(name), Bump: bump})
	if err != nil {
		panic(err)
	}

	var addr types.Address
	copy(addr[:], crypto.Keccak256(b)[12:])

	return addr
}

// FindListAddress searches for the canonical bump, from 255 downwards. A
// candidate is rejected when its keccak hash starts with a zero byte, which
// keeps derived addresses off the curve of regular key-derived accounts.
func FindListAddress(owner types.Address, name string) (types.Address, uint8) {
	for bump := 255; bump >= 0; bump-- {
		b, err := rlp.EncodeToBytes(&struct {
			Seed     string
			Owner    types.Address
			NameSeed []byte
			Bump     uint8
		}{Seed: types.ListAddressSeed, Owner: owner, NameSeed: NameSeed(name), Bump: uint8(bump)})
		if err != nil {
			panic(err)
		}

		hash := crypto.Keccak256(b)
		if hash[0] == 0 {
			continue
		}

		var addr types.Address
		copy(addr[:], hash[12:])
		return addr, uint8(bump)
	}

	panic("no valid bump for list address")
}
