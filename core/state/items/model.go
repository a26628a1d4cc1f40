package items

import (
	"sync"

	"github.com/TodoChain/todos-go-node/core/types"
)

// Model is a todo item attached to a list. The escrowed bounty is not stored
// here: it is the balance of the item's own account.
type Model struct {
	Creator           types.Address
	Name              string
	CreatorFinished   bool
	ListOwnerFinished bool

	address   types.Address
	deleted   bool
	markDirty func(address types.Address)
	lock      sync.RWMutex
}

func (m *Model) GetCreator() types.Address {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Creator
}

func (m *Model) GetName() string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.Name
}

func (m *Model) IsCreatorFinished() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.CreatorFinished
}

func (m *Model) IsListOwnerFinished() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.ListOwnerFinished
}

// IsFinished reports whether both the creator and the list owner confirmed.
func (m *Model) IsFinished() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.CreatorFinished && m.ListOwnerFinished
}

func (m *Model) setCreatorFinished() {
	m.lock.Lock()
	m.CreatorFinished = true
	m.lock.Unlock()

	m.markDirty(m.address)
}

func (m *Model) setListOwnerFinished() {
	m.lock.Lock()
	m.ListOwnerFinished = true
	m.lock.Unlock()

	m.markDirty(m.address)
}
