package app

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/TodoChain/todos-go-node/core/state/bus"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = 'd'

type RApp interface {
	Export(state *types.AppState)
	GetMaxGas() uint64
}

// App holds chain-wide parameters that are not tied to a single address.
type App struct {
	model   *Model
	isDirty bool

	db atomic.Value

	bus *bus.Bus
	mx  sync.Mutex
}

func NewApp(stateBus *bus.Bus, db *iavl.ImmutableTree) *App {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}
	return &App{bus: stateBus, db: immutableTree}
}

func (a *App) immutableTree() *iavl.ImmutableTree {
	db := a.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (a *App) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	a.db.Store(immutableTree)
}

func (a *App) Commit(db *iavl.MutableTree, version int64) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if !a.isDirty {
		return nil
	}

	a.isDirty = false

	data, err := rlp.EncodeToBytes(a.model)
	if err != nil {
		return fmt.Errorf("can't encode app model: %s", err)
	}

	path := []byte{mainPrefix}
	db.Set(path, data)

	return nil
}

func (a *App) GetMaxGas() uint64 {
	model := a.getOrNew()

	return model.getMaxGas()
}

func (a *App) SetMaxGas(gas uint64) {
	model := a.getOrNew()
	model.setMaxGas(gas)
}

func (a *App) get() *Model {
	a.mx.Lock()
	defer a.mx.Unlock()

	if a.model != nil {
		return a.model
	}

	path := []byte{mainPrefix}
	_, enc := a.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	model := &Model{}
	if err := rlp.DecodeBytes(enc, model); err != nil {
		panic(fmt.Sprintf("failed to decode app model: %s", err))
	}

	a.model = model
	a.model.markDirty = a.markDirty
	return a.model
}

func (a *App) getOrNew() *Model {
	model := a.get()
	if model == nil {
		model = &Model{
			MaxGas:    0,
			markDirty: a.markDirty,
		}
		a.mx.Lock()
		a.model = model
		a.mx.Unlock()
	}

	return model
}

func (a *App) markDirty() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.isDirty = true
}

func (a *App) Export(state *types.AppState) {
	state.MaxGas = a.GetMaxGas()
}
