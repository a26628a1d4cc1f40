package state

import (
	"log"
	"sync"

	eventsdb "github.com/TodoChain/todos-go-node/core/events"
	"github.com/TodoChain/todos-go-node/core/state/accounts"
	"github.com/TodoChain/todos-go-node/core/state/app"
	"github.com/TodoChain/todos-go-node/core/state/bus"
	"github.com/TodoChain/todos-go-node/core/state/checker"
	"github.com/TodoChain/todos-go-node/core/state/commission"
	"github.com/TodoChain/todos-go-node/core/state/items"
	"github.com/TodoChain/todos-go-node/core/state/lists"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/helpers"
	"github.com/TodoChain/todos-go-node/tree"
	"github.com/cosmos/iavl"
	db "github.com/tendermint/tm-db"
)

type Interface interface {
	isValue_State()
}

type CheckState struct {
	state *State
}

func NewCheckState(state *State) *CheckState {
	return &CheckState{state: state}
}

func (cs *CheckState) isValue_State() {}

func (cs *CheckState) Export() types.AppState {
	appState := new(types.AppState)
	cs.App().Export(appState)
	cs.Accounts().Export(appState)
	cs.Lists().Export(appState)
	cs.Items().Export(appState)
	cs.Commission().Export(appState)

	return *appState
}

func (cs *CheckState) App() app.RApp {
	return cs.state.App
}
func (cs *CheckState) Accounts() accounts.RAccounts {
	return cs.state.Accounts
}
func (cs *CheckState) Lists() lists.RLists {
	return cs.state.Lists
}
func (cs *CheckState) Items() items.RItems {
	return cs.state.Items
}
func (cs *CheckState) Commission() commission.RCommission {
	return cs.state.Commission
}

type State struct {
	App        *app.App
	Accounts   *accounts.Accounts
	Lists      *lists.Lists
	Items      *items.Items
	Commission *commission.Commission
	Checker    *checker.Checker

	db             db.DB
	events         eventsdb.IEventsDB
	tree           tree.MTree
	keepLastStates int64

	bus            *bus.Bus
	lock           sync.RWMutex
	height         int64
	initialVersion int64
}

func (s *State) isValue_State() {}

func NewState(height uint64, db db.DB, events eventsdb.IEventsDB, cacheSize int, keepLastStates int64, initialVersion uint64) (*State, error) {
	iavlTree, err := tree.NewMutableTree(height, db, cacheSize, initialVersion)
	if err != nil {
		return nil, err
	}

	state, err := newStateForTree(iavlTree.GetLastImmutable(), events, db, keepLastStates)
	if err != nil {
		return nil, err
	}

	state.tree = iavlTree
	state.height = int64(height)
	state.initialVersion = int64(initialVersion)

	return state, nil
}

func NewCheckStateAtHeight(height uint64, db db.DB) (*CheckState, error) {
	iavlTree, err := tree.NewImmutableTree(height, db)
	if err != nil {
		return nil, err
	}
	return newCheckStateForTree(iavlTree, nil, db, 0)
}

func (s *State) Tree() tree.MTree {
	return s.tree
}

func (s *State) Lock() {
	s.lock.Lock()
}

func (s *State) Unlock() {
	s.lock.Unlock()
}

func (s *State) RLock() {
	s.lock.RLock()
}

func (s *State) RUnlock() {
	s.lock.RUnlock()
}

func (s *State) Check() error {
	return s.Checker.Check()
}

func (s *State) Commit() ([]byte, error) {
	s.tree.GlobalLock()
	defer s.tree.GlobalUnlock()

	s.Checker.Reset()

	hash, version, err := s.tree.Commit(
		s.Accounts,
		s.App,
		s.Lists,
		s.Items,
		s.Commission,
	)
	if err != nil {
		return hash, err
	}

	versionToDelete := version - s.keepLastStates - 1
	if versionToDelete < s.initialVersion {
		return hash, nil
	}

	if err := s.tree.DeleteVersion(versionToDelete); err != nil {
		log.Printf("DeleteVersion %d error: %s\n", versionToDelete, err)
	}

	s.height = version

	return hash, nil
}

func (s *State) Import(state types.AppState) error {
	s.App.SetMaxGas(state.MaxGas)

	for _, a := range state.Accounts {
		s.Accounts.SetNonce(a.Address, a.Nonce)
		s.Accounts.SetBalance(a.Address, helpers.StringToBigInt(a.Balance))
	}

	for _, l := range state.Lists {
		s.Lists.Create(l.Address, l.Owner, l.Name, l.Capacity, l.Bump)
		for _, item := range l.Items {
			s.Lists.AddItem(l.Address, item)
		}
	}

	for _, i := range state.Items {
		s.Items.Create(i.Address, i.Creator, i.Name)
		if i.CreatorFinished {
			s.Items.SetCreatorFinished(i.Address)
		}
		if i.ListOwnerFinished {
			s.Items.SetListOwnerFinished(i.Address)
		}
	}

	s.Commission.Import(state.Commission)

	s.Checker.RemoveBaseCoin()

	return nil
}

func (s *State) Export() types.AppState {
	state, err := NewCheckStateAtHeight(uint64(s.tree.Version()), s.db)
	if err != nil {
		log.Panicf("Create new state at height %d failed: %s", s.tree.Version(), err)
	}

	return state.Export()
}

func newCheckStateForTree(immutableTree *iavl.ImmutableTree, events eventsdb.IEventsDB, db db.DB, keepLastStates int64) (*CheckState, error) {
	stateForTree, err := newStateForTree(immutableTree, events, db, keepLastStates)
	if err != nil {
		return nil, err
	}

	return NewCheckState(stateForTree), nil
}

func newStateForTree(immutableTree *iavl.ImmutableTree, events eventsdb.IEventsDB, db db.DB, keepLastStates int64) (*State, error) {
	stateBus := bus.NewBus()
	stateBus.SetEvents(events)

	stateChecker := checker.NewChecker(stateBus)

	appState := app.NewApp(stateBus, immutableTree)

	accountsState := accounts.NewAccounts(stateBus, immutableTree)

	listsState := lists.NewLists(stateBus, immutableTree)

	itemsState := items.NewItems(stateBus, immutableTree)

	commissionState := commission.NewCommission(immutableTree)

	state := &State{
		App:        appState,
		Accounts:   accountsState,
		Lists:      listsState,
		Items:      itemsState,
		Commission: commissionState,
		Checker:    stateChecker,

		height:         immutableTree.Version(),
		bus:            stateBus,
		db:             db,
		events:         events,
		keepLastStates: keepLastStates,
	}

	return state, nil
}
