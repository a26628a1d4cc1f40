package state

import (
	"log"
	"math/big"
	"testing"

	eventsdb "github.com/TodoChain/todos-go-node/core/events"
	"github.com/TodoChain/todos-go-node/core/state/lists"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/crypto"
	"github.com/TodoChain/todos-go-node/helpers"
	db "github.com/tendermint/tm-db"
)

func TestStateExport(t *testing.T) {
	t.Parallel()
	height := uint64(0)

	state, err := NewState(height, db.NewMemDB(), &eventsdb.MockEvents{}, 1, 2, 0)
	if err != nil {
		log.Panic("Cannot create state")
	}

	privateKey1, _ := crypto.GenerateKey()
	address1 := crypto.PubkeyToAddress(privateKey1.PublicKey)

	privateKey2, _ := crypto.GenerateKey()
	address2 := crypto.PubkeyToAddress(privateKey2.PublicKey)

	state.Accounts.AddBalance(address1, helpers.CoinToNano(big.NewInt(1)))
	state.Accounts.AddBalance(address2, helpers.CoinToNano(big.NewInt(2)))
	state.Accounts.SetNonce(address1, 5)

	listAddress, bump := lists.FindListAddress(address1, "chores")
	state.Lists.Create(listAddress, address1, "chores", 4, bump)

	item := types.Address([20]byte{1})
	state.Items.Create(item, address2, "wash dishes")
	state.Lists.AddItem(listAddress, item)
	state.Accounts.AddBalance(item, helpers.CoinToNano(big.NewInt(1)))

	_, err = state.Commit()
	if err != nil {
		t.Fatalf("Cannot commit state: %s", err)
	}

	newState := state.Export()
	if err := newState.Verify(); err != nil {
		t.Fatal(err)
	}

	if len(newState.Accounts) != 3 {
		t.Fatalf("Invalid count of accounts: %d", len(newState.Accounts))
	}

	if len(newState.Lists) != 1 {
		t.Fatalf("Invalid count of lists: %d", len(newState.Lists))
	}
	exportedList := newState.Lists[0]
	if exportedList.Address != listAddress || exportedList.Owner != address1 {
		t.Fatal("Invalid exported list")
	}
	if exportedList.Name != "chores" || exportedList.Capacity != 4 || exportedList.Bump != bump {
		t.Fatal("Invalid exported list data")
	}
	if len(exportedList.Items) != 1 || exportedList.Items[0] != item {
		t.Fatal("Invalid exported list items")
	}

	if len(newState.Items) != 1 {
		t.Fatalf("Invalid count of items: %d", len(newState.Items))
	}
	exportedItem := newState.Items[0]
	if exportedItem.Address != item || exportedItem.Creator != address2 {
		t.Fatal("Invalid exported item")
	}
	if exportedItem.Name != "wash dishes" || exportedItem.CreatorFinished || exportedItem.ListOwnerFinished {
		t.Fatal("Invalid exported item data")
	}
}

func TestStateImport(t *testing.T) {
	t.Parallel()

	state, err := NewState(0, db.NewMemDB(), &eventsdb.MockEvents{}, 1, 2, 0)
	if err != nil {
		log.Panic("Cannot create state")
	}

	owner := types.HexToAddress("Td04bea23efb744dc93b4fda4c20bf4a21c6e195f1")
	creator := types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d95")
	listAddress, bump := lists.FindListAddress(owner, "chores")
	item := types.Address([20]byte{7})

	appState := types.AppState{
		Accounts: []types.Account{
			{Address: owner, Balance: "1000000000", Nonce: 1},
			{Address: creator, Balance: "2000000000", Nonce: 2},
			{Address: item, Balance: "500000000", Nonce: 0},
		},
		Lists: []types.List{
			{Address: listAddress, Owner: owner, Name: "chores", Capacity: 4, Bump: bump, Items: []types.Address{item}},
		},
		Items: []types.Item{
			{Address: item, Creator: creator, Name: "wash dishes", CreatorFinished: true},
		},
		Commission: types.Price{
			PayloadByte: "2000000",
			NewList:     "100000000",
			AddItem:     "10000000",
			CancelItem:  "10000000",
			FinishItem:  "10000000",
		},
	}
	if err := appState.Verify(); err != nil {
		t.Fatal(err)
	}

	if err := state.Import(appState); err != nil {
		t.Fatal(err)
	}

	if _, err := state.Commit(); err != nil {
		t.Fatalf("Cannot commit state: %s", err)
	}

	if state.Accounts.GetBalance(owner).String() != "1000000000" {
		t.Fatal("Invalid imported balance")
	}
	if state.Accounts.GetNonce(creator) != 2 {
		t.Fatal("Invalid imported nonce")
	}

	list := state.Lists.Get(listAddress)
	if list == nil || !list.Contains(item) {
		t.Fatal("Invalid imported list")
	}

	model := state.Items.Get(item)
	if model == nil || !model.IsCreatorFinished() || model.IsListOwnerFinished() {
		t.Fatal("Invalid imported item")
	}

	exported := state.Export()
	if err := exported.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestStateExportAfterListDelete(t *testing.T) {
	t.Parallel()

	state, err := NewState(0, db.NewMemDB(), &eventsdb.MockEvents{}, 1, 2, 0)
	if err != nil {
		log.Panic("Cannot create state")
	}

	privateKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(privateKey.PublicKey)
	state.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(1)))

	listAddress, bump := lists.FindListAddress(owner, "chores")
	state.Lists.Create(listAddress, owner, "chores", 4, bump)

	if _, err := state.Commit(); err != nil {
		t.Fatalf("Cannot commit state: %s", err)
	}

	state.Lists.Delete(listAddress)

	if _, err := state.Commit(); err != nil {
		t.Fatalf("Cannot commit state: %s", err)
	}

	if state.Lists.Get(listAddress) != nil {
		t.Fatal("Deleted list is still readable")
	}

	exported := state.Export()
	if err := exported.Verify(); err != nil {
		t.Fatal(err)
	}
	if len(exported.Lists) != 0 {
		t.Fatalf("Invalid count of lists: %d", len(exported.Lists))
	}
}
