package transaction

import (
	"crypto/ecdsa"
	"math/big"
	"sync"
	"testing"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/crypto"
	"github.com/TodoChain/todos-go-node/helpers"
)

func addTestItem(t *testing.T, cState *state.State, privateKey *ecdsa.PrivateKey, nonce uint64, list types.Address, listOwner types.Address, listName string, item types.Address, bounty *big.Int) {
	t.Helper()

	encodedTx := makeTestTx(t, privateKey, nonce, TypeAddItem, AddItemData{
		List:      list,
		ListOwner: listOwner,
		ListName:  listName,
		Item:      item,
		ItemName:  "task",
		Bounty:    bounty,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}
}

func TestCancelItemTxByCreator(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	creatorKey, _ := crypto.GenerateKey()
	creator := crypto.PubkeyToAddress(creatorKey.PublicKey)

	creatorInitial := helpers.CoinToNano(big.NewInt(10))
	cState.Accounts.AddBalance(creator, creatorInitial)

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, creatorKey, 2, TypeCancelItem, CancelItemData{
		List:        list,
		ListOwner:   owner,
		ListName:    "chores",
		Item:        item,
		ItemCreator: creator,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	if cState.Items.Exists(item) {
		t.Fatalf("Item %s is not closed", item.String())
	}
	if cState.Lists.Get(list).Contains(item) {
		t.Fatalf("Item %s is still linked to list %s", item.String(), list.String())
	}

	escrow := cState.Accounts.GetBalance(item)
	if escrow.Sign() != 0 {
		t.Fatalf("Item account balance is not zero: %s", escrow)
	}

	commissions := cState.Commission.GetCommissions()
	spent := big.NewInt(0).Add(commissions.AddItem, commissions.CancelItem)
	targetBalance := big.NewInt(0).Sub(creatorInitial, spent)
	balance := cState.Accounts.GetBalance(creator)
	if balance.Cmp(targetBalance) != 0 {
		t.Fatalf("Target %s balance is not correct. Expected %s, got %s", creator.String(), targetBalance, balance)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestCancelItemTxByListOwner(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	creatorKey, _ := crypto.GenerateKey()
	creator := crypto.PubkeyToAddress(creatorKey.PublicKey)

	creatorInitial := helpers.CoinToNano(big.NewInt(10))
	cState.Accounts.AddBalance(creator, creatorInitial)

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, ownerKey, 2, TypeCancelItem, CancelItemData{
		List:        list,
		ListOwner:   owner,
		ListName:    "chores",
		Item:        item,
		ItemCreator: creator,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	// the bounty goes back to the creator even when the owner cancels
	commissions := cState.Commission.GetCommissions()
	targetBalance := big.NewInt(0).Sub(creatorInitial, commissions.AddItem)
	balance := cState.Accounts.GetBalance(creator)
	if balance.Cmp(targetBalance) != 0 {
		t.Fatalf("Target %s balance is not correct. Expected %s, got %s", creator.String(), targetBalance, balance)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestCancelItemTxByStranger(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	creatorKey, _ := crypto.GenerateKey()
	creator := crypto.PubkeyToAddress(creatorKey.PublicKey)
	cState.Accounts.AddBalance(creator, helpers.CoinToNano(big.NewInt(10)))

	strangerKey, _ := crypto.GenerateKey()
	stranger := crypto.PubkeyToAddress(strangerKey.PublicKey)
	cState.Accounts.AddBalance(stranger, helpers.CoinToNano(big.NewInt(10)))

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, strangerKey, 1, TypeCancelItem, CancelItemData{
		List:        list,
		ListOwner:   owner,
		ListName:    "chores",
		Item:        item,
		ItemCreator: creator,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.CancelPermissions {
		t.Fatalf("Response code is not %d. Got %d", code.CancelPermissions, response.Code)
	}

	if !cState.Items.Exists(item) {
		t.Fatalf("Item %s is closed", item.String())
	}
	escrow := cState.Accounts.GetBalance(item)
	if escrow.Cmp(bounty) != 0 {
		t.Fatalf("Escrowed bounty is not correct. Expected %s, got %s", bounty, escrow)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestCancelItemTxWithWrongCreator(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	creatorKey, _ := crypto.GenerateKey()
	creator := crypto.PubkeyToAddress(creatorKey.PublicKey)
	cState.Accounts.AddBalance(creator, helpers.CoinToNano(big.NewInt(10)))

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, helpers.CoinToNano(big.NewInt(2)))

	encodedTx := makeTestTx(t, ownerKey, 2, TypeCancelItem, CancelItemData{
		List:        list,
		ListOwner:   owner,
		ListName:    "chores",
		Item:        item,
		ItemCreator: owner,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.WrongItemCreator {
		t.Fatalf("Response code is not %d. Got %d", code.WrongItemCreator, response.Code)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestCancelItemTxWithUnlinkedItem(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)
	other := createTestList(t, cState, ownerKey, 2, "groceries", 4)

	item := types.Address([20]byte{1})
	addTestItem(t, cState, ownerKey, 3, list, owner, "chores", item, helpers.CoinToNano(big.NewInt(2)))

	encodedTx := makeTestTx(t, ownerKey, 4, TypeCancelItem, CancelItemData{
		List:        other,
		ListOwner:   owner,
		ListName:    "groceries",
		Item:        item,
		ItemCreator: owner,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.ItemNotFound {
		t.Fatalf("Response code is not %d. Got %d", code.ItemNotFound, response.Code)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestCancelItemTxToClosedItem(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	addTestItem(t, cState, ownerKey, 2, list, owner, "chores", item, helpers.CoinToNano(big.NewInt(2)))

	cancelData := CancelItemData{
		List:        list,
		ListOwner:   owner,
		ListName:    "chores",
		Item:        item,
		ItemCreator: owner,
	}

	encodedTx := makeTestTx(t, ownerKey, 3, TypeCancelItem, cancelData)
	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	encodedTx = makeTestTx(t, ownerKey, 4, TypeCancelItem, cancelData)
	response = RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.AccountNotInitialized {
		t.Fatalf("Response code is not %d. Got %d", code.AccountNotInitialized, response.Code)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}
