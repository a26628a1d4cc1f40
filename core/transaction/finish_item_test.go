package transaction

import (
	"math/big"
	"sync"
	"testing"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/crypto"
	"github.com/TodoChain/todos-go-node/helpers"
)

func TestFinishItemTxByCreatorOnly(t *testing.T) {
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
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, creatorKey, 2, TypeFinishItem, FinishItemData{
		List:      list,
		ListOwner: owner,
		ListName:  "chores",
		Item:      item,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	model := cState.Items.Get(item)
	if model == nil {
		t.Fatalf("Item %s is closed after a single confirmation", item.String())
	}
	if !model.IsCreatorFinished() {
		t.Fatal("Creator finish flag is not set")
	}
	if model.IsListOwnerFinished() {
		t.Fatal("List owner finish flag is set")
	}

	escrow := cState.Accounts.GetBalance(item)
	if escrow.Cmp(bounty) != 0 {
		t.Fatalf("Escrowed bounty is not correct. Expected %s, got %s", bounty, escrow)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestFinishItemTxPayout(t *testing.T) {
	t.Parallel()

	// the payout must not depend on the order of confirmations
	for _, creatorFirst := range []bool{true, false} {
		cState := getState()

		ownerKey, _ := crypto.GenerateKey()
		owner := crypto.PubkeyToAddress(ownerKey.PublicKey)

		ownerInitial := helpers.CoinToNano(big.NewInt(10))
		cState.Accounts.AddBalance(owner, ownerInitial)

		creatorKey, _ := crypto.GenerateKey()
		creator := crypto.PubkeyToAddress(creatorKey.PublicKey)
		cState.Accounts.AddBalance(creator, helpers.CoinToNano(big.NewInt(10)))

		list := createTestList(t, cState, ownerKey, 1, "chores", 4)

		item := types.Address([20]byte{1})
		bounty := helpers.CoinToNano(big.NewInt(2))
		addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

		finishData := FinishItemData{
			List:      list,
			ListOwner: owner,
			ListName:  "chores",
			Item:      item,
		}

		if creatorFirst {
			response := RunTx(cState, makeTestTx(t, creatorKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
			if response.Code != 0 {
				t.Fatalf("Response code is not 0. Error: %s", response.Log)
			}
			response = RunTx(cState, makeTestTx(t, ownerKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
			if response.Code != 0 {
				t.Fatalf("Response code is not 0. Error: %s", response.Log)
			}
		} else {
			response := RunTx(cState, makeTestTx(t, ownerKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
			if response.Code != 0 {
				t.Fatalf("Response code is not 0. Error: %s", response.Log)
			}
			response = RunTx(cState, makeTestTx(t, creatorKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
			if response.Code != 0 {
				t.Fatalf("Response code is not 0. Error: %s", response.Log)
			}
		}

		if cState.Items.Exists(item) {
			t.Fatalf("Item %s is not closed after both confirmations", item.String())
		}
		if cState.Lists.Get(list).Contains(item) {
			t.Fatalf("Item %s is still linked to list %s", item.String(), list.String())
		}

		commissions := cState.Commission.GetCommissions()
		spent := big.NewInt(0).Add(commissions.NewList, commissions.FinishItem)
		targetBalance := big.NewInt(0).Sub(ownerInitial, spent)
		targetBalance.Add(targetBalance, bounty)
		balance := cState.Accounts.GetBalance(owner)
		if balance.Cmp(targetBalance) != 0 {
			t.Fatalf("Target %s balance is not correct. Expected %s, got %s", owner.String(), targetBalance, balance)
		}

		if err := checkState(cState); err != nil {
			t.Error(err)
		}
	}
}

func TestFinishItemTxRepeatedByCreator(t *testing.T) {
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
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	finishData := FinishItemData{
		List:      list,
		ListOwner: owner,
		ListName:  "chores",
		Item:      item,
	}

	for nonce := uint64(2); nonce <= 3; nonce++ {
		response := RunTx(cState, makeTestTx(t, creatorKey, nonce, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
		if response.Code != 0 {
			t.Fatalf("Response code is not 0. Error: %s", response.Log)
		}
	}

	// the flag is monotonic; the item stays open and funded
	if !cState.Items.Get(item).IsCreatorFinished() {
		t.Fatal("Creator finish flag is not set")
	}
	escrow := cState.Accounts.GetBalance(item)
	if escrow.Cmp(bounty) != 0 {
		t.Fatalf("Escrowed bounty is not correct. Expected %s, got %s", bounty, escrow)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestFinishItemTxAfterPayout(t *testing.T) {
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

	finishData := FinishItemData{
		List:      list,
		ListOwner: owner,
		ListName:  "chores",
		Item:      item,
	}

	response := RunTx(cState, makeTestTx(t, creatorKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}
	response = RunTx(cState, makeTestTx(t, ownerKey, 2, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	response = RunTx(cState, makeTestTx(t, creatorKey, 3, TypeFinishItem, finishData), big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.AccountNotInitialized {
		t.Fatalf("Response code is not %d. Got %d", code.AccountNotInitialized, response.Code)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestFinishItemTxByStranger(t *testing.T) {
	t.Parallel()
	cState := getState()

	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)
	cState.Accounts.AddBalance(owner, helpers.CoinToNano(big.NewInt(10)))

	strangerKey, _ := crypto.GenerateKey()
	stranger := crypto.PubkeyToAddress(strangerKey.PublicKey)
	cState.Accounts.AddBalance(stranger, helpers.CoinToNano(big.NewInt(10)))

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	addTestItem(t, cState, ownerKey, 2, list, owner, "chores", item, helpers.CoinToNano(big.NewInt(2)))

	encodedTx := makeTestTx(t, strangerKey, 1, TypeFinishItem, FinishItemData{
		List:      list,
		ListOwner: owner,
		ListName:  "chores",
		Item:      item,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.FinishPermissions {
		t.Fatalf("Response code is not %d. Got %d", code.FinishPermissions, response.Code)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestFinishItemTxBySoleOwner(t *testing.T) {
	t.Parallel()
	cState := getState()

	// the list owner created the item too, so one finish sets both flags
	ownerKey, _ := crypto.GenerateKey()
	owner := crypto.PubkeyToAddress(ownerKey.PublicKey)

	ownerInitial := helpers.CoinToNano(big.NewInt(10))
	cState.Accounts.AddBalance(owner, ownerInitial)

	list := createTestList(t, cState, ownerKey, 1, "chores", 4)

	item := types.Address([20]byte{1})
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, ownerKey, 2, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, ownerKey, 3, TypeFinishItem, FinishItemData{
		List:      list,
		ListOwner: owner,
		ListName:  "chores",
		Item:      item,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != 0 {
		t.Fatalf("Response code is not 0. Error: %s", response.Log)
	}

	if cState.Items.Exists(item) {
		t.Fatalf("Item %s is not closed", item.String())
	}

	commissions := cState.Commission.GetCommissions()
	spent := big.NewInt(0).Add(commissions.NewList, commissions.AddItem)
	spent.Add(spent, commissions.FinishItem)
	targetBalance := big.NewInt(0).Sub(ownerInitial, spent)
	balance := cState.Accounts.GetBalance(owner)
	if balance.Cmp(targetBalance) != 0 {
		t.Fatalf("Target %s balance is not correct. Expected %s, got %s", owner.String(), targetBalance, balance)
	}

	if err := checkState(cState); err != nil {
		t.Error(err)
	}
}

func TestFinishItemTxWithWrongListOwner(t *testing.T) {
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
	bounty := helpers.CoinToNano(big.NewInt(2))
	addTestItem(t, cState, creatorKey, 1, list, owner, "chores", item, bounty)

	encodedTx := makeTestTx(t, ownerKey, 2, TypeFinishItem, FinishItemData{
		List:      list,
		ListOwner: creator,
		ListName:  "chores",
		Item:      item,
	})

	response := RunTx(cState, encodedTx, big.NewInt(0), 0, &sync.Map{}, 0, false)
	if response.Code != code.WrongListAddress {
		t.Fatalf("Response code is not %d. Error %s", code.WrongListAddress, response.Log)
	}

	itemModel := cState.Items.Get(item)
	if itemModel == nil || itemModel.IsCreatorFinished() || itemModel.IsListOwnerFinished() {
		t.Fatal("Item was touched by a rejected tx")
	}

	if err := checkState(cState); err != nil {
		t.Fatal(err)
	}
}
