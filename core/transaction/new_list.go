package transaction

import (
	"fmt"
	"math/big"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/state/commission"
	"github.com/TodoChain/todos-go-node/core/state/lists"
	abcTypes "github.com/tendermint/tendermint/abci/types"
)

const maxListNameLength = 256

type NewListData struct {
	Name     string
	Capacity uint16
	Bump     uint8
}

func (data NewListData) TxType() TxType {
	return TypeNewList
}

func (data NewListData) Gas() int64 {
	return gasNewList
}

func (data NewListData) String() string {
	return fmt.Sprintf("NEW LIST name:%s capacity:%d", data.Name, data.Capacity)
}

func (data NewListData) CommissionData(price *commission.Price) *big.Int {
	return price.NewList
}

func (data NewListData) basicCheck(tx *Transaction, context *state.CheckState) *Response {
	if len(data.Name) == 0 || len(data.Name) > maxListNameLength {
		return &Response{
			Code: code.DecodeError,
			Log:  fmt.Sprintf("Invalid list name length: %d", len(data.Name)),
			Info: EncodeError(code.NewDecodeError()),
		}
	}

	sender, _ := tx.Sender()

	address, bump := lists.FindListAddress(sender, data.Name)
	if bump != data.Bump {
		derived := lists.CreateListAddress(sender, data.Name, data.Bump)
		return &Response{
			Code: code.WrongListAddress,
			Log:  fmt.Sprintf("Wrong list address bump: expected %d, got %d", bump, data.Bump),
			Info: EncodeError(code.NewWrongListAddress(address.String(), derived.String())),
		}
	}

	if context.Lists().Exists(address) || context.Accounts().Exists(address) {
		return &Response{
			Code: code.AccountAlreadyInUse,
			Log:  fmt.Sprintf("Account %s already in use", address.String()),
			Info: EncodeError(code.NewAccountAlreadyInUse(address.String())),
		}
	}

	return nil
}

func (data NewListData) Run(tx *Transaction, context state.Interface, rewardPool *big.Int, currentBlock uint64, price *big.Int) Response {
	sender, _ := tx.Sender()

	var checkState *state.CheckState
	if cs, isCheck := context.(*state.CheckState); isCheck {
		checkState = cs
	} else {
		checkState = state.NewCheckState(context.(*state.State))
	}

	response := data.basicCheck(tx, checkState)
	if response != nil {
		return *response
	}

	commission := tx.MulGasPrice(price)

	if checkState.Accounts().GetBalance(sender).Cmp(commission) < 0 {
		return Response{
			Code: code.InsufficientFunds,
			Log:  fmt.Sprintf("Insufficient funds for sender account: %s. Wanted %s", sender.String(), commission.String()),
			Info: EncodeError(code.NewInsufficientFunds(sender.String(), commission.String())),
		}
	}

	address, _ := lists.FindListAddress(sender, data.Name)

	var tags []abcTypes.EventAttribute
	if deliverState, ok := context.(*state.State); ok {
		deliverState.Accounts.SubBalance(sender, commission)
		rewardPool.Add(rewardPool, commission)

		deliverState.Lists.Create(address, sender, data.Name, data.Capacity, data.Bump)
		deliverState.Accounts.SetNonce(sender, tx.Nonce)

		tags = []abcTypes.EventAttribute{
			{Key: []byte("tx.commission_amount"), Value: []byte(commission.String())},
			{Key: []byte("tx.list"), Value: []byte(address.String()), Index: true},
		}
	}

	return Response{
		Code: code.OK,
		Tags: tags,
	}
}
