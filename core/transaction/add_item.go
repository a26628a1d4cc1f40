package transaction

import (
	"fmt"
	"math/big"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/state/commission"
	"github.com/TodoChain/todos-go-node/core/types"
	abcTypes "github.com/tendermint/tendermint/abci/types"
)

type AddItemData struct {
	List      types.Address
	ListOwner types.Address
	ListName  string
	Item      types.Address
	ItemName  string
	Bounty    *big.Int
}

func (data AddItemData) TxType() TxType {
	return TypeAddItem
}

func (data AddItemData) Gas() int64 {
	return gasAddItem
}

func (data AddItemData) String() string {
	return fmt.Sprintf("ADD ITEM list:%s item:%s bounty:%s",
		data.List.String(), data.Item.String(), data.Bounty.String())
}

func (data AddItemData) CommissionData(price *commission.Price) *big.Int {
	return price.AddItem
}

func (data AddItemData) basicCheck(tx *Transaction, context *state.CheckState) *Response {
	if data.Bounty == nil {
		return &Response{
			Code: code.DecodeError,
			Log:  "Incorrect tx data",
			Info: EncodeError(code.NewDecodeError()),
		}
	}

	if response := checkList(context, data.List, data.ListOwner, data.ListName); response != nil {
		return response
	}

	list := context.Lists().Get(data.List)
	if list.Len() >= int(list.GetCapacity()) {
		return &Response{
			Code: code.ListFull,
			Log:  fmt.Sprintf("List %s is full: capacity %d", data.List.String(), list.GetCapacity()),
			Info: EncodeError(code.NewListFull(data.List.String(), fmt.Sprintf("%d", list.GetCapacity()))),
		}
	}

	minBounty := types.RentExemptMinimum(data.ItemName)
	if data.Bounty.Cmp(minBounty) < 0 {
		return &Response{
			Code: code.BountyTooSmall,
			Log:  fmt.Sprintf("Bounty %s is smaller than rent-exempt minimum %s", data.Bounty.String(), minBounty.String()),
			Info: EncodeError(code.NewBountyTooSmall(data.Bounty.String(), minBounty.String())),
		}
	}

	if context.Items().Exists(data.Item) || context.Accounts().Exists(data.Item) {
		return &Response{
			Code: code.AccountAlreadyInUse,
			Log:  fmt.Sprintf("Account %s already in use", data.Item.String()),
			Info: EncodeError(code.NewAccountAlreadyInUse(data.Item.String())),
		}
	}

	return nil
}

func (data AddItemData) Run(tx *Transaction, context state.Interface, rewardPool *big.Int, currentBlock uint64, price *big.Int) Response {
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

	needValue := big.NewInt(0).Add(commission, data.Bounty)
	if checkState.Accounts().GetBalance(sender).Cmp(needValue) < 0 {
		return Response{
			Code: code.InsufficientFunds,
			Log:  fmt.Sprintf("Insufficient funds for sender account: %s. Wanted %s", sender.String(), needValue.String()),
			Info: EncodeError(code.NewInsufficientFunds(sender.String(), needValue.String())),
		}
	}

	var tags []abcTypes.EventAttribute
	if deliverState, ok := context.(*state.State); ok {
		deliverState.Accounts.SubBalance(sender, commission)
		rewardPool.Add(rewardPool, commission)

		deliverState.Accounts.SubBalance(sender, data.Bounty)
		deliverState.Accounts.AddBalance(data.Item, data.Bounty)

		deliverState.Items.Create(data.Item, sender, data.ItemName)
		deliverState.Lists.AddItem(data.List, data.Item)

		deliverState.Accounts.SetNonce(sender, tx.Nonce)

		tags = []abcTypes.EventAttribute{
			{Key: []byte("tx.commission_amount"), Value: []byte(commission.String())},
			{Key: []byte("tx.list"), Value: []byte(data.List.String()), Index: true},
			{Key: []byte("tx.item"), Value: []byte(data.Item.String()), Index: true},
			{Key: []byte("tx.bounty"), Value: []byte(data.Bounty.String())},
		}
	}

	return Response{
		Code: code.OK,
		Tags: tags,
	}
}
