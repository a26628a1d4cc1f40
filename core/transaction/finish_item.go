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

type FinishItemData struct {
	List      types.Address
	ListOwner types.Address
	ListName  string
	Item      types.Address
}

func (data FinishItemData) TxType() TxType {
	return TypeFinishItem
}

func (data FinishItemData) Gas() int64 {
	return gasFinishItem
}

func (data FinishItemData) String() string {
	return fmt.Sprintf("FINISH ITEM list:%s item:%s",
		data.List.String(), data.Item.String())
}

func (data FinishItemData) CommissionData(price *commission.Price) *big.Int {
	return price.FinishItem
}

func (data FinishItemData) basicCheck(tx *Transaction, context *state.CheckState) *Response {
	if response := checkList(context, data.List, data.ListOwner, data.ListName); response != nil {
		return response
	}

	item := context.Items().Get(data.Item)
	if item == nil {
		return &Response{
			Code: code.AccountNotInitialized,
			Log:  fmt.Sprintf("Account %s is not initialized", data.Item.String()),
			Info: EncodeError(code.NewAccountNotInitialized(data.Item.String())),
		}
	}

	if !context.Lists().Get(data.List).Contains(data.Item) {
		return &Response{
			Code: code.ItemNotFound,
			Log:  fmt.Sprintf("Item %s is not found in list %s", data.Item.String(), data.List.String()),
			Info: EncodeError(code.NewItemNotFound(data.List.String(), data.Item.String())),
		}
	}

	sender, _ := tx.Sender()
	if sender != data.ListOwner && sender != item.GetCreator() {
		return &Response{
			Code: code.FinishPermissions,
			Log:  fmt.Sprintf("Sender %s is not allowed to finish item %s", sender.String(), data.Item.String()),
			Info: EncodeError(code.NewFinishPermissions(sender.String(), data.Item.String())),
		}
	}

	return nil
}

func (data FinishItemData) Run(tx *Transaction, context state.Interface, rewardPool *big.Int, currentBlock uint64, price *big.Int) Response {
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

	item := checkState.Items().Get(data.Item)
	creatorFinished := item.IsCreatorFinished() || sender == item.GetCreator()
	listOwnerFinished := item.IsListOwnerFinished() || sender == data.ListOwner
	finished := creatorFinished && listOwnerFinished

	bounty := checkState.Accounts().GetBalance(data.Item)

	var tags []abcTypes.EventAttribute
	if deliverState, ok := context.(*state.State); ok {
		deliverState.Accounts.SubBalance(sender, commission)
		rewardPool.Add(rewardPool, commission)

		if sender == item.GetCreator() {
			deliverState.Items.SetCreatorFinished(data.Item)
		}
		if sender == data.ListOwner {
			deliverState.Items.SetListOwnerFinished(data.Item)
		}

		if finished {
			deliverState.Accounts.SubBalance(data.Item, bounty)
			deliverState.Accounts.AddBalance(data.ListOwner, bounty)

			deliverState.Items.Payout(data.Item, data.ListOwner, bounty, currentBlock)
			deliverState.Lists.RemoveItem(data.List, data.Item)
		}

		deliverState.Accounts.SetNonce(sender, tx.Nonce)

		tags = []abcTypes.EventAttribute{
			{Key: []byte("tx.commission_amount"), Value: []byte(commission.String())},
			{Key: []byte("tx.list"), Value: []byte(data.List.String()), Index: true},
			{Key: []byte("tx.item"), Value: []byte(data.Item.String()), Index: true},
			{Key: []byte("tx.finished"), Value: []byte(fmt.Sprintf("%t", finished))},
		}
		if finished {
			tags = append(tags, abcTypes.EventAttribute{Key: []byte("tx.payout"), Value: []byte(bounty.String())})
		}
	}

	return Response{
		Code: code.OK,
		Tags: tags,
	}
}
