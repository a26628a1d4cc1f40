package transaction

import (
	"fmt"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/state/lists"
	"github.com/TodoChain/todos-go-node/core/types"
)

// checkList resolves a list account named by address against the declared
// owner and name: the address must re-derive from them, the account must
// exist and its stored owner must match the declaration.
func checkList(context *state.CheckState, list types.Address, owner types.Address, name string) *Response {
	derived, _ := lists.FindListAddress(owner, name)
	if derived != list {
		return &Response{
			Code: code.WrongListAddress,
			Log:  fmt.Sprintf("List address %s does not match derived address %s", list.String(), derived.String()),
			Info: EncodeError(code.NewWrongListAddress(derived.String(), list.String())),
		}
	}

	model := context.Lists().Get(list)
	if model == nil {
		return &Response{
			Code: code.AccountNotInitialized,
			Log:  fmt.Sprintf("Account %s is not initialized", list.String()),
			Info: EncodeError(code.NewAccountNotInitialized(list.String())),
		}
	}

	if model.GetOwner() != owner {
		return &Response{
			Code: code.WrongListOwner,
			Log:  fmt.Sprintf("Wrong owner of list %s: %s", list.String(), owner.String()),
			Info: EncodeError(code.NewWrongListOwner(list.String(), owner.String())),
		}
	}

	return nil
}
