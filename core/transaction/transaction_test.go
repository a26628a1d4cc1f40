package transaction

import (
	"testing"

	"github.com/TodoChain/todos-go-node/crypto"
)

func TestTransactionSender(t *testing.T) {
	t.Parallel()

	privateKey, _ := crypto.GenerateKey()
	addr := crypto.PubkeyToAddress(privateKey.PublicKey)

	encodedTx := makeTestTx(t, privateKey, 1, TypeNewList, NewListData{
		Name:     "chores",
		Capacity: 4,
	})

	tx, err := NewExecutor(GetData).DecodeFromBytes(encodedTx)
	if err != nil {
		t.Fatal(err)
	}

	sender, err := tx.Sender()
	if err != nil {
		t.Fatal(err)
	}
	if sender != addr {
		t.Fatalf("Recovered sender %s is not %s", sender.String(), addr.String())
	}

	if tx.MustSender() != addr {
		t.Fatal("MustSender does not match Sender")
	}
}
