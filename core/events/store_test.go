package events

import (
	"strings"
	"testing"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/tendermint/go-amino"
	db "github.com/tendermint/tm-db"
)

func TestIEventsDB(t *testing.T) {
	store := NewEventsStore(db.NewMemDB())

	{
		event := &BountyRefundEvent{
			Address: types.HexToAddress("Td04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
			Item:    types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d95"),
			Amount:  "111497225000000000000",
		}
		store.AddEvent(12, event)
	}
	{
		event := &BountyPayoutEvent{
			Address: types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d95"),
			Item:    types.HexToAddress("Td04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
			Amount:  "891977800000000000000",
		}
		store.AddEvent(12, event)
	}
	err := store.CommitEvents()
	if err != nil {
		t.Fatal(err)
	}

	{
		event := &BountyPayoutEvent{
			Address: types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d91"),
			Item:    types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d92"),
			Amount:  "891977800000000000001",
		}
		store.AddEvent(14, event)
	}
	err = store.CommitEvents()
	if err != nil {
		t.Fatal(err)
	}

	loaded := store.LoadEvents(12)
	if len(loaded) != 2 {
		t.Fatalf("count of events not equal 2, has %d", len(loaded))
	}
	if loaded[0].Type() != TypeBountyRefundEvent {
		t.Fatal("invalid event type")
	}
	refund, ok := loaded[0].(*BountyRefundEvent)
	if !ok {
		t.Fatal("invalid event interface")
	}
	if refund.Amount != "111497225000000000000" {
		t.Fatal("invalid event amount")
	}
	if refund.AddressString() != "Td04bea23efb744dc93b4fda4c20bf4a21c6e195f1" {
		t.Fatal("invalid event address")
	}
	if refund.Item.String() != "Td18467bbb64a8edf890201d526c35957d82be3d95" {
		t.Fatal("invalid event item address")
	}

	loaded = store.LoadEvents(14)
	if len(loaded) != 1 {
		t.Fatalf("count of events not equal 1, has %d", len(loaded))
	}
	payout, ok := loaded[0].(*BountyPayoutEvent)
	if !ok {
		t.Fatal("invalid event interface")
	}
	if payout.Amount != "891977800000000000001" {
		t.Fatal("invalid event amount")
	}

	loaded = store.LoadEvents(13)
	if len(loaded) != 0 {
		t.Fatalf("count of events not equal 0, has %d", len(loaded))
	}
}

func TestEventsJSON(t *testing.T) {
	codec := amino.NewCodec()
	RegisterAminoEvents(codec)

	event := &BountyPayoutEvent{
		Address: types.HexToAddress("Td18467bbb64a8edf890201d526c35957d82be3d95"),
		Item:    types.HexToAddress("Td04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
		Amount:  "891977800000000000000",
	}

	jsonBytes, err := codec.MarshalJSON(Events{event})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(jsonBytes), "todos/BountyPayoutEvent") {
		t.Fatal("event type tag is missing")
	}

	var loaded Events
	if err := codec.UnmarshalJSON(jsonBytes, &loaded); err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].AddressString() != event.AddressString() {
		t.Fatal("invalid decoded event")
	}
}
