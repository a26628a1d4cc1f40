package events

import (
	"math/big"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/tendermint/go-amino"
)

// Event type names
const (
	TypeBountyRefundEvent = "todos/BountyRefundEvent"
	TypeBountyPayoutEvent = "todos/BountyPayoutEvent"
)

func RegisterAminoEvents(codec *amino.Codec) {
	codec.RegisterInterface((*Event)(nil), nil)
	codec.RegisterConcrete(&BountyRefundEvent{},
		TypeBountyRefundEvent, nil)
	codec.RegisterConcrete(&BountyPayoutEvent{},
		TypeBountyPayoutEvent, nil)
}

type Event interface {
	Type() string
	AddressString() string
	address() types.Address
	item() types.Address
	convert(addressID uint32, itemID uint32) compactEvent
}

type compactEvent interface {
	compile(address [20]byte, item [20]byte) Event
	addressID() uint32
	itemID() uint32
}

type Events []Event

type bountyRefund struct {
	AddressID uint32
	ItemID    uint32
	Amount    []byte
}

func (br *bountyRefund) compile(address [20]byte, item [20]byte) Event {
	event := new(BountyRefundEvent)
	event.Address = address
	event.Item = item
	event.Amount = big.NewInt(0).SetBytes(br.Amount).String()
	return event
}

func (br *bountyRefund) addressID() uint32 {
	return br.AddressID
}

func (br *bountyRefund) itemID() uint32 {
	return br.ItemID
}

// BountyRefundEvent is issued when a cancelled item returns its escrowed
// bounty to the item creator.
type BountyRefundEvent struct {
	Address types.Address `json:"address"`
	Item    types.Address `json:"item"`
	Amount  string        `json:"amount"`
}

func (bre *BountyRefundEvent) Type() string {
	return TypeBountyRefundEvent
}

func (bre *BountyRefundEvent) AddressString() string {
	return bre.Address.String()
}

func (bre *BountyRefundEvent) address() types.Address {
	return bre.Address
}

func (bre *BountyRefundEvent) item() types.Address {
	return bre.Item
}

func (bre *BountyRefundEvent) convert(addressID uint32, itemID uint32) compactEvent {
	result := new(bountyRefund)
	result.AddressID = addressID
	result.ItemID = itemID
	bi, _ := big.NewInt(0).SetString(bre.Amount, 10)
	result.Amount = bi.Bytes()
	return result
}

type bountyPayout struct {
	AddressID uint32
	ItemID    uint32
	Amount    []byte
}

func (bp *bountyPayout) compile(address [20]byte, item [20]byte) Event {
	event := new(BountyPayoutEvent)
	event.Address = address
	event.Item = item
	event.Amount = big.NewInt(0).SetBytes(bp.Amount).String()
	return event
}

func (bp *bountyPayout) addressID() uint32 {
	return bp.AddressID
}

func (bp *bountyPayout) itemID() uint32 {
	return bp.ItemID
}

// BountyPayoutEvent is issued when a finished item pays its escrowed bounty
// out to the list owner.
type BountyPayoutEvent struct {
	Address types.Address `json:"address"`
	Item    types.Address `json:"item"`
	Amount  string        `json:"amount"`
}

func (bpe *BountyPayoutEvent) Type() string {
	return TypeBountyPayoutEvent
}

func (bpe *BountyPayoutEvent) AddressString() string {
	return bpe.Address.String()
}

func (bpe *BountyPayoutEvent) address() types.Address {
	return bpe.Address
}

func (bpe *BountyPayoutEvent) item() types.Address {
	return bpe.Item
}

func (bpe *BountyPayoutEvent) convert(addressID uint32, itemID uint32) compactEvent {
	result := new(bountyPayout)
	result.AddressID = addressID
	result.ItemID = itemID
	bi, _ := big.NewInt(0).SetString(bpe.Amount, 10)
	result.Amount = bi.Bytes()
	return result
}
