package events

import (
	"encoding/binary"
	"sync"

	"github.com/tendermint/go-amino"
	db "github.com/tendermint/tm-db"
)

// IEventsDB is an interface of Events
type IEventsDB interface {
	AddEvent(height uint32, event Event)
	LoadEvents(height uint32) Events
	CommitEvents() error
}

// MockEvents is a no-op events store used when event history is disabled.
type MockEvents struct{}

func (e MockEvents) AddEvent(height uint32, event Event) {}
func (e MockEvents) LoadEvents(height uint32) Events     { return nil }
func (e MockEvents) CommitEvents() error                 { return nil }

type eventsStore struct {
	cdc *amino.Codec
	sync.RWMutex
	db        db.DB
	pending   pendingEvents
	idAddress map[uint32][20]byte
	addressID map[[20]byte]uint32
}

type pendingEvents struct {
	sync.Mutex
	height uint32
	items  Events
}

// NewEventsStore creates new events store in given DB
func NewEventsStore(db db.DB) IEventsDB {
	codec := amino.NewCodec()
	codec.RegisterInterface((*Event)(nil), nil)
	codec.RegisterInterface((*compactEvent)(nil), nil)
	codec.RegisterConcrete(&bountyRefund{}, "bountyRefund", nil)
	codec.RegisterConcrete(&bountyPayout{}, "bountyPayout", nil)

	return &eventsStore{
		cdc:       codec,
		RWMutex:   sync.RWMutex{},
		db:        db,
		pending:   pendingEvents{},
		idAddress: make(map[uint32][20]byte),
		addressID: make(map[[20]byte]uint32),
	}
}

func (store *eventsStore) cacheAddress(id uint32, address [20]byte) {
	store.idAddress[id] = address
	store.addressID[address] = id
}

func (store *eventsStore) AddEvent(height uint32, event Event) {
	store.pending.Lock()
	defer store.pending.Unlock()
	if store.pending.height != height {
		store.pending.items = Events{}
	}
	store.pending.items = append(store.pending.items, event)
	store.pending.height = height
}

func (store *eventsStore) LoadEvents(height uint32) Events {
	store.loadCache()

	bytes, err := store.db.Get(uint32ToBytes(height))
	if err != nil {
		panic(err)
	}
	if len(bytes) == 0 {
		return Events{}
	}

	var items []compactEvent
	if err := store.cdc.UnmarshalBinaryBare(bytes, &items); err != nil {
		panic(err)
	}

	resultEvents := make(Events, 0, len(items))
	for _, compactEvent := range items {
		event := compactEvent.compile(store.idAddress[compactEvent.addressID()], store.idAddress[compactEvent.itemID()])
		resultEvents = append(resultEvents, event)
	}

	return resultEvents
}

func (store *eventsStore) CommitEvents() error {
	store.loadCache()

	store.pending.Lock()
	defer store.pending.Unlock()
	var data []compactEvent
	for _, item := range store.pending.items {
		address := store.saveAddress(item.address())
		itemAddress := store.saveAddress(item.item())
		data = append(data, item.convert(address, itemAddress))
	}

	bytes, err := store.cdc.MarshalBinaryBare(data)
	if err != nil {
		return err
	}

	store.Lock()
	defer store.Unlock()
	if err := store.db.Set(uint32ToBytes(store.pending.height), bytes); err != nil {
		return err
	}
	return nil
}

func (store *eventsStore) loadCache() {
	store.Lock()
	if len(store.idAddress) == 0 {
		store.loadAddresses()
	}
	store.Unlock()
}

const addressPrefix = "address"
const addressesCountKey = "addresses"

func (store *eventsStore) saveAddress(address [20]byte) uint32 {
	if id, ok := store.addressID[address]; ok {
		return id
	}

	id := uint32(len(store.addressID))
	store.cacheAddress(id, address)

	if err := store.db.Set(append([]byte(addressPrefix), uint32ToBytes(id)...), address[:]); err != nil {
		panic(err)
	}
	if err := store.db.Set([]byte(addressesCountKey), uint32ToBytes(uint32(len(store.addressID)))); err != nil {
		panic(err)
	}
	return id
}

func (store *eventsStore) loadAddresses() {
	count, err := store.db.Get([]byte(addressesCountKey))
	if err != nil {
		panic(err)
	}
	if len(count) > 0 {
		for id := uint32(0); id < binary.BigEndian.Uint32(count); id++ {
			address, _ := store.db.Get(append([]byte(addressPrefix), uint32ToBytes(id)...))
			var key [20]byte
			copy(key[:], address)
			store.cacheAddress(id, key)
		}
	}
}

func uint32ToBytes(height uint32) []byte {
	var h = make([]byte, 4)
	binary.BigEndian.PutUint32(h, height)
	return h
}
