package bus

import (
	"github.com/TodoChain/todos-go-node/core/events"
)

// Bus connects state sub-modules without direct package dependencies.
type Bus struct {
	accounts Accounts
	checker  Checker
	events   events.IEventsDB
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SetAccounts(accounts Accounts) {
	b.accounts = accounts
}

func (b *Bus) Accounts() Accounts {
	return b.accounts
}

func (b *Bus) SetChecker(checker Checker) {
	b.checker = checker
}

func (b *Bus) Checker() Checker {
	return b.checker
}

func (b *Bus) SetEvents(events events.IEventsDB) {
	b.events = events
}

func (b *Bus) Events() events.IEventsDB {
	return b.events
}
