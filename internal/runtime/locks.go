package runtime

import (
	"sync"

	"github.com/eigerco/ore/internal/address"
)

// accountLocks grants exclusive access to sets of accounts. A set is taken
// all at once, so two instructions can never hold part of each other's set.
type accountLocks struct {
	mu   sync.Mutex
	cond *sync.Cond
	held map[address.Address]struct{}
}

func newAccountLocks() *accountLocks {
	l := &accountLocks{held: make(map[address.Address]struct{})}
	l.cond = sync.NewCond(&l.mu)
	return l
}

func (l *accountLocks) acquire(keys []address.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.anyHeld(keys) {
		l.cond.Wait()
	}
	for _, k := range keys {
		l.held[k] = struct{}{}
	}
}

func (l *accountLocks) release(keys []address.Address) {
	l.mu.Lock()
	for _, k := range keys {
		delete(l.held, k)
	}
	l.mu.Unlock()
	l.cond.Broadcast()
}

func (l *accountLocks) anyHeld(keys []address.Address) bool {
	for _, k := range keys {
		if _, ok := l.held[k]; ok {
			return true
		}
	}
	return false
}
