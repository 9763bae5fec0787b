package state

import (
	"context"
	"errors"
	"sync"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

// ErrNoState is returned by Get before any state has been set.
var ErrNoState = errors.New("no scoreboard state has been published")

// InMemoryStateManager hands state copies from the clock loop to other
// goroutines. scoreboard.State holds no references, so copies are deep.
type InMemoryStateManager struct {
	lock    sync.RWMutex
	st      scoreboard.State
	version uint64
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (scoreboard.State, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.version == 0 {
		return scoreboard.State{}, ErrNoState
	}
	return m.st, nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, st scoreboard.State) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.st = st
	m.version++
	return nil
}

// Version counts the calls to Set.
func (m *InMemoryStateManager) Version() uint64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.version
}
