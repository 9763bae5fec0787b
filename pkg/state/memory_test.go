package state

import (
	"context"
	"sync"
	"testing"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.ErrorIs(t, err, ErrNoState)

	s := scoreboard.New()
	s.SetScore(scoreboard.Home, 2)
	s.AddPenalty(scoreboard.Away, 5, 120)
	require.NoError(t, m.Set(ctx, s.State()))

	s.SetScore(scoreboard.Home, 9)
	s.ClearPenalty(scoreboard.Away, 0)

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Teams[scoreboard.Home].Score, "later changes do not leak into the stored copy")
	assert.True(t, got.Teams[scoreboard.Away].Penalties[0].Active)
	assert.Equal(t, uint64(1), m.Version())
}

func TestInMemoryStateManager_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()
	s := scoreboard.New()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			st := s.State()
			st.ClockTenths = i
			assert.NoError(t, m.Set(ctx, st))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = m.Get(ctx)
		}
	}()
	wg.Wait()

	assert.Equal(t, uint64(100), m.Version())
}
