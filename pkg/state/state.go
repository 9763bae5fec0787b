package state

import (
	"context"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

// StateManager provides shared access to the latest scoreboard state.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest scoreboard state.
	Get(ctx context.Context) (scoreboard.State, error)
	// Set replaces the latest scoreboard state.
	Set(ctx context.Context, st scoreboard.State) error
}
