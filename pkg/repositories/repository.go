package repositories

import (
	"context"

	"github.com/google/uuid"
)

// Repository archives scoreboard snapshots per game.
type Repository interface {
	Close(ctx context.Context) error
	// SaveSnapshot stores snap and returns its id. The id and GameID fields
	// of snap are ignored in favour of gameID.
	SaveSnapshot(ctx context.Context, gameID uuid.UUID, snap Snapshot) (int64, error)
	// LoadLatestSnapshot returns the most recent snapshot of a game, or an
	// ErrNotFound.
	LoadLatestSnapshot(ctx context.Context, gameID uuid.UUID) (*Snapshot, error)
	// ListSnapshots returns up to limit snapshots of a game, newest first.
	// A limit of zero or less returns all of them.
	ListSnapshots(ctx context.Context, gameID uuid.UUID, limit int) ([]Snapshot, error)
	// ListGames returns every archived game, most recently active first.
	ListGames(ctx context.Context) ([]Game, error)
}
