package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}

// Snapshot is one archived scoreboard snapshot. Data is the uncompressed
// snapshot document.
type Snapshot struct {
	ID        int64
	GameID    uuid.UUID
	TakenAt   time.Time
	HomeName  string
	AwayName  string
	HomeScore int
	AwayScore int
	Data      []byte
}

// Game summarizes the snapshots archived for one game.
type Game struct {
	ID            uuid.UUID
	FirstTakenAt  time.Time
	LastTakenAt   time.Time
	SnapshotCount int
}
