package workers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/repositories"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/snapshot"
	"github.com/StreamnDad/streamn-scoreboard/pkg/state"
)

// DefaultSaveInterval is used when no interval is given.
const DefaultSaveInterval = 10 * time.Second

type SaveSnapshotWorker struct {
	repository   repositories.Repository
	stateManager state.StateManager
	statePath    string
	gameID       uuid.UUID
	interval     time.Duration
	newGameChan  <-chan NewGameRequest

	last  scoreboard.State
	saved bool
}

type NewSaveSnapshotWorkerOptions struct {
	// Repository is optional. Without it snapshots only go to StatePath.
	Repository   repositories.Repository
	StateManager state.StateManager
	StatePath    string
	// GameID names the game the archived snapshots belong to. A random id is
	// generated when it is zero.
	GameID      uuid.UUID
	Interval    time.Duration
	NewGameChan <-chan NewGameRequest
}

// NewSaveSnapshotWorker creates a new SaveSnapshotWorker.
// The worker periodically writes the latest published state to the state
// file and archives it in the repository. It saves once more on shutdown.
func NewSaveSnapshotWorker(opts NewSaveSnapshotWorkerOptions) *SaveSnapshotWorker {
	gameID := opts.GameID
	if gameID == uuid.Nil {
		gameID = uuid.New()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	return &SaveSnapshotWorker{
		repository:   opts.Repository,
		stateManager: opts.StateManager,
		statePath:    opts.StatePath,
		gameID:       gameID,
		interval:     interval,
		newGameChan:  opts.NewGameChan,
	}
}

// GameID returns the id snapshots are currently archived under. It must not
// be called while Start is running.
func (w *SaveSnapshotWorker) GameID() uuid.UUID {
	return w.gameID
}

func (w *SaveSnapshotWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info("Archiving game %s", w.gameID)
	for {
		select {
		case <-ctx.Done():
			// the loop context is gone; the final save gets its own
			w.saveLatest(context.Background(), time.Now())
			return nil
		case req := <-w.newGameChan:
			w.startNewGame(ctx, req, time.Now())
		case t := <-ticker.C:
			w.saveLatest(ctx, t)
		}
	}
}

// saveLatest saves the published state unless it is unchanged since the
// last save.
func (w *SaveSnapshotWorker) saveLatest(ctx context.Context, t time.Time) {
	st, err := w.stateManager.Get(ctx)
	if err != nil {
		if !errors.Is(err, state.ErrNoState) {
			log.Error("Failed to get current scoreboard state: %v", err)
		}
		return
	}
	if w.saved && st == w.last {
		return
	}
	w.save(ctx, w.gameID, st, t)
}

// startNewGame archives the finished game under its own id and rotates to a
// fresh one.
func (w *SaveSnapshotWorker) startNewGame(ctx context.Context, req NewGameRequest, t time.Time) {
	if !w.saved || req.Previous != w.last {
		w.archive(ctx, w.gameID, req.Previous, t)
	}
	w.gameID = uuid.New()
	w.saved = false
	log.Info("Archiving game %s", w.gameID)
}

func (w *SaveSnapshotWorker) save(ctx context.Context, gameID uuid.UUID, st scoreboard.State, t time.Time) {
	if w.statePath != "" {
		if err := snapshot.SaveState(st, w.statePath); err != nil {
			log.Error("Failed to save scoreboard state: %v", err)
			return
		}
	}
	w.archive(ctx, gameID, st, t)
	w.last = st
	w.saved = true
}

func (w *SaveSnapshotWorker) archive(ctx context.Context, gameID uuid.UUID, st scoreboard.State, t time.Time) {
	if w.repository == nil {
		return
	}
	home, away := st.Team(scoreboard.Home), st.Team(scoreboard.Away)
	snap := repositories.Snapshot{
		TakenAt:   t,
		HomeName:  home.Name,
		AwayName:  away.Name,
		HomeScore: home.Score,
		AwayScore: away.Score,
		Data:      snapshot.Encode(st),
	}
	if _, err := w.repository.SaveSnapshot(ctx, gameID, snap); err != nil {
		log.Error("Failed to archive snapshot for game %s: %v", gameID, err)
	}
}
