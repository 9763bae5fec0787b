package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/StreamnDad/streamn-scoreboard/pkg/config"
	"github.com/StreamnDad/streamn-scoreboard/pkg/control"
	"github.com/StreamnDad/streamn-scoreboard/pkg/events"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/queue"
	"github.com/StreamnDad/streamn-scoreboard/pkg/repositories"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/snapshot"
	"github.com/StreamnDad/streamn-scoreboard/pkg/state"
	"github.com/StreamnDad/streamn-scoreboard/pkg/textfiles"
	"github.com/StreamnDad/streamn-scoreboard/pkg/version"
	"github.com/StreamnDad/streamn-scoreboard/pkg/workers"
)

const newGameChannelSize = 8

func runAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	log.Info("Starting %s version %s", scoreboard.Description(), version.Get())

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := scoreboard.New()
	restore(s, cfg)

	var repository repositories.Repository
	var gameID uuid.UUID
	if cfg.ArchivePath != "" {
		repo, err := repositories.NewSQLiteRepository(ctx, cfg.ArchivePath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %v", err)
		}
		defer repo.Close(context.Background())
		repository = repo

		if cCtx.Bool("resume") {
			gameID = latestGameID(ctx, repo)
		}
	}

	return run(ctx, runOptions{
		Scoreboard: s,
		Config:     cfg,
		Repository: repository,
		GameID:     gameID,
		Input:      os.Stdin,
	})
}

type runOptions struct {
	Scoreboard *scoreboard.Scoreboard
	Config     *config.Config
	Repository repositories.Repository
	GameID     uuid.UUID
	Input      io.Reader
}

// run starts the workers and blocks until ctx is done. The save worker is
// stopped after the clock loop so its final save sees the last published
// state.
func run(ctx context.Context, opts runOptions) error {
	cfg := opts.Config
	commandQueue := queue.NewInMemoryQueue(queue.DefaultQueueSize)
	stateManager := state.NewInMemoryStateManager()
	newGameChan := make(chan workers.NewGameRequest, newGameChannelSize)

	saveWorker := workers.NewSaveSnapshotWorker(workers.NewSaveSnapshotWorkerOptions{
		Repository:   opts.Repository,
		StateManager: stateManager,
		StatePath:    cfg.StatePath,
		GameID:       opts.GameID,
		Interval:     cfg.SaveInterval,
		NewGameChan:  newGameChan,
	})
	saveCtx, cancelSave := context.WithCancel(context.Background())
	saveDone := make(chan struct{})
	go func() {
		defer close(saveDone)
		if err := saveWorker.Start(saveCtx); err != nil {
			log.Error("Save worker stopped: %v", err)
		}
	}()

	commandReader := workers.NewCommandReader(workers.NewCommandReaderOptions{
		Reader:       opts.Input,
		CommandQueue: commandQueue,
	})
	go func() {
		if err := commandReader.Start(ctx); err != nil {
			log.Error("Failed to read commands: %v", err)
		}
		log.Info("Command input closed")
	}()

	dispatcher := events.NewDispatcher(events.NewDispatcherOptions{
		Bindings: cfg.EventActions,
	})
	for _, event := range events.All() {
		if dispatcher.Bound(event) {
			log.Debug("Event %s is bound", event)
		}
	}

	clockWorker := workers.NewClockWorker(workers.NewClockWorkerOptions{
		Scoreboard:   opts.Scoreboard,
		CommandQueue: commandQueue,
		Controller: control.NewController(control.NewControllerOptions{
			StatePath:  cfg.StatePath,
			AfterReset: cfg.Apply,
		}),
		Dispatcher:   dispatcher,
		StateManager: stateManager,
		Interval:     cfg.TickInterval,
		NewGameChan:  newGameChan,
	})

	log.Info("Starting clock loop")
	err := clockWorker.Start(ctx)

	cancelSave()
	<-saveDone
	log.Info("Scoreboard stopped")
	return err
}

// restore brings s to its startup state: defaults, then configuration, then
// the text files in the output directory, then the state file if present.
// Restore failures are logged and never fatal.
func restore(s *scoreboard.Scoreboard, cfg *config.Config) {
	s.Reset()
	cfg.Apply(s)

	if err := textfiles.ReadAll(s); err != nil && !errors.Is(err, textfiles.ErrNoOutputDirectory) {
		log.Warn("Failed to read text files: %v", err)
	}

	if cfg.StatePath == "" {
		return
	}
	if _, err := os.Stat(cfg.StatePath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("Failed to stat state file: %v", err)
		}
		return
	}
	if err := snapshot.Load(s, cfg.StatePath); err != nil {
		log.Error("Failed to load state from %s: %v", cfg.StatePath, err)
		return
	}
	log.Info("Restored state from %s", cfg.StatePath)
}

// latestGameID returns the most recently archived game, or the nil id when
// the archive is empty.
func latestGameID(ctx context.Context, repository repositories.Repository) uuid.UUID {
	games, err := repository.ListGames(ctx)
	if err != nil {
		log.Error("Failed to list archived games: %v", err)
		return uuid.Nil
	}
	if len(games) == 0 {
		return uuid.Nil
	}
	log.Info("Resuming game %s", games[0].ID)
	return games[0].ID
}
