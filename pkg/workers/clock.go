package workers

import (
	"context"
	"errors"
	"time"

	"github.com/StreamnDad/streamn-scoreboard/pkg/control"
	"github.com/StreamnDad/streamn-scoreboard/pkg/events"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/queue"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/state"
	"github.com/StreamnDad/streamn-scoreboard/pkg/textfiles"
)

// DefaultTickInterval is one clock tenth.
const DefaultTickInterval = 100 * time.Millisecond

const tenth = 100 * time.Millisecond

// NewGameRequest asks the save worker to archive the finished game and start
// a new game id.
type NewGameRequest struct {
	Previous scoreboard.State
}

// ClockWorker owns the scoreboard. It is the only goroutine that mutates it.
type ClockWorker struct {
	scoreboard   *scoreboard.Scoreboard
	commandQueue queue.Queue
	controller   *control.Controller
	dispatcher   *events.Dispatcher
	stateManager state.StateManager
	interval     time.Duration
	newGameChan  chan<- NewGameRequest

	lastTick   time.Time
	pending    time.Duration
	lastExport string
}

type NewClockWorkerOptions struct {
	Scoreboard   *scoreboard.Scoreboard
	CommandQueue queue.Queue
	Controller   *control.Controller
	Dispatcher   *events.Dispatcher
	StateManager state.StateManager
	Interval     time.Duration
	// NewGameChan, when set, receives the state of the finished game each
	// time a new-game command is applied.
	NewGameChan chan<- NewGameRequest
}

// NewClockWorker creates a new ClockWorker.
// Every interval the worker applies the queued commands, advances the clock
// by the elapsed tenths, rewrites the text files and publishes a state copy.
func NewClockWorker(opts NewClockWorkerOptions) *ClockWorker {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	controller := opts.Controller
	if controller == nil {
		controller = control.NewController(control.NewControllerOptions{})
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = events.NewDispatcher(events.NewDispatcherOptions{})
	}
	return &ClockWorker{
		scoreboard:   opts.Scoreboard,
		commandQueue: opts.CommandQueue,
		controller:   controller,
		dispatcher:   dispatcher,
		stateManager: opts.StateManager,
		interval:     interval,
		newGameChan:  opts.NewGameChan,
	}
}

// Start runs the clock loop until ctx is done. Commands still queued at that
// point are dropped.
func (w *ClockWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.lastTick = time.Now()
	w.publish(ctx)

	for {
		select {
		case <-ctx.Done():
			w.dropPending()
			return nil
		case t := <-ticker.C:
			w.tick(ctx, t)
		}
	}
}

// tick runs one iteration of the clock loop.
func (w *ClockWorker) tick(ctx context.Context, t time.Time) {
	w.processCommands(ctx)

	if !w.lastTick.IsZero() && t.After(w.lastTick) {
		w.pending += t.Sub(w.lastTick)
	}
	w.lastTick = t
	if elapsed := int(w.pending / tenth); elapsed > 0 {
		w.pending -= time.Duration(elapsed) * tenth
		w.scoreboard.Tick(elapsed)
	}

	w.export()
	w.publish(ctx)
}

// processCommands applies all pending commands in the queue and fires the
// events they raise.
func (w *ClockWorker) processCommands(ctx context.Context) {
	pending, err := w.commandQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read commands: %v", err)
		return
	}
	for _, item := range pending {
		cmd, ok := item.(control.Command)
		if !ok {
			log.Warn("Ignoring unknown queue item of type %T", item)
			continue
		}

		var previous scoreboard.State
		if cmd.Op == control.OpNewGame {
			previous = w.scoreboard.State()
		}

		raised, err := w.controller.Apply(w.scoreboard, cmd)
		if err != nil {
			log.Error("Failed to apply %q: %v", cmd.Line, err)
		} else {
			log.Debug("Applied %q", cmd.Line)
		}
		w.dispatcher.FireAll(w.scoreboard, raised)

		if cmd.Op == control.OpNewGame && w.newGameChan != nil {
			select {
			case w.newGameChan <- NewGameRequest{Previous: previous}:
			case <-ctx.Done():
			}
		}
	}
}

func (w *ClockWorker) dropPending() {
	if n := w.commandQueue.Size(); n > 0 {
		log.Warn("Dropping %d unapplied commands", n)
	}
	w.commandQueue.ClearQueue()
}

// export rewrites the text files. A failure is logged once until the error
// changes or clears.
func (w *ClockWorker) export() {
	err := textfiles.WriteAll(w.scoreboard)
	if err == nil || errors.Is(err, textfiles.ErrNoOutputDirectory) {
		w.lastExport = ""
		return
	}
	if msg := err.Error(); msg != w.lastExport {
		log.Error("Failed to write text files: %v", err)
		w.lastExport = msg
	}
}

func (w *ClockWorker) publish(ctx context.Context) {
	if w.stateManager == nil {
		return
	}
	if err := w.stateManager.Set(ctx, w.scoreboard.State()); err != nil {
		log.Error("Failed to publish scoreboard state: %v", err)
	}
}
