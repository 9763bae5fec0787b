package control

import (
	"errors"
	"fmt"

	"github.com/StreamnDad/streamn-scoreboard/pkg/events"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/snapshot"
	"github.com/StreamnDad/streamn-scoreboard/pkg/textfiles"
)

// ErrNoFreeSlot is returned when a penalty is added to a full table.
var ErrNoFreeSlot = errors.New("no free penalty slot")

// maxLogDump bounds the action log printed by the log command.
const maxLogDump = 16384

// Controller applies commands to a scoreboard.
type Controller struct {
	statePath  string
	afterReset func(s *scoreboard.Scoreboard)
}

type NewControllerOptions struct {
	// StatePath is the snapshot file used by save and load when the
	// command names no path.
	StatePath string
	// AfterReset, when set, runs after the reset command has restored the
	// defaults, typically to re-apply configuration.
	AfterReset func(s *scoreboard.Scoreboard)
}

func NewController(opts NewControllerOptions) *Controller {
	return &Controller{
		statePath:  opts.StatePath,
		afterReset: opts.AfterReset,
	}
}

// Apply runs cmd against s and returns the events it raised. Every applied
// command records a line in the action log. Errors from persistence commands
// are returned after whatever part of the command could be applied.
func (c *Controller) Apply(s *scoreboard.Scoreboard, cmd Command) ([]events.EventType, error) {
	switch cmd.Op {
	case OpClockStart:
		s.StartClock()
		s.AddActionLog("Clock started at %s", s.FormatClock())
	case OpClockStop:
		s.StopClock()
		s.AddActionLog("Clock stopped at %s", s.FormatClock())
	case OpClockToggle:
		if s.ClockRunning() {
			s.StopClock()
			s.AddActionLog("Clock stopped at %s", s.FormatClock())
		} else {
			s.StartClock()
			s.AddActionLog("Clock started at %s", s.FormatClock())
		}
	case OpClockReset:
		s.ResetClock()
		s.AddActionLog("Clock reset to %s", s.FormatClock())
	case OpClockSet:
		s.SetClockTenths(cmd.N)
		s.AddActionLog("Clock set to %s", s.FormatClock())
	case OpClockAdjustSeconds:
		s.AdjustClockSeconds(cmd.N)
		s.AddActionLog("Clock adjusted by %+d seconds to %s", cmd.N, s.FormatClock())
	case OpClockAdjustMinutes:
		s.AdjustClockMinutes(cmd.N)
		s.AddActionLog("Clock adjusted by %+d minutes to %s", cmd.N, s.FormatClock())
	case OpClockDirection:
		s.SetClockDirection(scoreboard.ClockDirection(cmd.N))
		s.AddActionLog("Clock counts %s", s.ClockDirection())
	case OpClockLength:
		s.SetPeriodLength(cmd.N)
		s.AddActionLog("Period length set to %d seconds", s.PeriodLength())

	case OpPeriodNext:
		if !s.AdvancePeriod() {
			s.AddActionLog("Game ended in period %s", s.FormatPeriod())
			return []events.EventType{events.GameEnd}, nil
		}
		s.AddActionLog("Period advanced to %s", s.FormatPeriod())
		return []events.EventType{events.PeriodChange}, nil
	case OpPeriodPrev:
		if !s.RewindPeriod() {
			s.AddActionLog("Period already at %s", s.FormatPeriod())
			return nil, nil
		}
		s.AddActionLog("Period rewound to %s", s.FormatPeriod())
		return []events.EventType{events.PeriodChange}, nil
	case OpPeriodSet:
		s.SetPeriod(cmd.N)
		s.AddActionLog("Period set to %s", s.FormatPeriod())
	case OpOvertime:
		s.SetOvertimeEnabled(cmd.N != 0)
		if s.OvertimeEnabled() {
			s.AddActionLog("Overtime enabled")
		} else {
			s.AddActionLog("Overtime disabled")
		}

	case OpGoal:
		s.IncrementScore(cmd.Team)
		s.AddActionLog("%s goal (%s)", s.Name(cmd.Team), scoreLine(s))
		return []events.EventType{events.GoalEvent(cmd.Team)}, nil
	case OpUngoal:
		s.DecrementScore(cmd.Team)
		s.AddActionLog("%s goal removed (%s)", s.Name(cmd.Team), scoreLine(s))
	case OpShot:
		s.IncrementShots(cmd.Team)
		s.AddActionLog("%s shot (%d)", s.Name(cmd.Team), s.Shots(cmd.Team))
	case OpUnshot:
		s.DecrementShots(cmd.Team)
		s.AddActionLog("%s shot removed (%d)", s.Name(cmd.Team), s.Shots(cmd.Team))
	case OpSetScore:
		s.SetScore(cmd.Team, cmd.N)
		s.AddActionLog("%s score set (%s)", s.Name(cmd.Team), scoreLine(s))
	case OpSetShots:
		s.SetShots(cmd.Team, cmd.N)
		s.AddActionLog("%s shots set to %d", s.Name(cmd.Team), s.Shots(cmd.Team))
	case OpSetName:
		old := s.Name(cmd.Team)
		s.SetName(cmd.Team, cmd.Text)
		s.AddActionLog("%s team renamed from %q to %q", cmd.Team, old, s.Name(cmd.Team))
	case OpPenalty:
		seconds := s.DefaultPenaltyDuration()
		if cmd.HasM {
			seconds = cmd.M
		}
		slot := s.AddPenalty(cmd.Team, cmd.N, seconds)
		if slot == scoreboard.NoSlot {
			s.AddActionLog("%s penalty for #%d rejected: all slots in use", s.Name(cmd.Team), cmd.N)
			return nil, ErrNoFreeSlot
		}
		s.AddActionLog("%s penalty %s %s (slot %d)", s.Name(cmd.Team),
			s.FormatPenaltyNumber(cmd.Team, slot), s.FormatPenaltyTime(cmd.Team, slot), slot)
	case OpClearPenalty:
		if _, ok := s.Penalty(cmd.Team, cmd.N); !ok {
			return nil, fmt.Errorf("%s has no penalty slot %d", cmd.Team, cmd.N)
		}
		s.ClearPenalty(cmd.Team, cmd.N)
		s.AddActionLog("%s penalty slot %d cleared", s.Name(cmd.Team), cmd.N)

	case OpNewGame:
		s.NewGame()
		s.AddActionLog("New game: %s vs %s", s.Name(scoreboard.Home), s.Name(scoreboard.Away))
		return []events.EventType{events.GameStart}, nil
	case OpReset:
		s.Reset()
		if c.afterReset != nil {
			c.afterReset(s)
		}
		s.AddActionLog("Scoreboard reset")
	case OpDefaultPenalty:
		s.SetDefaultPenaltyDuration(cmd.N)
		s.AddActionLog("Default penalty set to %d seconds", s.DefaultPenaltyDuration())

	case OpExport:
		if err := textfiles.WriteAll(s); err != nil {
			s.AddActionLog("Export failed")
			return nil, fmt.Errorf("failed to export text files: %w", err)
		}
		s.AddActionLog("Exported text files to %s", s.OutputDirectory())
	case OpImport:
		if err := textfiles.ReadAll(s); err != nil {
			s.AddActionLog("Import incomplete")
			return nil, fmt.Errorf("failed to import text files: %w", err)
		}
		s.AddActionLog("Imported text files from %s", s.OutputDirectory())
	case OpSave:
		path := c.path(cmd)
		if err := snapshot.Save(s, path); err != nil {
			s.AddActionLog("Save failed")
			return nil, err
		}
		s.AddActionLog("Saved state to %s", path)
	case OpLoad:
		path := c.path(cmd)
		if err := snapshot.Load(s, path); err != nil {
			s.AddActionLog("Load failed")
			return nil, err
		}
		s.AddActionLog("Loaded state from %s", path)
	case OpLog:
		log.Info("Action log:\n%s", s.ActionLog().CopyOut(maxLogDump))

	default:
		return nil, fmt.Errorf("unsupported command %q", cmd.Line)
	}
	return nil, nil
}

func (c *Controller) path(cmd Command) string {
	if cmd.Text != "" {
		return cmd.Text
	}
	return c.statePath
}

func scoreLine(s *scoreboard.Scoreboard) string {
	return fmt.Sprintf("%d-%d", s.Score(scoreboard.Home), s.Score(scoreboard.Away))
}
