// Package scoreboard holds the live game state of a scoreboard: match clock,
// period, score, shots on goal and time-served penalties.
//
// A Scoreboard is not safe for concurrent use. It is meant to be owned by a
// single control loop that applies one operation at a time.
package scoreboard

import (
	"fmt"
	"unicode/utf8"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
)

const (
	// MaxNameLength is the maximum length of a team name in bytes.
	MaxNameLength = 64
	// MaxPathLength is the maximum length of a configured path in bytes.
	MaxPathLength = 511

	DefaultPeriodLength    = 900
	DefaultPenaltyDuration = 120
	DefaultHomeName        = "Home"
	DefaultAwayName        = "Away"
)

// Team identifies one side of the match.
type Team int

const (
	Home Team = iota
	Away
)

// Teams lists both teams in display order.
var Teams = [...]Team{Home, Away}

func (t Team) String() string {
	switch t {
	case Home:
		return "home"
	case Away:
		return "away"
	default:
		return "unknown"
	}
}

// ParseTeam parses "home" or "away".
func ParseTeam(s string) (Team, error) {
	switch s {
	case "home":
		return Home, nil
	case "away":
		return Away, nil
	default:
		return Home, fmt.Errorf("unknown team: %q", s)
	}
}

func (t Team) valid() bool {
	return t == Home || t == Away
}

type teamState struct {
	name      string
	score     int
	shots     int
	penalties penaltyTable
}

// Scoreboard is the match record.
type Scoreboard struct {
	clockTenths    int
	clockRunning   bool
	clockDirection ClockDirection
	periodLength   int

	period          int
	overtimeEnabled bool

	defaultPenaltyDuration int

	teams [2]teamState

	outputDirectory    string
	cliExecutable      string
	mainConfigPath     string
	overrideConfigPath string

	actionLog ActionLog
}

// New returns a Scoreboard initialized to the documented defaults.
func New() *Scoreboard {
	s := &Scoreboard{}
	s.Reset()
	return s
}

// Description returns the product description.
func Description() string {
	return "Streamn Scoreboard"
}

// Reset reinitializes the whole record, including names, configuration
// and the action log.
func (s *Scoreboard) Reset() {
	*s = Scoreboard{
		clockDirection:         CountDown,
		periodLength:           DefaultPeriodLength,
		clockTenths:            DefaultPeriodLength * 10,
		period:                 1,
		overtimeEnabled:        true,
		defaultPenaltyDuration: DefaultPenaltyDuration,
	}
	s.teams[Home].name = DefaultHomeName
	s.teams[Away].name = DefaultAwayName
}

// NewGame clears scores, shots, penalties and the period and stops the clock.
// Team names and configuration are kept.
func (s *Scoreboard) NewGame() {
	for i := range s.teams {
		s.teams[i].score = 0
		s.teams[i].shots = 0
		s.teams[i].penalties.clearAll()
	}
	s.period = 1
	s.clockRunning = false
	s.clockTenths = s.startingTenths()
	log.Debug("New game: %s vs %s", s.teams[Home].name, s.teams[Away].name)
}

func (s *Scoreboard) team(t Team) *teamState {
	if !t.valid() {
		return nil
	}
	return &s.teams[t]
}

// Name returns the team's display name.
func (s *Scoreboard) Name(t Team) string {
	ts := s.team(t)
	if ts == nil {
		return ""
	}
	return ts.name
}

// SetName sets the team's display name, truncated to MaxNameLength bytes.
func (s *Scoreboard) SetName(t Team, name string) {
	if ts := s.team(t); ts != nil {
		ts.name = truncate(name, MaxNameLength)
	}
}

func (s *Scoreboard) DefaultPenaltyDuration() int {
	return s.defaultPenaltyDuration
}

// SetDefaultPenaltyDuration sets the default penalty length in seconds.
// Values below one second are raised to one.
func (s *Scoreboard) SetDefaultPenaltyDuration(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	s.defaultPenaltyDuration = seconds
}

func (s *Scoreboard) OutputDirectory() string {
	return s.outputDirectory
}

func (s *Scoreboard) SetOutputDirectory(path string) {
	s.outputDirectory = truncate(path, MaxPathLength)
}

func (s *Scoreboard) CLIExecutable() string {
	return s.cliExecutable
}

func (s *Scoreboard) SetCLIExecutable(path string) {
	s.cliExecutable = truncate(path, MaxPathLength)
}

func (s *Scoreboard) MainConfigPath() string {
	return s.mainConfigPath
}

func (s *Scoreboard) SetMainConfigPath(path string) {
	s.mainConfigPath = truncate(path, MaxPathLength)
}

func (s *Scoreboard) OverrideConfigPath() string {
	return s.overrideConfigPath
}

func (s *Scoreboard) SetOverrideConfigPath(path string) {
	s.overrideConfigPath = truncate(path, MaxPathLength)
}

// ActionLog returns the record's action log.
func (s *Scoreboard) ActionLog() *ActionLog {
	return &s.actionLog
}

// AddActionLog appends a message to the action log.
func (s *Scoreboard) AddActionLog(format string, args ...interface{}) {
	s.actionLog.Add(fmt.Sprintf(format, args...))
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
