package scoreboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_defaults(t *testing.T) {
	s := New()

	assert.Equal(t, 1, s.Period())
	assert.Equal(t, CountDown, s.ClockDirection())
	assert.Equal(t, DefaultPeriodLength, s.PeriodLength())
	assert.Equal(t, DefaultPeriodLength*10, s.ClockTenths())
	assert.False(t, s.ClockRunning())
	assert.True(t, s.OvertimeEnabled())
	assert.Equal(t, DefaultPenaltyDuration, s.DefaultPenaltyDuration())
	assert.Equal(t, "Home", s.Name(Home))
	assert.Equal(t, "Away", s.Name(Away))
	assert.Equal(t, "", s.OutputDirectory())
	assert.Equal(t, "Streamn Scoreboard", Description())
}

func TestScoreboard_Reset(t *testing.T) {
	s := New()
	s.SetName(Home, "Eagles")
	s.SetScore(Away, 4)
	s.SetOutputDirectory("/tmp/out")
	s.AddPenalty(Home, 3, 120)
	s.AddActionLog("something")
	s.SetClockDirection(CountUp)

	s.Reset()

	assert.Equal(t, New().State(), s.State())
	assert.Equal(t, 0, s.ActionLog().Len())
}

func TestScoreboard_NewGame(t *testing.T) {
	s := New()
	s.SetName(Home, "Eagles")
	s.SetName(Away, "Hawks")
	s.SetOutputDirectory("/tmp/out")
	s.SetCLIExecutable("/usr/bin/streamn")
	s.SetScore(Home, 3)
	s.SetShots(Away, 20)
	s.SetPeriod(3)
	s.AddPenalty(Away, 5, 120)
	s.SetClockDirection(CountUp)
	s.SetClockTenths(4000)
	s.StartClock()

	s.NewGame()

	assert.Equal(t, 0, s.Score(Home))
	assert.Equal(t, 0, s.Shots(Away))
	assert.Equal(t, 1, s.Period())
	assert.Equal(t, 0, s.PenaltyCount(Away))
	assert.False(t, s.ClockRunning())
	assert.Equal(t, 0, s.ClockTenths(), "count-up clock restarts at zero")
	assert.Equal(t, "Eagles", s.Name(Home))
	assert.Equal(t, "Hawks", s.Name(Away))
	assert.Equal(t, "/tmp/out", s.OutputDirectory())
	assert.Equal(t, "/usr/bin/streamn", s.CLIExecutable())
	assert.Equal(t, CountUp, s.ClockDirection())
}

func TestScoreboard_SetName(t *testing.T) {
	s := New()

	s.SetName(Home, strings.Repeat("a", 100))
	assert.Len(t, s.Name(Home), MaxNameLength)

	s.SetName(Away, "")
	assert.Equal(t, "", s.Name(Away))

	// 63 ASCII bytes followed by a two-byte rune must not be split.
	s.SetName(Home, strings.Repeat("b", 63)+"é")
	assert.Equal(t, strings.Repeat("b", 63), s.Name(Home))
}

func TestScoreboard_ConfigPaths(t *testing.T) {
	s := New()
	s.SetCLIExecutable("/usr/local/bin/streamn")
	s.SetMainConfigPath("/etc/streamn/main.json")
	s.SetOverrideConfigPath("/etc/streamn/override.json")
	s.SetOutputDirectory(strings.Repeat("d", 600))

	assert.Equal(t, "/usr/local/bin/streamn", s.CLIExecutable())
	assert.Equal(t, "/etc/streamn/main.json", s.MainConfigPath())
	assert.Equal(t, "/etc/streamn/override.json", s.OverrideConfigPath())
	assert.Len(t, s.OutputDirectory(), MaxPathLength)

	s.SetCLIExecutable("")
	assert.Equal(t, "", s.CLIExecutable())
}

func TestScoreboard_DefaultPenaltyDuration(t *testing.T) {
	s := New()
	s.SetDefaultPenaltyDuration(300)
	assert.Equal(t, 300, s.DefaultPenaltyDuration())
	s.SetDefaultPenaltyDuration(-1)
	assert.Equal(t, 1, s.DefaultPenaltyDuration())
}

func TestParseTeam(t *testing.T) {
	team, err := ParseTeam("away")
	assert.NoError(t, err)
	assert.Equal(t, Away, team)

	_, err = ParseTeam("visitors")
	assert.Error(t, err)
}
