package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard_StateRestore(t *testing.T) {
	s := New()
	s.SetName(Home, "Eagles")
	s.SetName(Away, "Hawks")
	s.SetScore(Home, 3)
	s.SetScore(Away, 2)
	s.SetShots(Home, 25)
	s.SetShots(Away, 18)
	s.SetPeriod(2)
	s.SetClockDirection(CountUp)
	s.SetPeriodLength(1200)
	s.SetClockTenths(5000)
	s.SetOvertimeEnabled(false)
	s.StartClock()
	s.AddPenalty(Home, 12, 120)
	s.AddPenalty(Away, 22, 60)

	st := s.State()

	restored := New()
	restored.Restore(st)
	assert.Equal(t, st, restored.State())
}

func TestScoreboard_RestoreNormalizes(t *testing.T) {
	st := New().State()
	st.Period = 9
	st.OvertimeEnabled = false
	st.ClockTenths = -20
	st.PeriodLength = 0
	st.ClockDirection = ClockDirection(7)
	st.Teams[Home].Score = -1
	st.Teams[Away].Shots = -8
	st.Teams[Home].Penalties[2] = Penalty{PlayerNumber: 4, RemainingTenths: 0, Active: true}
	st.Teams[Home].Penalties[3] = Penalty{PlayerNumber: 5, RemainingTenths: 50, Active: false}
	st.Teams[Away].Penalties[0] = Penalty{PlayerNumber: -2, RemainingTenths: 50, Active: true}

	s := New()
	s.Restore(st)

	assert.Equal(t, 3, s.Period())
	assert.Equal(t, 0, s.ClockTenths())
	assert.Equal(t, 1, s.PeriodLength())
	assert.Equal(t, CountDown, s.ClockDirection())
	assert.Equal(t, 0, s.Score(Home))
	assert.Equal(t, 0, s.Shots(Away))
	assert.Equal(t, 0, s.PenaltyCount(Home))
	p, _ := s.Penalty(Away, 0)
	assert.Equal(t, Penalty{PlayerNumber: 0, RemainingTenths: 50, Active: true}, p)
}

func TestScoreboard_RestoreCapsCountUpClock(t *testing.T) {
	st := New().State()
	st.ClockDirection = CountUp
	st.PeriodLength = 60
	st.ClockTenths = 3000

	s := New()
	s.Restore(st)
	assert.Equal(t, 600, s.ClockTenths())
}

func TestScoreboard_RestoreKeepsActionLog(t *testing.T) {
	s := New()
	s.AddActionLog("kept")
	s.Restore(New().State())
	assert.Equal(t, []string{"kept"}, s.ActionLog().Entries())
}
