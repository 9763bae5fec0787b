package scoreboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard_AddPenalty(t *testing.T) {
	for _, team := range Teams {
		t.Run(team.String(), func(t *testing.T) {
			s := New()
			for _, d := range []int{1, 30, 120, 300} {
				slot := s.AddPenalty(team, 17, d)
				require.NotEqual(t, NoSlot, slot)
				p, ok := s.Penalty(team, slot)
				require.True(t, ok)
				assert.Equal(t, Penalty{PlayerNumber: 17, RemainingTenths: d * 10, Active: true}, p)
			}
			assert.Equal(t, 4, s.PenaltyCount(team))
		})
	}
}

func TestScoreboard_AddPenaltyFull(t *testing.T) {
	s := New()
	for i := 0; i < MaxPenalties; i++ {
		assert.Equal(t, i, s.AddPenalty(Home, i+1, 120))
	}
	before := s.State().Teams[Home].Penalties

	assert.Equal(t, NoSlot, s.AddPenalty(Home, 99, 120))
	assert.Equal(t, before, s.State().Teams[Home].Penalties)
	assert.Equal(t, MaxPenalties, s.PenaltyCount(Home))
	assert.Equal(t, 0, s.PenaltyCount(Away))
}

func TestScoreboard_AddPenaltyReusesLowestSlot(t *testing.T) {
	s := New()
	s.AddPenalty(Away, 1, 120)
	s.AddPenalty(Away, 2, 120)
	s.AddPenalty(Away, 3, 120)

	s.ClearPenalty(Away, 1)
	assert.Equal(t, 1, s.AddPenalty(Away, 4, 60))
	p, _ := s.Penalty(Away, 1)
	assert.Equal(t, 4, p.PlayerNumber)
}

func TestScoreboard_AddPenaltyClampsInput(t *testing.T) {
	s := New()
	slot := s.AddPenalty(Home, -3, 0)
	p, _ := s.Penalty(Home, slot)
	assert.Equal(t, Penalty{PlayerNumber: 0, RemainingTenths: 10, Active: true}, p)
}

func TestScoreboard_ClearPenalty(t *testing.T) {
	s := New()
	s.AddPenalty(Home, 12, 120)

	s.ClearPenalty(Home, -1)
	s.ClearPenalty(Home, MaxPenalties)
	assert.Equal(t, 1, s.PenaltyCount(Home))

	s.ClearPenalty(Home, 0)
	p, ok := s.Penalty(Home, 0)
	assert.True(t, ok)
	assert.Equal(t, Penalty{}, p)
}

func TestScoreboard_PenaltyOutOfRange(t *testing.T) {
	s := New()
	_, ok := s.Penalty(Home, -1)
	assert.False(t, ok)
	_, ok = s.Penalty(Away, MaxPenalties)
	assert.False(t, ok)
	_, ok = s.Penalty(Home, 3)
	assert.True(t, ok, "inactive in-range slot is still returned")
}

func TestScoreboard_TickPenaltiesBothTeams(t *testing.T) {
	s := New()
	s.AddPenalty(Home, 1, 1)
	s.AddPenalty(Home, 2, 5)
	s.AddPenalty(Away, 3, 1)

	s.TickPenalties(10)

	assert.Equal(t, 1, s.PenaltyCount(Home))
	assert.Equal(t, 0, s.PenaltyCount(Away))
	p, _ := s.Penalty(Home, 1)
	assert.Equal(t, 40, p.RemainingTenths)
	p, _ = s.Penalty(Home, 0)
	assert.Equal(t, Penalty{}, p)
}

func TestScoreboard_FormatPenalty(t *testing.T) {
	s := New()
	s.AddPenalty(Home, 12, 120)
	s.AddPenalty(Home, 0, 90)

	tests := []struct {
		name       string
		slot       int
		wantNumber string
		wantTime   string
	}{
		{name: "numbered", slot: 0, wantNumber: "#12", wantTime: "2:00"},
		{name: "no number", slot: 1, wantNumber: " ", wantTime: "1:30"},
		{name: "inactive", slot: 2, wantNumber: "", wantTime: ""},
		{name: "out of range", slot: 8, wantNumber: "", wantTime: ""},
		{name: "negative", slot: -1, wantNumber: "", wantTime: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNumber, s.FormatPenaltyNumber(Home, tt.slot))
			assert.Equal(t, tt.wantTime, s.FormatPenaltyTime(Home, tt.slot))
		})
	}
}

func TestScoreboard_FormatAllPenalties(t *testing.T) {
	s := New()
	s.AddPenalty(Home, 12, 120)
	s.AddPenalty(Home, 7, 60)
	s.AddPenalty(Home, 0, 300)
	s.ClearPenalty(Home, 1)
	s.AddPenalty(Home, 5, 45)
	s.ClearPenalty(Home, 0)

	assert.Equal(t, "#5\n ", s.FormatAllPenaltyNumbers(Home, 512))
	assert.Equal(t, "0:45\n5:00", s.FormatAllPenaltyTimes(Home, 512))
	assert.Equal(t, "", s.FormatAllPenaltyNumbers(Away, 512))
}

func TestScoreboard_FormatAllPenaltiesTruncates(t *testing.T) {
	s := New()
	s.AddPenalty(Away, 12, 120)
	s.AddPenalty(Away, 7, 60)
	s.AddPenalty(Away, 22, 300)

	tests := []struct {
		maxLen int
		want   string
	}{
		{maxLen: 0, want: ""},
		{maxLen: 2, want: ""},
		{maxLen: 3, want: "#12"},
		{maxLen: 5, want: "#12"},
		{maxLen: 6, want: "#12\n#7"},
		{maxLen: 9, want: "#12\n#7"},
		{maxLen: 10, want: "#12\n#7\n#22"},
	}
	for _, tt := range tests {
		got := s.FormatAllPenaltyNumbers(Away, tt.maxLen)
		assert.Equal(t, tt.want, got, "maxLen %d", tt.maxLen)
		assert.LessOrEqual(t, len(got), tt.maxLen)
		assert.True(t, strings.HasPrefix("#12\n#7\n#22", got))
	}
}
