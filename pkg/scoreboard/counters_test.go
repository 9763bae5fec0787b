package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard_Counters(t *testing.T) {
	type counter struct {
		name      string
		get       func(*Scoreboard, Team) int
		set       func(*Scoreboard, Team, int)
		increment func(*Scoreboard, Team)
		decrement func(*Scoreboard, Team)
	}
	counters := []counter{
		{
			name:      "score",
			get:       (*Scoreboard).Score,
			set:       (*Scoreboard).SetScore,
			increment: (*Scoreboard).IncrementScore,
			decrement: (*Scoreboard).DecrementScore,
		},
		{
			name:      "shots",
			get:       (*Scoreboard).Shots,
			set:       (*Scoreboard).SetShots,
			increment: (*Scoreboard).IncrementShots,
			decrement: (*Scoreboard).DecrementShots,
		},
	}
	for _, c := range counters {
		for _, team := range Teams {
			t.Run(c.name+"/"+team.String(), func(t *testing.T) {
				s := New()
				assert.Equal(t, 0, c.get(s, team))

				c.decrement(s, team)
				assert.Equal(t, 0, c.get(s, team), "decrement at zero is a no-op")

				c.increment(s, team)
				c.increment(s, team)
				assert.Equal(t, 2, c.get(s, team))

				c.decrement(s, team)
				assert.Equal(t, 1, c.get(s, team))

				c.set(s, team, 42)
				assert.Equal(t, 42, c.get(s, team))

				c.set(s, team, -4)
				assert.Equal(t, 0, c.get(s, team), "negative values clamp to zero")

				other := Away
				if team == Away {
					other = Home
				}
				assert.Equal(t, 0, c.get(s, other))
			})
		}
	}
}

func TestScoreboard_InvalidTeam(t *testing.T) {
	s := New()
	bogus := Team(5)

	s.IncrementScore(bogus)
	s.SetName(bogus, "Nobody")
	assert.Equal(t, 0, s.Score(bogus))
	assert.Equal(t, "", s.Name(bogus))
	assert.Equal(t, NoSlot, s.AddPenalty(bogus, 1, 10))
	assert.Equal(t, 0, s.PenaltyCount(bogus))
	assert.Equal(t, "", s.FormatAllPenaltyTimes(bogus, 100))
}
