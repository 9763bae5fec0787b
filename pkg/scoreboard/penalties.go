package scoreboard

import (
	"strconv"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
)

const (
	// MaxPenalties is the number of penalty slots per team.
	MaxPenalties = 8
	// NoSlot is returned by AddPenalty when every slot is taken.
	NoSlot = -1
)

// Penalty is one slot of a team's penalty table. An inactive slot always has
// a zero player number and zero remaining time.
type Penalty struct {
	// PlayerNumber is 0 when no number was given.
	PlayerNumber    int
	RemainingTenths int
	Active          bool
}

type penaltyTable [MaxPenalties]Penalty

func (p *penaltyTable) add(playerNumber, durationSeconds int) int {
	for i := range p {
		if !p[i].Active {
			p[i] = Penalty{
				PlayerNumber:    playerNumber,
				RemainingTenths: durationSeconds * 10,
				Active:          true,
			}
			return i
		}
	}
	return NoSlot
}

func (p *penaltyTable) clear(slot int) {
	if slot >= 0 && slot < MaxPenalties {
		p[slot] = Penalty{}
	}
}

func (p *penaltyTable) clearAll() {
	*p = penaltyTable{}
}

func (p *penaltyTable) count() int {
	n := 0
	for i := range p {
		if p[i].Active {
			n++
		}
	}
	return n
}

// shift adds delta to every active slot and clears the ones that run out.
// It returns the expired slot indexes.
func (p *penaltyTable) shift(delta int) []int {
	var expired []int
	for i := range p {
		if !p[i].Active {
			continue
		}
		p[i].RemainingTenths += delta
		if p[i].RemainingTenths <= 0 {
			p.clear(i)
			expired = append(expired, i)
		}
	}
	return expired
}

// AddPenalty puts a penalty in the lowest free slot and returns the slot
// index, or NoSlot when the team already has MaxPenalties penalties.
// Negative player numbers are stored as 0 and durations below one second
// are raised to one.
func (s *Scoreboard) AddPenalty(t Team, playerNumber, durationSeconds int) int {
	ts := s.team(t)
	if ts == nil {
		return NoSlot
	}
	if playerNumber < 0 {
		playerNumber = 0
	}
	if durationSeconds < 1 {
		durationSeconds = 1
	}
	slot := ts.penalties.add(playerNumber, durationSeconds)
	if slot == NoSlot {
		log.Warn("No free %s penalty slot for #%d", t, playerNumber)
		return NoSlot
	}
	log.Debug("Added %s penalty #%d for %ds in slot %d", t, playerNumber, durationSeconds, slot)
	return slot
}

// ClearPenalty empties a slot. Out-of-range slots are ignored.
func (s *Scoreboard) ClearPenalty(t Team, slot int) {
	if ts := s.team(t); ts != nil {
		ts.penalties.clear(slot)
	}
}

// Penalty returns the content of a slot, active or not. The boolean is false
// for an out-of-range slot.
func (s *Scoreboard) Penalty(t Team, slot int) (Penalty, bool) {
	ts := s.team(t)
	if ts == nil || slot < 0 || slot >= MaxPenalties {
		return Penalty{}, false
	}
	return ts.penalties[slot], true
}

// PenaltyCount returns the number of active penalties for the team.
func (s *Scoreboard) PenaltyCount(t Team) int {
	ts := s.team(t)
	if ts == nil {
		return 0
	}
	return ts.penalties.count()
}

// TickPenalties decays every active penalty of both teams by elapsed tenths.
func (s *Scoreboard) TickPenalties(elapsed int) {
	s.shiftPenalties(-elapsed)
}

// AdjustPenalties adds a signed delta in tenths to every active penalty of
// both teams.
func (s *Scoreboard) AdjustPenalties(deltaTenths int) {
	s.shiftPenalties(deltaTenths)
}

func (s *Scoreboard) shiftPenalties(delta int) {
	for _, t := range Teams {
		for _, slot := range s.teams[t].penalties.shift(delta) {
			log.Debug("%s penalty in slot %d expired", t, slot)
		}
	}
}

// FormatPenaltyNumber renders a slot's player as "#N", a single space for an
// active penalty without a number, or "" for an inactive or invalid slot.
func (s *Scoreboard) FormatPenaltyNumber(t Team, slot int) string {
	p, ok := s.Penalty(t, slot)
	if !ok || !p.Active {
		return ""
	}
	return formatPlayerNumber(p.PlayerNumber)
}

// FormatPenaltyTime renders a slot's remaining time as M:SS, or "" for an
// inactive or invalid slot.
func (s *Scoreboard) FormatPenaltyTime(t Team, slot int) string {
	p, ok := s.Penalty(t, slot)
	if !ok || !p.Active {
		return ""
	}
	return FormatTenths(p.RemainingTenths)
}

// FormatAllPenaltyNumbers joins the player labels of the team's active
// penalties in slot order, one per line, keeping at most maxLen bytes.
func (s *Scoreboard) FormatAllPenaltyNumbers(t Team, maxLen int) string {
	return s.joinActive(t, maxLen, func(p Penalty) string {
		return formatPlayerNumber(p.PlayerNumber)
	})
}

// FormatAllPenaltyTimes joins the remaining times of the team's active
// penalties in slot order, one per line, keeping at most maxLen bytes.
func (s *Scoreboard) FormatAllPenaltyTimes(t Team, maxLen int) string {
	return s.joinActive(t, maxLen, func(p Penalty) string {
		return FormatTenths(p.RemainingTenths)
	})
}

func (s *Scoreboard) joinActive(t Team, maxLen int, format func(Penalty) string) string {
	ts := s.team(t)
	if ts == nil {
		return ""
	}
	var lines []string
	for _, p := range ts.penalties {
		if p.Active {
			lines = append(lines, format(p))
		}
	}
	return JoinLines(lines, maxLen)
}

func formatPlayerNumber(n int) string {
	if n > 0 {
		return "#" + strconv.Itoa(n)
	}
	return " "
}

// JoinLines joins entries with "\n", dropping every entry from the first one
// that would push the result past maxLen bytes. The result never ends in a
// partial entry.
func JoinLines(entries []string, maxLen int) string {
	var b strings.Builder
	for _, e := range entries {
		need := len(e)
		if b.Len() > 0 {
			need++
		}
		if b.Len()+need > maxLen {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e)
	}
	return b.String()
}
