package scoreboard

import (
	"strconv"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
)

const (
	// RegulationPeriods is the last regulation period.
	RegulationPeriods = 3
	// MaxOvertimePeriod is the last period when overtime is enabled (OT4).
	MaxOvertimePeriod = 7
)

func (s *Scoreboard) Period() int {
	return s.period
}

// MaxPeriod returns the highest legal period for the overtime setting.
func (s *Scoreboard) MaxPeriod() int {
	if s.overtimeEnabled {
		return MaxOvertimePeriod
	}
	return RegulationPeriods
}

// SetPeriod sets the period, clamped into [1, MaxPeriod].
func (s *Scoreboard) SetPeriod(period int) {
	s.period = s.clampPeriod(period)
}

func (s *Scoreboard) clampPeriod(period int) int {
	if period < 1 {
		return 1
	}
	if max := s.MaxPeriod(); period > max {
		return max
	}
	return period
}

// AdvancePeriod moves to the next period and resets the clock. It reports
// false and changes nothing when already at the last legal period.
func (s *Scoreboard) AdvancePeriod() bool {
	if s.period >= s.MaxPeriod() {
		return false
	}
	s.period++
	s.ResetClock()
	log.Debug("Advanced to period %s", s.FormatPeriod())
	return true
}

// RewindPeriod moves to the previous period and resets the clock. It reports
// false and changes nothing at period 1.
func (s *Scoreboard) RewindPeriod() bool {
	if s.period <= 1 {
		return false
	}
	s.period--
	s.ResetClock()
	log.Debug("Rewound to period %s", s.FormatPeriod())
	return true
}

// FormatPeriod renders the period label: "1".."3", then "OT", "OT2".."OT4".
func (s *Scoreboard) FormatPeriod() string {
	return FormatPeriod(s.period)
}

func (s *Scoreboard) OvertimeEnabled() bool {
	return s.overtimeEnabled
}

// SetOvertimeEnabled toggles overtime. Disabling it pulls an overtime
// period back to the last regulation period.
func (s *Scoreboard) SetOvertimeEnabled(enabled bool) {
	s.overtimeEnabled = enabled
	s.period = s.clampPeriod(s.period)
}

// FormatPeriod renders a period number as its display label.
func FormatPeriod(period int) string {
	switch {
	case period == RegulationPeriods+1:
		return "OT"
	case period > RegulationPeriods+1:
		return "OT" + strconv.Itoa(period-RegulationPeriods)
	default:
		return strconv.Itoa(period)
	}
}

// ParsePeriod parses a period label produced by FormatPeriod. Only the
// regulation numbers 1-3 and OT through OT4 are accepted.
func ParsePeriod(label string) (int, bool) {
	switch label {
	case "OT":
		return 4, true
	case "OT2":
		return 5, true
	case "OT3":
		return 6, true
	case "OT4":
		return 7, true
	}
	p, err := strconv.Atoi(label)
	if err != nil || p < 1 || p > RegulationPeriods {
		return 0, false
	}
	return p, true
}
