package scoreboard

import "fmt"

// ClockDirection selects whether the match clock counts down from the
// period length or up towards it.
type ClockDirection int

const (
	CountDown ClockDirection = iota
	CountUp
)

func (d ClockDirection) String() string {
	switch d {
	case CountDown:
		return "down"
	case CountUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseClockDirection parses "down" or "up".
func ParseClockDirection(s string) (ClockDirection, error) {
	switch s {
	case "down":
		return CountDown, nil
	case "up":
		return CountUp, nil
	default:
		return CountDown, fmt.Errorf("unknown clock direction: %q", s)
	}
}

func (s *Scoreboard) StartClock() {
	s.clockRunning = true
}

func (s *Scoreboard) StopClock() {
	s.clockRunning = false
}

func (s *Scoreboard) ClockRunning() bool {
	return s.clockRunning
}

// ResetClock stops the clock and rewinds it to the start of a period:
// the full period length when counting down, zero when counting up.
func (s *Scoreboard) ResetClock() {
	s.clockRunning = false
	s.clockTenths = s.startingTenths()
}

func (s *Scoreboard) startingTenths() int {
	if s.clockDirection == CountDown {
		return s.periodLength * 10
	}
	return 0
}

// Tick advances a running clock by elapsed tenths and decays every active
// penalty by the same amount. It does nothing while the clock is stopped.
func (s *Scoreboard) Tick(elapsed int) {
	if !s.clockRunning || elapsed <= 0 {
		return
	}

	if s.clockDirection == CountDown {
		s.clockTenths -= elapsed
	} else {
		s.clockTenths += elapsed
	}
	s.clampClock()

	s.TickPenalties(elapsed)
}

func (s *Scoreboard) ClockTenths() int {
	return s.clockTenths
}

// SetClockTenths sets the clock directly. Negative values become zero and a
// count-up clock is capped at the period length.
func (s *Scoreboard) SetClockTenths(tenths int) {
	s.clockTenths = tenths
	s.clampClock()
}

// clampClock floors the clock at zero and caps a count-up clock at the
// period length.
func (s *Scoreboard) clampClock() {
	if s.clockTenths < 0 {
		s.clockTenths = 0
	}
	if max := s.periodLength * 10; s.clockDirection == CountUp && s.clockTenths > max {
		s.clockTenths = max
	}
}

// AdjustClockSeconds moves the clock by delta seconds and shifts every
// active penalty by the same signed amount.
func (s *Scoreboard) AdjustClockSeconds(delta int) {
	s.adjustClock(delta * 10)
}

// AdjustClockMinutes moves the clock by delta minutes and shifts every
// active penalty by the same signed amount.
func (s *Scoreboard) AdjustClockMinutes(delta int) {
	s.adjustClock(delta * 600)
}

func (s *Scoreboard) adjustClock(deltaTenths int) {
	s.clockTenths += deltaTenths
	s.clampClock()
	s.AdjustPenalties(deltaTenths)
}

// FormatClock renders the clock as M:SS.
func (s *Scoreboard) FormatClock() string {
	return FormatTenths(s.clockTenths)
}

func (s *Scoreboard) ClockDirection() ClockDirection {
	return s.clockDirection
}

// SetClockDirection changes the counting direction. The clock value is kept
// unless it exceeds the period length of a count-up clock.
func (s *Scoreboard) SetClockDirection(d ClockDirection) {
	if d != CountUp {
		d = CountDown
	}
	s.clockDirection = d
	s.clampClock()
}

// PeriodLength returns the period length in seconds.
func (s *Scoreboard) PeriodLength() int {
	return s.periodLength
}

// SetPeriodLength sets the period length in seconds, at least one.
func (s *Scoreboard) SetPeriodLength(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	s.periodLength = seconds
	s.clampClock()
}

// FormatTenths renders a duration in tenths of a second as M:SS. Minutes are
// not bounded and there is no hour component.
func FormatTenths(tenths int) string {
	totalSeconds := tenths / 10
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
