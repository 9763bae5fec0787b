package scoreboard

func (s *Scoreboard) Score(t Team) int {
	if ts := s.team(t); ts != nil {
		return ts.score
	}
	return 0
}

// SetScore sets the team's score. Negative values become zero.
func (s *Scoreboard) SetScore(t Team, score int) {
	if ts := s.team(t); ts != nil {
		ts.score = nonNegative(score)
	}
}

func (s *Scoreboard) IncrementScore(t Team) {
	if ts := s.team(t); ts != nil {
		ts.score++
	}
}

// DecrementScore lowers the team's score by one, stopping at zero.
func (s *Scoreboard) DecrementScore(t Team) {
	if ts := s.team(t); ts != nil && ts.score > 0 {
		ts.score--
	}
}

func (s *Scoreboard) Shots(t Team) int {
	if ts := s.team(t); ts != nil {
		return ts.shots
	}
	return 0
}

// SetShots sets the team's shots on goal. Negative values become zero.
func (s *Scoreboard) SetShots(t Team, shots int) {
	if ts := s.team(t); ts != nil {
		ts.shots = nonNegative(shots)
	}
}

func (s *Scoreboard) IncrementShots(t Team) {
	if ts := s.team(t); ts != nil {
		ts.shots++
	}
}

// DecrementShots lowers the team's shots by one, stopping at zero.
func (s *Scoreboard) DecrementShots(t Team) {
	if ts := s.team(t); ts != nil && ts.shots > 0 {
		ts.shots--
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
