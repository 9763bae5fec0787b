package scoreboard

// TeamState is the per-team part of a State.
type TeamState struct {
	Name      string
	Score     int
	Shots     int
	Penalties [MaxPenalties]Penalty
}

// State is a plain copy of everything in a Scoreboard except the action log.
type State struct {
	ClockTenths    int
	ClockRunning   bool
	ClockDirection ClockDirection
	PeriodLength   int

	Period          int
	OvertimeEnabled bool

	DefaultPenaltyDuration int

	Teams [2]TeamState

	OutputDirectory    string
	CLIExecutable      string
	MainConfigPath     string
	OverrideConfigPath string
}

// Team returns the state of one team.
func (st *State) Team(t Team) *TeamState {
	if !t.valid() {
		return nil
	}
	return &st.Teams[t]
}

// State returns a copy of the record.
func (s *Scoreboard) State() State {
	st := State{
		ClockTenths:            s.clockTenths,
		ClockRunning:           s.clockRunning,
		ClockDirection:         s.clockDirection,
		PeriodLength:           s.periodLength,
		Period:                 s.period,
		OvertimeEnabled:        s.overtimeEnabled,
		DefaultPenaltyDuration: s.defaultPenaltyDuration,
		OutputDirectory:        s.outputDirectory,
		CLIExecutable:          s.cliExecutable,
		MainConfigPath:         s.mainConfigPath,
		OverrideConfigPath:     s.overrideConfigPath,
	}
	for i, ts := range s.teams {
		st.Teams[i] = TeamState{
			Name:      ts.name,
			Score:     ts.score,
			Shots:     ts.shots,
			Penalties: ts.penalties,
		}
	}
	return st
}

// Restore replaces the record with st. Out-of-range values are clamped the
// same way the individual setters clamp them, and penalty slots that are
// inactive or out of time are emptied. The action log is left alone.
func (s *Scoreboard) Restore(st State) {
	s.clockRunning = st.ClockRunning
	s.SetClockDirection(st.ClockDirection)
	s.SetPeriodLength(st.PeriodLength)
	s.SetClockTenths(st.ClockTenths)
	s.overtimeEnabled = st.OvertimeEnabled
	s.SetPeriod(st.Period)
	s.SetDefaultPenaltyDuration(st.DefaultPenaltyDuration)
	s.SetOutputDirectory(st.OutputDirectory)
	s.SetCLIExecutable(st.CLIExecutable)
	s.SetMainConfigPath(st.MainConfigPath)
	s.SetOverrideConfigPath(st.OverrideConfigPath)

	for _, t := range Teams {
		in := st.Teams[t]
		s.SetName(t, in.Name)
		s.SetScore(t, in.Score)
		s.SetShots(t, in.Shots)
		for slot, p := range in.Penalties {
			if !p.Active || p.RemainingTenths <= 0 {
				p = Penalty{}
			} else if p.PlayerNumber < 0 {
				p.PlayerNumber = 0
			}
			s.teams[t].penalties[slot] = p
		}
	}
}
