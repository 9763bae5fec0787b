// Package control parses operator command lines and applies them to a
// scoreboard.
package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

type Op int

const (
	OpClockStart Op = iota
	OpClockStop
	OpClockToggle
	OpClockReset
	OpClockSet
	OpClockAdjustSeconds
	OpClockAdjustMinutes
	OpClockDirection
	OpClockLength
	OpPeriodNext
	OpPeriodPrev
	OpPeriodSet
	OpOvertime
	OpGoal
	OpUngoal
	OpShot
	OpUnshot
	OpSetScore
	OpSetShots
	OpSetName
	OpPenalty
	OpClearPenalty
	OpNewGame
	OpReset
	OpDefaultPenalty
	OpExport
	OpImport
	OpSave
	OpLoad
	OpLog
)

// Command is a parsed command line. Which of the argument fields are used
// depends on Op.
type Command struct {
	Op   Op
	Team scoreboard.Team
	// N and M are numeric arguments. Clock values are in tenths.
	N, M int
	// HasN and HasM report whether the optional numeric arguments were given.
	HasN, HasM bool
	// Text is a free-form argument such as a team name or a file path.
	Text string
	Line string
}

// Parse reads one command line. Verbs are case-insensitive; team names and
// paths keep their spelling.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	cmd := Command{Line: line}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	var err error
	switch verb {
	case "clock":
		err = parseClock(&cmd, args)
	case "period":
		err = parsePeriod(&cmd, args)
	case "home", "away":
		cmd.Team, _ = scoreboard.ParseTeam(verb)
		err = parseTeam(&cmd, args, line)
	case "new-game":
		cmd.Op = OpNewGame
		err = noArgs(verb, args)
	case "reset":
		cmd.Op = OpReset
		err = noArgs(verb, args)
	case "default-penalty":
		cmd.Op = OpDefaultPenalty
		err = oneInt(&cmd, verb, args)
	case "export":
		cmd.Op = OpExport
		err = noArgs(verb, args)
	case "import":
		cmd.Op = OpImport
		err = noArgs(verb, args)
	case "save", "load":
		cmd.Op = OpSave
		if verb == "load" {
			cmd.Op = OpLoad
		}
		cmd.Text = remainder(line, 1)
	case "log":
		cmd.Op = OpLog
		err = noArgs(verb, args)
	default:
		err = fmt.Errorf("unknown command %q", fields[0])
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func parseClock(cmd *Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("clock: missing action")
	}
	action := strings.ToLower(args[0])
	rest := args[1:]
	switch action {
	case "start":
		cmd.Op = OpClockStart
	case "stop":
		cmd.Op = OpClockStop
	case "toggle":
		cmd.Op = OpClockToggle
	case "reset":
		cmd.Op = OpClockReset
	case "set":
		cmd.Op = OpClockSet
		if len(rest) != 1 {
			return fmt.Errorf("clock set: expected M:SS")
		}
		tenths, ok := scoreboard.ParseClock(rest[0])
		if !ok || tenths < 0 {
			return fmt.Errorf("clock set: invalid time %q", rest[0])
		}
		cmd.N, cmd.HasN = tenths, true
		return nil
	case "seconds":
		cmd.Op = OpClockAdjustSeconds
		return oneInt(cmd, "clock seconds", rest)
	case "minutes":
		cmd.Op = OpClockAdjustMinutes
		return oneInt(cmd, "clock minutes", rest)
	case "direction":
		cmd.Op = OpClockDirection
		if len(rest) != 1 {
			return fmt.Errorf("clock direction: expected up or down")
		}
		direction, err := scoreboard.ParseClockDirection(strings.ToLower(rest[0]))
		if err != nil {
			return fmt.Errorf("clock direction: %v", err)
		}
		cmd.N, cmd.HasN = int(direction), true
		return nil
	case "length":
		cmd.Op = OpClockLength
		return oneInt(cmd, "clock length", rest)
	default:
		return fmt.Errorf("clock: unknown action %q", args[0])
	}
	return noArgs("clock "+action, rest)
}

func parsePeriod(cmd *Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("period: missing action")
	}
	action := strings.ToLower(args[0])
	rest := args[1:]
	switch action {
	case "next":
		cmd.Op = OpPeriodNext
		return noArgs("period next", rest)
	case "prev":
		cmd.Op = OpPeriodPrev
		return noArgs("period prev", rest)
	case "set":
		cmd.Op = OpPeriodSet
		if len(rest) != 1 {
			return fmt.Errorf("period set: expected a period")
		}
		period, ok := scoreboard.ParsePeriod(strings.ToUpper(rest[0]))
		if !ok {
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 1 {
				return fmt.Errorf("period set: invalid period %q", rest[0])
			}
			period = n
		}
		cmd.N, cmd.HasN = period, true
		return nil
	case "overtime":
		cmd.Op = OpOvertime
		if len(rest) != 1 {
			return fmt.Errorf("period overtime: expected on or off")
		}
		switch strings.ToLower(rest[0]) {
		case "on":
			cmd.N = 1
		case "off":
			cmd.N = 0
		default:
			return fmt.Errorf("period overtime: expected on or off, got %q", rest[0])
		}
		cmd.HasN = true
		return nil
	default:
		return fmt.Errorf("period: unknown action %q", args[0])
	}
}

func parseTeam(cmd *Command, args []string, line string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: missing action", cmd.Team)
	}
	action := strings.ToLower(args[0])
	rest := args[1:]
	name := cmd.Team.String() + " " + action
	switch action {
	case "goal":
		cmd.Op = OpGoal
	case "ungoal":
		cmd.Op = OpUngoal
	case "shot":
		cmd.Op = OpShot
	case "unshot":
		cmd.Op = OpUnshot
	case "score":
		cmd.Op = OpSetScore
		return oneInt(cmd, name, rest)
	case "shots":
		cmd.Op = OpSetShots
		return oneInt(cmd, name, rest)
	case "name":
		cmd.Op = OpSetName
		cmd.Text = remainder(line, 2)
		return nil
	case "penalty":
		cmd.Op = OpPenalty
		if len(rest) > 2 {
			return fmt.Errorf("%s: expected [PLAYER [SECONDS]]", name)
		}
		if len(rest) > 0 {
			n, err := parseInt(name, rest[0])
			if err != nil {
				return err
			}
			cmd.N, cmd.HasN = n, true
		}
		if len(rest) > 1 {
			m, err := parseInt(name, rest[1])
			if err != nil {
				return err
			}
			cmd.M, cmd.HasM = m, true
		}
		return nil
	case "clear":
		cmd.Op = OpClearPenalty
		return oneInt(cmd, name, rest)
	default:
		return fmt.Errorf("%s: unknown action %q", cmd.Team, args[0])
	}
	return noArgs(name, rest)
}

func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: unexpected arguments %q", name, strings.Join(args, " "))
	}
	return nil
}

func oneInt(cmd *Command, name string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s: expected one number", name)
	}
	n, err := parseInt(name, args[0])
	if err != nil {
		return err
	}
	cmd.N, cmd.HasN = n, true
	return nil
}

func parseInt(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", name, arg)
	}
	return n, nil
}

// remainder returns line with its first n fields removed, keeping the
// spacing inside what is left.
func remainder(line string, n int) string {
	for i := 0; i < n; i++ {
		line = strings.TrimLeft(line, " \t")
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			return ""
		}
		line = line[end:]
	}
	return strings.TrimSpace(line)
}
