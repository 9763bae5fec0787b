// Package events names the moments of a game that external tooling can react
// to and turns a configured binding into the command line that announces it.
package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"gopkg.in/yaml.v3"
)

type EventType int

const (
	None EventType = iota
	HomeGoal
	AwayGoal
	PeriodChange
	GameStart
	GameEnd
)

var eventNames = map[EventType]string{
	HomeGoal:     "HOME_GOAL",
	AwayGoal:     "AWAY_GOAL",
	PeriodChange: "PERIOD_CHANGE",
	GameStart:    "GAME_START",
	GameEnd:      "GAME_END",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "NONE"
}

// All lists every event in declaration order.
func All() []EventType {
	return []EventType{HomeGoal, AwayGoal, PeriodChange, GameStart, GameEnd}
}

// ParseEventType matches an event name case-insensitively. Unknown names
// return None.
func ParseEventType(name string) EventType {
	name = strings.ToUpper(strings.TrimSpace(name))
	for e, n := range eventNames {
		if n == name {
			return e
		}
	}
	return None
}

// GoalEvent returns the goal event for a team.
func GoalEvent(t scoreboard.Team) EventType {
	if t == scoreboard.Away {
		return AwayGoal
	}
	return HomeGoal
}

const (
	DefaultCommand    = "publish"
	DefaultSubcommand = "trigger"
)

// Binding describes the command line announcing one event. Args is a
// template whose tokens are expanded against the scoreboard; when it is
// empty the event is passed as --event NAME.
type Binding struct {
	Command    string
	Subcommand string
	Args       []string
	ExtraArgs  []string
}

func DefaultBinding() Binding {
	return Binding{
		Command:    DefaultCommand,
		Subcommand: DefaultSubcommand,
	}
}

// UnmarshalYAML accepts either an argv list or a mapping.
//
//	HOME_GOAL: [publish, trigger, --team, "{home_name}"]
//	AWAY_GOAL: {command: publish, args: ["--score", "{away_score}"]}
//
// In the list form the second element is the subcommand unless it starts
// with "-". An empty list leaves the binding without a command.
func (b *Binding) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var argv []string
		if err := value.Decode(&argv); err != nil {
			return fmt.Errorf("failed to decode event action list: %v", err)
		}
		*b = Binding{}
		if len(argv) == 0 {
			return nil
		}
		b.Command = strings.TrimSpace(argv[0])
		rest := argv[1:]
		if len(rest) > 0 {
			if second := strings.TrimSpace(rest[0]); second != "" && !strings.HasPrefix(second, "-") {
				b.Subcommand = second
				rest = rest[1:]
			}
		}
		b.Args = rest
		return nil

	case yaml.MappingNode:
		var raw struct {
			Command    string   `yaml:"command"`
			Subcommand *string  `yaml:"subcommand"`
			Args       []string `yaml:"args"`
			ExtraArgs  []string `yaml:"extra_args"`
		}
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode event action: %v", err)
		}
		*b = DefaultBinding()
		if command := strings.TrimSpace(raw.Command); command != "" {
			b.Command = command
		}
		if raw.Subcommand != nil {
			b.Subcommand = strings.TrimSpace(*raw.Subcommand)
		}
		b.Args = raw.Args
		b.ExtraArgs = raw.ExtraArgs
		return nil

	default:
		return fmt.Errorf("event action at line %d must be a list or a mapping", value.Line)
	}
}

// Argv builds the arguments passed to the CLI executable for event.
func (b Binding) Argv(event EventType, s *scoreboard.Scoreboard) []string {
	argv := []string{b.Command}
	if b.Subcommand != "" {
		argv = append(argv, b.Subcommand)
	}
	if len(b.Args) > 0 {
		for _, arg := range b.Args {
			argv = append(argv, ExpandTokens(arg, event, s))
		}
	} else {
		argv = append(argv, "--event", event.String())
	}
	return append(argv, b.ExtraArgs...)
}

// ExpandTokens replaces the {event}, {home_name}, {away_name},
// {home_score}, {away_score}, {home_shots}, {away_shots}, {period} and
// {clock} tokens in arg with live values.
func ExpandTokens(arg string, event EventType, s *scoreboard.Scoreboard) string {
	return strings.NewReplacer(
		"{event}", event.String(),
		"{home_name}", s.Name(scoreboard.Home),
		"{away_name}", s.Name(scoreboard.Away),
		"{home_score}", strconv.Itoa(s.Score(scoreboard.Home)),
		"{away_score}", strconv.Itoa(s.Score(scoreboard.Away)),
		"{period}", s.FormatPeriod(),
		"{clock}", s.FormatClock(),
		"{home_shots}", strconv.Itoa(s.Shots(scoreboard.Home)),
		"{away_shots}", strconv.Itoa(s.Shots(scoreboard.Away)),
	).Replace(arg)
}

// Bindings maps events to their bindings. In YAML it is a mapping keyed by
// event name; unknown names and empty lists are skipped.
type Bindings map[EventType]Binding

func (bs *Bindings) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]Binding{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := Bindings{}
	for name, b := range raw {
		event := ParseEventType(name)
		if event == None {
			log.Warn("Ignoring action for unknown event %q", name)
			continue
		}
		if b.Command == "" {
			continue
		}
		out[event] = b
	}
	*bs = out
	return nil
}
