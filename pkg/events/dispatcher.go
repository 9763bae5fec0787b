package events

import (
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

// Invocation is a resolved event action: the executable and its arguments.
type Invocation struct {
	Event      EventType
	Executable string
	Args       []string
}

func (i Invocation) String() string {
	return strings.Join(append([]string{i.Executable}, i.Args...), " ")
}

// Dispatcher resolves fired events into invocations of the scoreboard's CLI
// executable. Invocations are logged and recorded in the action log; running
// them is left to the caller.
type Dispatcher struct {
	bindings Bindings
}

type NewDispatcherOptions struct {
	Bindings Bindings
}

func NewDispatcher(opts NewDispatcherOptions) *Dispatcher {
	bindings := opts.Bindings
	if bindings == nil {
		bindings = Bindings{}
	}
	return &Dispatcher{
		bindings: bindings,
	}
}

// Bound reports whether event has a configured action.
func (d *Dispatcher) Bound(event EventType) bool {
	_, ok := d.bindings[event]
	return ok
}

// Fire resolves event against the current scoreboard. It returns false when
// the event has no binding or no CLI executable is configured.
func (d *Dispatcher) Fire(s *scoreboard.Scoreboard, event EventType) (Invocation, bool) {
	binding, ok := d.bindings[event]
	if !ok {
		return Invocation{}, false
	}

	executable := strings.TrimSpace(s.CLIExecutable())
	if executable == "" {
		log.Warn("Skipping %s action: no CLI executable configured", event)
		s.AddActionLog("%s failed (no CLI configured)", event)
		return Invocation{}, false
	}

	inv := Invocation{
		Event:      event,
		Executable: executable,
		Args:       binding.Argv(event, s),
	}
	log.Info("Event %s: %s", event, inv)
	s.AddActionLog("%s: %s", event, strings.Join(inv.Args, " "))
	return inv, true
}

// FireAll fires each event in order and returns the invocations produced.
func (d *Dispatcher) FireAll(s *scoreboard.Scoreboard, events []EventType) []Invocation {
	var out []Invocation
	for _, event := range events {
		if inv, ok := d.Fire(s, event); ok {
			out = append(out, inv)
		}
	}
	return out
}
