package events

import (
	"testing"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name string
		want EventType
	}{
		{name: "HOME_GOAL", want: HomeGoal},
		{name: "away_goal", want: AwayGoal},
		{name: " Period_Change ", want: PeriodChange},
		{name: "GAME_START", want: GameStart},
		{name: "game_end", want: GameEnd},
		{name: "OVERTIME", want: None},
		{name: "", want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEventType(tt.name))
		})
	}
	assert.Equal(t, "NONE", None.String())
	assert.Equal(t, AwayGoal, GoalEvent(scoreboard.Away))
	for _, e := range All() {
		assert.Equal(t, e, ParseEventType(e.String()))
	}
}

func TestBinding_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Binding
	}{
		{
			name: "list with subcommand",
			doc:  `[publish, trigger, --team, "{home_name}"]`,
			want: Binding{Command: "publish", Subcommand: "trigger", Args: []string{"--team", "{home_name}"}},
		},
		{
			name: "list without subcommand",
			doc:  `[notify, --event, goal]`,
			want: Binding{Command: "notify", Args: []string{"--event", "goal"}},
		},
		{
			name: "command only",
			doc:  `[notify]`,
			want: Binding{Command: "notify", Args: []string{}},
		},
		{
			name: "mapping with defaults",
			doc:  `{args: ["--score", "{away_score}"]}`,
			want: Binding{Command: "publish", Subcommand: "trigger", Args: []string{"--score", "{away_score}"}},
		},
		{
			name: "mapping with empty subcommand",
			doc:  `{command: clip, subcommand: "", extra_args: [--dry-run]}`,
			want: Binding{Command: "clip", ExtraArgs: []string{"--dry-run"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Binding
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &b))
			assert.Equal(t, tt.want, b)
		})
	}

	var b Binding
	assert.Error(t, yaml.Unmarshal([]byte(`"publish trigger"`), &b))
}

func TestBindings_UnmarshalYAML(t *testing.T) {
	doc := `
home_goal: [publish, trigger]
AWAY_GOAL:
  command: publish
  args: ["--team", "{away_name}"]
GAME_END: []
HALFTIME: [publish]
`
	var bs Bindings
	require.NoError(t, yaml.Unmarshal([]byte(doc), &bs))

	assert.Len(t, bs, 2)
	assert.Equal(t, "publish", bs[HomeGoal].Command)
	assert.Equal(t, []string{"--team", "{away_name}"}, bs[AwayGoal].Args)
	_, ok := bs[GameEnd]
	assert.False(t, ok, "empty lists are skipped")
}

func TestExpandTokens(t *testing.T) {
	s := scoreboard.New()
	s.SetName(scoreboard.Home, "Eagles")
	s.SetName(scoreboard.Away, "Hawks")
	s.SetScore(scoreboard.Home, 2)
	s.SetScore(scoreboard.Away, 1)
	s.SetShots(scoreboard.Home, 14)
	s.SetShots(scoreboard.Away, 9)
	s.SetPeriod(4)
	s.SetClockTenths(7505)

	got := ExpandTokens("{event} {home_name} {home_score}-{away_score} {away_name} {period} {clock} {home_shots}/{away_shots}", HomeGoal, s)
	assert.Equal(t, "HOME_GOAL Eagles 2-1 Hawks OT 12:30 14/9", got)
	assert.Equal(t, "{unknown}", ExpandTokens("{unknown}", HomeGoal, s))
}

func TestBinding_Argv(t *testing.T) {
	s := scoreboard.New()
	s.SetScore(scoreboard.Home, 3)

	tests := []struct {
		name    string
		binding Binding
		event   EventType
		want    []string
	}{
		{
			name:    "default args",
			binding: DefaultBinding(),
			event:   GameStart,
			want:    []string{"publish", "trigger", "--event", "GAME_START"},
		},
		{
			name:    "template",
			binding: Binding{Command: "publish", Subcommand: "trigger", Args: []string{"--score", "{home_score}"}},
			event:   HomeGoal,
			want:    []string{"publish", "trigger", "--score", "3"},
		},
		{
			name:    "extra args follow",
			binding: Binding{Command: "clip", ExtraArgs: []string{"--dry-run"}},
			event:   PeriodChange,
			want:    []string{"clip", "--event", "PERIOD_CHANGE", "--dry-run"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.binding.Argv(tt.event, s))
		})
	}
}

func TestDispatcher_Fire(t *testing.T) {
	d := NewDispatcher(NewDispatcherOptions{
		Bindings: Bindings{HomeGoal: DefaultBinding()},
	})
	s := scoreboard.New()

	_, ok := d.Fire(s, AwayGoal)
	assert.False(t, ok, "unbound events are ignored")
	assert.Equal(t, 0, s.ActionLog().Len())

	_, ok = d.Fire(s, HomeGoal)
	assert.False(t, ok, "no executable configured")
	assert.Equal(t, []string{"HOME_GOAL failed (no CLI configured)"}, s.ActionLog().Entries())

	s.SetCLIExecutable("/usr/local/bin/streamn")
	inv, ok := d.Fire(s, HomeGoal)
	require.True(t, ok)
	assert.Equal(t, Invocation{
		Event:      HomeGoal,
		Executable: "/usr/local/bin/streamn",
		Args:       []string{"publish", "trigger", "--event", "HOME_GOAL"},
	}, inv)
	assert.Equal(t, "/usr/local/bin/streamn publish trigger --event HOME_GOAL", inv.String())
	assert.Equal(t, 2, s.ActionLog().Len())

	invs := d.FireAll(s, []EventType{HomeGoal, GameEnd, HomeGoal})
	assert.Len(t, invs, 2)
	assert.True(t, d.Bound(HomeGoal))
	assert.False(t, d.Bound(GameEnd))
}
