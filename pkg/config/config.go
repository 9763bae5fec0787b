// Package config loads the scoreboard runner's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/StreamnDad/streamn-scoreboard/pkg/events"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultSaveInterval = 10 * time.Second
)

// Config is the runner configuration. Zero values in a loaded file fall back
// to the defaults from Default.
type Config struct {
	OutputDirectory    string `yaml:"output_directory"`
	CLIExecutable      string `yaml:"cli_executable"`
	MainConfigPath     string `yaml:"main_config_path"`
	OverrideConfigPath string `yaml:"override_config_path"`

	// StatePath is the snapshot file restored at startup and saved
	// periodically. ArchivePath is the SQLite snapshot archive.
	StatePath   string `yaml:"state_path"`
	ArchivePath string `yaml:"archive_path"`

	LogLevel     string        `yaml:"log_level"`
	TickInterval time.Duration `yaml:"tick_interval"`
	SaveInterval time.Duration `yaml:"save_interval"`

	Clock                 ClockConfig     `yaml:"clock"`
	OvertimeEnabled       *bool           `yaml:"overtime_enabled"`
	DefaultPenaltySeconds int             `yaml:"default_penalty_seconds"`
	Teams                 TeamsConfig     `yaml:"teams"`
	EventActions          events.Bindings `yaml:"event_actions"`
}

type ClockConfig struct {
	Direction           string `yaml:"direction"`
	PeriodLengthSeconds int    `yaml:"period_length_seconds"`
}

type TeamsConfig struct {
	Home string `yaml:"home"`
	Away string `yaml:"away"`
}

func Default() *Config {
	overtime := true
	return &Config{
		LogLevel:     log.LogLevelInfo.String(),
		TickInterval: DefaultTickInterval,
		SaveInterval: DefaultSaveInterval,
		Clock: ClockConfig{
			Direction:           scoreboard.CountDown.String(),
			PeriodLengthSeconds: scoreboard.DefaultPeriodLength,
		},
		OvertimeEnabled:       &overtime,
		DefaultPenaltySeconds: scoreboard.DefaultPenaltyDuration,
		Teams: TeamsConfig{
			Home: scoreboard.DefaultHomeName,
			Away: scoreboard.DefaultAwayName,
		},
		EventActions: events.Bindings{},
	}
}

// Load reads the YAML file at path on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults restores defaults for fields a file explicitly zeroed.
func (c *Config) fillDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.TickInterval == 0 {
		c.TickInterval = d.TickInterval
	}
	if c.SaveInterval == 0 {
		c.SaveInterval = d.SaveInterval
	}
	if c.Clock.Direction == "" {
		c.Clock.Direction = d.Clock.Direction
	}
	if c.Clock.PeriodLengthSeconds == 0 {
		c.Clock.PeriodLengthSeconds = d.Clock.PeriodLengthSeconds
	}
	if c.OvertimeEnabled == nil {
		c.OvertimeEnabled = d.OvertimeEnabled
	}
	if c.DefaultPenaltySeconds == 0 {
		c.DefaultPenaltySeconds = d.DefaultPenaltySeconds
	}
	if c.EventActions == nil {
		c.EventActions = d.EventActions
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := scoreboard.ParseClockDirection(c.Clock.Direction); err != nil {
		errs = append(errs, err)
	}
	if c.TickInterval < 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if c.SaveInterval < 0 {
		errs = append(errs, fmt.Errorf("save_interval must be positive, got %s", c.SaveInterval))
	}
	if c.Clock.PeriodLengthSeconds < 0 {
		errs = append(errs, fmt.Errorf("clock.period_length_seconds must be positive, got %d", c.Clock.PeriodLengthSeconds))
	}
	if c.DefaultPenaltySeconds < 0 {
		errs = append(errs, fmt.Errorf("default_penalty_seconds must be positive, got %d", c.DefaultPenaltySeconds))
	}
	return errors.Join(errs...)
}

// Apply copies the configured settings onto s. The clock is reset so it
// starts from the configured period length.
func (c *Config) Apply(s *scoreboard.Scoreboard) {
	s.SetOutputDirectory(c.OutputDirectory)
	s.SetCLIExecutable(c.CLIExecutable)
	s.SetMainConfigPath(c.MainConfigPath)
	s.SetOverrideConfigPath(c.OverrideConfigPath)

	if direction, err := scoreboard.ParseClockDirection(c.Clock.Direction); err == nil {
		s.SetClockDirection(direction)
	}
	if c.Clock.PeriodLengthSeconds > 0 {
		s.SetPeriodLength(c.Clock.PeriodLengthSeconds)
	}
	s.ResetClock()
	if c.OvertimeEnabled != nil {
		s.SetOvertimeEnabled(*c.OvertimeEnabled)
	}
	if c.DefaultPenaltySeconds > 0 {
		s.SetDefaultPenaltyDuration(c.DefaultPenaltySeconds)
	}
	if c.Teams.Home != "" {
		s.SetName(scoreboard.Home, c.Teams.Home)
	}
	if c.Teams.Away != "" {
		s.SetName(scoreboard.Away, c.Teams.Away)
	}
}
