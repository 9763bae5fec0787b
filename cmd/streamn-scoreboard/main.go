package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/StreamnDad/streamn-scoreboard/pkg/config"
	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/version"
)

const (
	configFlag    = "config"
	logLevelFlag  = "log-level"
	outputDirFlag = "output-dir"
	stateFlag     = "state"
	archiveFlag   = "archive"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "streamn-scoreboard",
		Usage:   scoreboard.Description() + " game state engine",
		Version: version.Get(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
				EnvVars: []string{"SCOREBOARD_CONFIG"},
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Log level (error, warn, info, debug, trace); overrides the config",
			},
			&cli.StringFlag{
				Name:    outputDirFlag,
				Aliases: []string{"o"},
				Usage:   "Directory for the per-field text files; overrides the config",
			},
			&cli.StringFlag{
				Name:  stateFlag,
				Usage: "Snapshot file restored at startup and saved while running; overrides the config",
			},
			&cli.StringFlag{
				Name:  archiveFlag,
				Usage: "SQLite snapshot archive; overrides the config",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the scoreboard, reading commands from standard input",
				Action: runAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "resume",
						Usage: "Keep archiving under the most recent game instead of starting a new one",
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Restore the saved state and write the text files once",
				Action: exportAction,
			},
			{
				Name:   "snapshot",
				Usage:  "Restore the saved state and print it as a snapshot",
				Action: snapshotAction,
			},
			{
				Name:   "archive",
				Usage:  "List archived games, or the snapshots of one game",
				Action: archiveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "game",
						Usage: "Game id whose snapshots are listed",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of snapshots to list; 0 lists all",
					},
					&cli.BoolFlag{
						Name:  "latest",
						Usage: "Print the latest snapshot of the game instead of listing",
					},
				},
			},
		},
	}
}

// loadConfig reads the configuration named by the global flags, applies the
// flag overrides and installs the default logger.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := cCtx.String(configFlag); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := cCtx.String(logLevelFlag); v != "" {
		cfg.LogLevel = v
	}
	if v := cCtx.String(outputDirFlag); v != "" {
		cfg.OutputDirectory = v
	}
	if v := cCtx.String(stateFlag); v != "" {
		cfg.StatePath = v
	}
	if v := cCtx.String(archiveFlag); v != "" {
		cfg.ArchivePath = v
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %v", err)
	}
	// standard output is reserved for command results
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Debug("Log level set to %s", parsedLogLevel)

	return cfg, nil
}
