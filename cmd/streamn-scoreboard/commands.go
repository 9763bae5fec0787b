package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/StreamnDad/streamn-scoreboard/pkg/repositories"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/snapshot"
	"github.com/StreamnDad/streamn-scoreboard/pkg/textfiles"
)

func exportAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	if cfg.OutputDirectory == "" {
		return textfiles.ErrNoOutputDirectory
	}

	s := scoreboard.New()
	restore(s, cfg)
	if err := textfiles.WriteAll(s); err != nil {
		return fmt.Errorf("failed to export text files: %v", err)
	}
	fmt.Fprintf(cCtx.App.Writer, "Exported %d files to %s\n", len(textfiles.Files()), cfg.OutputDirectory)
	return nil
}

func snapshotAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	s := scoreboard.New()
	restore(s, cfg)
	_, err = cCtx.App.Writer.Write(snapshot.Encode(s.State()))
	return err
}

func archiveAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	if cfg.ArchivePath == "" {
		return fmt.Errorf("no archive configured; set archive_path or --%s", archiveFlag)
	}
	if _, err := os.Stat(cfg.ArchivePath); err != nil {
		return fmt.Errorf("failed to open archive: %v", err)
	}

	ctx := cCtx.Context
	repo, err := repositories.NewSQLiteRepository(ctx, cfg.ArchivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %v", err)
	}
	defer repo.Close(ctx)

	out := cCtx.App.Writer
	rawGameID := cCtx.String("game")
	if rawGameID == "" {
		games, err := repo.ListGames(ctx)
		if err != nil {
			return err
		}
		return printGames(out, games)
	}

	gameID, err := uuid.Parse(rawGameID)
	if err != nil {
		return fmt.Errorf("invalid game id %q: %v", rawGameID, err)
	}

	if cCtx.Bool("latest") {
		snap, err := repo.LoadLatestSnapshot(ctx, gameID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return fmt.Errorf("game %s has no snapshots", gameID)
			}
			return err
		}
		_, err = out.Write(snap.Data)
		return err
	}

	snapshots, err := repo.ListSnapshots(ctx, gameID, cCtx.Int("limit"))
	if err != nil {
		return err
	}
	return printSnapshots(out, snapshots)
}

func printGames(out io.Writer, games []repositories.Game) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tFIRST\tLAST\tSNAPSHOTS")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", g.ID,
			g.FirstTakenAt.Format(time.DateTime), g.LastTakenAt.Format(time.DateTime), g.SnapshotCount)
	}
	return w.Flush()
}

func printSnapshots(out io.Writer, snapshots []repositories.Snapshot) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTAKEN\tHOME\tAWAY\tSCORE")
	for _, snap := range snapshots {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d-%d\n", snap.ID, snap.TakenAt.Format(time.DateTime),
			snap.HomeName, snap.AwayName, snap.HomeScore, snap.AwayScore)
	}
	return w.Flush()
}
