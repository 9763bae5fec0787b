package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StreamnDad/streamn-scoreboard/pkg/config"
	"github.com/StreamnDad/streamn-scoreboard/pkg/repositories"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
	"github.com/StreamnDad/streamn-scoreboard/pkg/snapshot"
	"github.com/StreamnDad/streamn-scoreboard/pkg/textfiles"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"streamn-scoreboard"}, args...))
	return out.String(), err
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, textfiles.ScoreFile(scoreboard.Home)), []byte("3"), 0644))
	statePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(statePath, []byte(`{"away_score": 2}`), 0644))

	cfg := config.Default()
	cfg.OutputDirectory = dir
	cfg.StatePath = statePath
	cfg.Teams.Home = "Eagles"

	s := scoreboard.New()
	s.SetShots(scoreboard.Away, 9)
	restore(s, cfg)

	assert.Equal(t, 3, s.Score(scoreboard.Home), "text files are read")
	assert.Equal(t, 2, s.Score(scoreboard.Away), "the state file is merged last")
	assert.Equal(t, 0, s.Shots(scoreboard.Away), "the record is reset first")
	assert.Equal(t, "Eagles", s.Name(scoreboard.Home))
	assert.Equal(t, dir, s.OutputDirectory())
}

func TestRestore_NothingToRead(t *testing.T) {
	cfg := config.Default()
	cfg.StatePath = filepath.Join(t.TempDir(), "missing.json")
	cfg.Clock.PeriodLengthSeconds = 600

	s := scoreboard.New()
	restore(s, cfg)
	assert.Equal(t, 6000, s.ClockTenths())
}

func TestRun(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	cfg := config.Default()
	cfg.StatePath = statePath
	cfg.TickInterval = 10 * time.Millisecond
	cfg.SaveInterval = time.Hour

	s := scoreboard.New()
	restore(s, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err := run(ctx, runOptions{
		Scoreboard: s,
		Config:     cfg,
		Input:      strings.NewReader("home goal\naway shot\naway shot\nhome name Eagles\n"),
	})
	require.NoError(t, err)

	saved := scoreboard.New()
	require.NoError(t, snapshot.Load(saved, statePath), "the final save writes the state file")
	assert.Equal(t, 1, saved.Score(scoreboard.Home))
	assert.Equal(t, 2, saved.Shots(scoreboard.Away))
	assert.Equal(t, "Eagles", saved.Name(scoreboard.Home))
}

func TestApp_Snapshot(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	s := scoreboard.New()
	s.SetScore(scoreboard.Home, 4)
	require.NoError(t, snapshot.Save(s, statePath))

	out, err := runApp(t, "--state", statePath, "snapshot")
	require.NoError(t, err)
	assert.Contains(t, out, `"home_score": 4,`)
	assert.True(t, strings.HasPrefix(out, "{\n"))
}

func TestApp_Export(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(t.TempDir(), "state.json")
	s := scoreboard.New()
	s.SetName(scoreboard.Away, "Hawks")
	require.NoError(t, snapshot.Save(s, statePath))

	_, err := runApp(t, "--state", statePath, "--output-dir", dir, "export")
	require.NoError(t, err)

	name, err := os.ReadFile(filepath.Join(dir, textfiles.NameFile(scoreboard.Away)))
	require.NoError(t, err)
	assert.Equal(t, "Hawks", string(name))

	_, err = runApp(t, "export")
	assert.ErrorIs(t, err, textfiles.ErrNoOutputDirectory)
}

func TestApp_Archive(t *testing.T) {
	ctx := context.Background()
	archivePath := filepath.Join(t.TempDir(), "archive.db")
	gameID := uuid.New()

	repo, err := repositories.NewSQLiteRepository(ctx, archivePath)
	require.NoError(t, err)
	s := scoreboard.New()
	s.SetScore(scoreboard.Home, 5)
	_, err = repo.SaveSnapshot(ctx, gameID, repositories.Snapshot{
		TakenAt:   time.Now(),
		HomeName:  s.Name(scoreboard.Home),
		AwayName:  s.Name(scoreboard.Away),
		HomeScore: 5,
		Data:      snapshot.Encode(s.State()),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close(ctx))

	out, err := runApp(t, "--archive", archivePath, "archive")
	require.NoError(t, err)
	assert.Contains(t, out, gameID.String())

	out, err = runApp(t, "--archive", archivePath, "archive", "--game", gameID.String())
	require.NoError(t, err)
	assert.Contains(t, out, "5-0")

	out, err = runApp(t, "--archive", archivePath, "archive", "--game", gameID.String(), "--latest")
	require.NoError(t, err)
	assert.Contains(t, out, `"home_score": 5,`)

	_, err = runApp(t, "--archive", archivePath, "archive", "--game", uuid.NewString(), "--latest")
	assert.Error(t, err)

	_, err = runApp(t, "--archive", archivePath, "archive", "--game", "not-a-uuid")
	assert.Error(t, err)

	_, err = runApp(t, "archive")
	assert.Error(t, err, "an archive path is required")
}

func TestApp_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0644))

	_, err := runApp(t, "--config", path, "snapshot")
	assert.Error(t, err)
}
