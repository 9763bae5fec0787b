package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the archive database at dbPath, creating it if
// needed, and applies the embedded migrations in file name order.
func NewSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	const dir = "migrations/sqlite"
	entries, err := fs.ReadDir(sqliteMigrations, dir)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(sqliteMigrations, migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, gameID uuid.UUID, snap Snapshot) (int64, error) {
	data, err := compress(snap.Data)
	if err != nil {
		return 0, err
	}

	q := `
	INSERT INTO snapshots (game_id, taken_at, home_name, away_name, home_score, away_score, data)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, q, gameID.String(), snap.TakenAt.UnixMilli(),
		snap.HomeName, snap.AwayName, snap.HomeScore, snap.AwayScore, data)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get snapshot id: %v", err)
	}
	return id, nil
}

func (r *SQLiteRepository) LoadLatestSnapshot(ctx context.Context, gameID uuid.UUID) (*Snapshot, error) {
	snapshots, err := r.ListSnapshots(ctx, gameID, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, &ErrNotFound{}
	}
	return &snapshots[0], nil
}

func (r *SQLiteRepository) ListSnapshots(ctx context.Context, gameID uuid.UUID, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	q := `
	SELECT id, game_id, taken_at, home_name, away_name, home_score, away_score, data
	FROM snapshots
	WHERE game_id = ?
	ORDER BY taken_at DESC, id DESC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, gameID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %v", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snap Snapshot
		var rawGameID string
		var takenAt int64
		var data []byte
		if err := rows.Scan(&snap.ID, &rawGameID, &takenAt, &snap.HomeName, &snap.AwayName,
			&snap.HomeScore, &snap.AwayScore, &data); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %v", err)
		}
		if snap.GameID, err = uuid.Parse(rawGameID); err != nil {
			return nil, fmt.Errorf("failed to parse game id %q: %v", rawGameID, err)
		}
		snap.TakenAt = time.UnixMilli(takenAt)
		if snap.Data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("failed to read snapshot %d: %v", snap.ID, err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %v", err)
	}

	return snapshots, nil
}

func (r *SQLiteRepository) ListGames(ctx context.Context) ([]Game, error) {
	q := `
	SELECT game_id, MIN(taken_at), MAX(taken_at), COUNT(*)
	FROM snapshots
	GROUP BY game_id
	ORDER BY MAX(taken_at) DESC;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %v", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var game Game
		var rawGameID string
		var first, last int64
		if err := rows.Scan(&rawGameID, &first, &last, &game.SnapshotCount); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		if game.ID, err = uuid.Parse(rawGameID); err != nil {
			return nil, fmt.Errorf("failed to parse game id %q: %v", rawGameID, err)
		}
		game.FirstTakenAt = time.UnixMilli(first)
		game.LastTakenAt = time.UnixMilli(last)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %v", err)
	}

	return games, nil
}
