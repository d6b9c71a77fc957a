//go:generate mockgen -source=store.go -destination=store_mock.go -package=reply
package reply

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gathering/internal/app/errors"
	"gathering/internal/app/reply/migrations"
	"gathering/internal/config/logger"
)

const (
	migrationTable = "schema_migrations"
	migrateUp      = "-- +migrate Up"
	migrateDown    = "-- +migrate Down"
)

// Store persists guest replies
type Store interface {
	Save(ctx context.Context, r Reply) error
	List(ctx context.Context) ([]Reply, error)
	Close() error
}

// sqliteStore keeps replies in a SQLite file
type sqliteStore struct {
	db  *sql.DB
	log logger.Logger
}

// OpenStore opens the SQLite reply store at path and applies the embedded migrations
func OpenStore(path string, log logger.Logger) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.ErrStorageNotConfigured
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenStorage, err)
	}

	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenStorage, err)
	}

	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenStorage, err)
	}

	s := &sqliteStore{db: db, log: log.WithComponent("STORE")}
	s.log.Info().Msgf("Reply store opened at %s", path)

	return s, nil
}

// Save inserts one reply
func (s *sqliteStore) Save(ctx context.Context, r Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	extra := "{}"

	if len(r.Extra) > 0 {
		data, err := json.Marshal(r.Extra)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrFailedToSaveReply, err)
		}

		extra = string(data)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO replies (id, pickup_time, message, extra, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID,
		r.PickupTime,
		r.Message,
		extra,
		r.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToSaveReply, err)
	}

	s.log.Debug().Str("id", r.ID).Msg("Reply saved")

	return nil
}

// List returns every reply, newest first
func (s *sqliteStore) List(ctx context.Context) ([]Reply, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pickup_time, message, extra, created_at FROM replies ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	defer rows.Close()

	replies := make([]Reply, 0)

	for rows.Next() {
		var (
			r         Reply
			extra     string
			createdAt int64
		)

		if err := rows.Scan(&r.ID, &r.PickupTime, &r.Message, &extra, &createdAt); err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}

		if extra != "" && extra != "{}" {
			if err := json.Unmarshal([]byte(extra), &r.Extra); err != nil {
				s.log.Warn().Err(err).Msgf("Ignoring malformed extra fields of reply %s", r.ID)
			}
		}

		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		replies = append(replies, r)
	}

	return replies, rows.Err()
}

// Close closes the database handle
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// applyMigrations runs each embedded migration file at most once, in name order
func applyMigrations(db *sql.DB, migrationFS fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var files []string

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)

	for _, file := range files {
		var found int

		err := db.QueryRow(`SELECT 1 FROM `+migrationTable+` WHERE name = ?`, file).Scan(&found)
		if err == nil {
			continue
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", file, err)
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if err := applyMigration(db, file, upSection(string(content))); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(db *sql.DB, name, up string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}

	if _, err := tx.Exec(up); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", name, err)
	}

	if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`, name, time.Now().UTC().UnixMilli()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}

	return tx.Commit()
}

// upSection returns the SQL between the Up and Down markers
func upSection(content string) string {
	start := strings.Index(content, migrateUp)
	if start == -1 {
		return content
	}

	content = content[start+len(migrateUp):]

	if end := strings.Index(content, migrateDown); end != -1 {
		content = content[:end]
	}

	return content
}
