package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default save location, ~/.llm-text-rpg.db.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".llm-text-rpg.db"), nil
}

// ResolveDBPath honors the LLMRPG_DB override, falling back to the default.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("LLMRPG_DB"); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// Open opens (creating if missing) the SQLite database at path and runs the
// schema migration.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
