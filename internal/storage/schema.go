package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS heroes (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT 'Adventurer',
			level INTEGER DEFAULT 1,
			exp INTEGER DEFAULT 0,
			gold INTEGER DEFAULT 0,

			stat_str INTEGER DEFAULT 10,
			stat_dex INTEGER DEFAULT 10,
			stat_con INTEGER DEFAULT 10,
			stat_int INTEGER DEFAULT 10,
			stat_wis INTEGER DEFAULT 10,
			stat_cha INTEGER DEFAULT 10,

			weapon_name TEXT DEFAULT '',
			weapon_damage TEXT DEFAULT '',
			weapon_effect TEXT DEFAULT '',
			inventory TEXT DEFAULT '[]'
		);`,
		`CREATE TABLE IF NOT EXISTS encounters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hero_key TEXT NOT NULL,
			monster_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			damage_dealt INTEGER DEFAULT 0,
			damage_taken INTEGER DEFAULT 0,
			exp_awarded INTEGER DEFAULT 0,
			gold_awarded INTEGER DEFAULT 0,
			fought_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(hero_key) REFERENCES heroes(key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_encounters_hero_key_fought_at ON encounters(hero_key, fought_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
