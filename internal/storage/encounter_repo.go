package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type EncounterRepo struct {
	db *sql.DB
}

func NewEncounterRepo(db *sql.DB) *EncounterRepo {
	return &EncounterRepo{db: db}
}

func (r *EncounterRepo) Insert(ctx context.Context, e *Encounter) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO encounters (hero_key, monster_name, outcome, damage_dealt, damage_taken, exp_awarded, gold_awarded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.HeroKey, e.MonsterName, e.Outcome, e.DamageDealt, e.DamageTaken, e.ExpAwarded, e.GoldAwarded)
	if err != nil {
		return 0, fmt.Errorf("encounter insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("encounter insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns the newest encounters first, up to limit.
func (r *EncounterRepo) ListRecent(ctx context.Context, heroKey string, limit int) ([]Encounter, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hero_key, monster_name, outcome, damage_dealt, damage_taken, exp_awarded, gold_awarded, fought_at
		FROM encounters
		WHERE hero_key = ?
		ORDER BY fought_at DESC, id DESC
		LIMIT ?
	`, heroKey, limit)
	if err != nil {
		return nil, fmt.Errorf("encounter list: %w", err)
	}
	defer rows.Close()

	var out []Encounter
	for rows.Next() {
		var e Encounter
		if err := rows.Scan(&e.ID, &e.HeroKey, &e.MonsterName, &e.Outcome,
			&e.DamageDealt, &e.DamageTaken, &e.ExpAwarded, &e.GoldAwarded, &e.FoughtAt); err != nil {
			return nil, fmt.Errorf("encounter scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Tally counts chronicled encounters per outcome.
func (r *EncounterRepo) Tally(ctx context.Context, heroKey string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*) FROM encounters WHERE hero_key = ? GROUP BY outcome
	`, heroKey)
	if err != nil {
		return nil, fmt.Errorf("encounter tally: %w", err)
	}
	defer rows.Close()

	tally := map[string]int{}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("encounter tally scan: %w", err)
		}
		tally[outcome] = n
	}
	return tally, rows.Err()
}
