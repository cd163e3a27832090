package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainHeroKey = "main_hero"

type HeroRepo struct {
	db *sql.DB
}

func NewHeroRepo(db *sql.DB) *HeroRepo {
	return &HeroRepo{db: db}
}

func (r *HeroRepo) Get(ctx context.Context, key string) (*Hero, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, name, level, exp, gold,
			stat_str, stat_dex, stat_con, stat_int, stat_wis, stat_cha,
			weapon_name, weapon_damage, weapon_effect, inventory
		FROM heroes WHERE key = ?`, key)

	var h Hero
	err := row.Scan(&h.Key, &h.Name, &h.Level, &h.Exp, &h.Gold,
		&h.StatSTR, &h.StatDEX, &h.StatCON, &h.StatINT, &h.StatWIS, &h.StatCHA,
		&h.WeaponName, &h.WeaponDamage, &h.WeaponEffect, &h.Inventory)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("hero get: %w", err)
	}
	return &h, nil
}

// GetOrCreateMain returns the single hero, creating the default row on first
// run.
func (r *HeroRepo) GetOrCreateMain(ctx context.Context) (*Hero, error) {
	h, err := r.Get(ctx, MainHeroKey)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO heroes (key) VALUES (?)`, MainHeroKey); err != nil {
		return nil, fmt.Errorf("hero insert: %w", err)
	}
	return r.Get(ctx, MainHeroKey)
}

func (r *HeroRepo) Update(ctx context.Context, h *Hero) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE heroes
		SET name = ?, level = ?, exp = ?, gold = ?,
			stat_str = ?, stat_dex = ?, stat_con = ?, stat_int = ?, stat_wis = ?, stat_cha = ?,
			weapon_name = ?, weapon_damage = ?, weapon_effect = ?, inventory = ?
		WHERE key = ?
	`, h.Name, h.Level, h.Exp, h.Gold,
		h.StatSTR, h.StatDEX, h.StatCON, h.StatINT, h.StatWIS, h.StatCHA,
		h.WeaponName, h.WeaponDamage, h.WeaponEffect, h.Inventory, h.Key)
	if err != nil {
		return fmt.Errorf("hero update: %w", err)
	}
	return nil
}

// Delete removes the hero and its chronicle.
func (r *HeroRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM encounters WHERE hero_key = ?`, key); err != nil {
		return fmt.Errorf("hero delete encounters: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM heroes WHERE key = ?`, key); err != nil {
		return fmt.Errorf("hero delete: %w", err)
	}
	return nil
}
