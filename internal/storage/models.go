package storage

import "time"

// Hero is the persisted player record. Bars are not stored: a loaded hero
// starts the session at full HP/MP.
type Hero struct {
	Key   string
	Name  string
	Level int
	Exp   int
	Gold  int

	StatSTR int
	StatDEX int
	StatCON int
	StatINT int
	StatWIS int
	StatCHA int

	WeaponName   string
	WeaponDamage string
	WeaponEffect string
	// Inventory is a JSON array of item records.
	Inventory string
}

// Encounter outcomes.
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
	OutcomeFled    = "fled"
)

// Encounter is one chronicled fight.
type Encounter struct {
	ID          int64
	HeroKey     string
	MonsterName string
	Outcome     string
	DamageDealt int
	DamageTaken int
	ExpAwarded  int
	GoldAwarded int
	FoughtAt    time.Time
}
