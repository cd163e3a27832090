package engine

// Config carries the fixed game constants. It is built once at startup and
// injected into combatants and the resolver; the engine never reads files or
// globals.
type Config struct {
	// Base rates, in percent.
	BaseHitChance      float64
	BaseEvasionRate    float64
	BaseCriticalChance float64
	CriticalMultiplier float64

	// Player resource growth.
	BaseHP     int
	HPPerLevel int
	BaseMP     int
	MPPerLevel int

	StartingGold int

	Curve Curve
}

// DefaultConfig returns the standard rates.
func DefaultConfig() Config {
	return Config{
		BaseHitChance:      80,
		BaseEvasionRate:    10,
		BaseCriticalChance: 5,
		CriticalMultiplier: 1.5,
		BaseHP:             30,
		HPPerLevel:         10,
		BaseMP:             10,
		MPPerLevel:         5,
		StartingGold:       25,
		Curve:              DefaultCurve(),
	}
}
