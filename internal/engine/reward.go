package engine

// VictoryResult reports what the player gained from a defeated monster.
type VictoryResult struct {
	ExpAwarded  int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// AwardVictory applies the monster's exp reward and a gold roll to the
// player. Level-ups refill the player's bars via GainExperience.
func AwardVictory(p *Player, m *Monster, rng Source) VictoryResult {
	if rng == nil {
		rng = SystemSource()
	}
	res := VictoryResult{
		ExpAwarded:  m.BaseExp(),
		LevelBefore: p.Level(),
	}
	res.LevelUp = p.GainExperience(m.BaseExp())
	res.LevelAfter = p.Level()

	res.GoldAwarded = m.BaseExp()/4 + rng.IntN(6)
	p.AddGold(res.GoldAwarded)
	return res
}

// RollDrop decides whether the defeated monster yields an item.
func RollDrop(m *Monster, rng Source) bool {
	if rng == nil {
		rng = SystemSource()
	}
	return rng.Float64() < m.DropChance()
}
