package engine

import "fmt"

// FallbackMonster is the deterministic stand-in used whenever monster
// generation fails or returns garbage. It scales with player level so a
// broken generator never stalls progression.
func FallbackMonster(playerLevel int, cfg Config) *Monster {
	if playerLevel < 1 {
		playerLevel = 1
	}
	spec := MonsterSpec{
		Name:        "Feral Rat",
		Description: fmt.Sprintf("A mangy rat the size of a dog, emboldened by the level-%d scent of its prey.", playerLevel),
		HP:          8 + 4*playerLevel,
		BaseExp:     15 * playerLevel,
		DropChance:  0.1,
		Stats: map[Ability]int{
			AbilitySTR: 8 + playerLevel,
			AbilityDEX: 12,
			AbilityCON: 8,
		},
		SpecialAbilities: []string{"Gnaw"},
	}
	m, err := NewMonster(spec, cfg)
	if err != nil {
		// Unreachable: the spec above is always valid.
		panic(err)
	}
	return m
}

// FallbackAction is substituted when action generation fails or produces an
// unrecognized type. It always targets the player.
func FallbackAction() MonsterAction {
	return MonsterAction{
		Type:        ActionAttack,
		Description: "The monster lunges forward with a snarl.",
	}
}
