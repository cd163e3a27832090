package gen

import (
	"fmt"
	"strings"
)

// tierForLevel maps player level to the difficulty wording fed to the model.
func tierForLevel(level int) string {
	switch {
	case level <= 2:
		return "feeble"
	case level <= 5:
		return "dangerous"
	case level <= 9:
		return "deadly"
	default:
		return "nightmarish"
	}
}

func monsterPrompt(playerLevel int, hint string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the bestiary of a dark-fantasy RPG. Invent one %s monster for a level %d adventurer.\n", tierForLevel(playerLevel), playerLevel)
	if hint = strings.TrimSpace(hint); hint != "" {
		fmt.Fprintf(&b, "Theme hint: %s\n", hint)
	}
	b.WriteString("Respond ONLY with a valid JSON object with these fields:\n")
	b.WriteString(`{"name": string, "description": string, "hp": positive number, "baseExp": non-negative number, "dropChance": number 0..1, "stats": object mapping of STR/DEX/CON/INT/WIS/CHA to integers, "specialAbilities": array of short strings}`)
	fmt.Fprintf(&b, "\nKeep hp near %d and baseExp near %d.", 10+8*playerLevel, 25*playerLevel)
	return b.String()
}

// ActionContext is the combat snapshot handed to the action generator.
type ActionContext struct {
	PlayerName       string
	PlayerHP         string
	MonsterName      string
	MonsterHP        string
	SpecialAbilities []string
}

func actionPrompt(ctx ActionContext) string {
	var b strings.Builder
	b.WriteString("You are narrating a monster's turn in a turn-based RPG battle.\n")
	fmt.Fprintf(&b, "Monster: %s (HP %s). Opponent: %s (HP %s).\n", ctx.MonsterName, ctx.MonsterHP, ctx.PlayerName, ctx.PlayerHP)
	if len(ctx.SpecialAbilities) > 0 {
		fmt.Fprintf(&b, "The monster's special abilities: %s.\n", strings.Join(ctx.SpecialAbilities, ", "))
	}
	b.WriteString("Pick what the monster does this turn. Respond ONLY with a valid JSON object:\n")
	b.WriteString(`{"actionType": "attack" | "defend" | "other", "description": one vivid sentence}`)
	return b.String()
}

func itemPrompt() string {
	var b strings.Builder
	b.WriteString("Invent one piece of loot for a dark-fantasy RPG. Respond ONLY with a valid JSON object:\n")
	b.WriteString(`{"name": string, "type": "Weapon" or another item kind, "damage": dice notation like "1d8" (weapons only), "effect": one short sentence}`)
	return b.String()
}
