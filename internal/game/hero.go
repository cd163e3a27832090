package game

import (
	"encoding/json"
	"fmt"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
)

// PlayerFromHero rebuilds the in-memory player from the persisted row.
func PlayerFromHero(h *storage.Hero, cfg engine.Config) (*engine.Player, error) {
	var inventory []engine.Item
	if h.Inventory != "" {
		if err := json.Unmarshal([]byte(h.Inventory), &inventory); err != nil {
			return nil, fmt.Errorf("decode inventory: %w", err)
		}
	}
	st := engine.PlayerState{
		Name: h.Name,
		Stats: map[engine.Ability]int{
			engine.AbilitySTR: h.StatSTR,
			engine.AbilityDEX: h.StatDEX,
			engine.AbilityCON: h.StatCON,
			engine.AbilityINT: h.StatINT,
			engine.AbilityWIS: h.StatWIS,
			engine.AbilityCHA: h.StatCHA,
		},
		Level:     h.Level,
		Exp:       h.Exp,
		Gold:      h.Gold,
		Inventory: inventory,
	}
	if h.WeaponName != "" {
		st.Weapon = engine.Item{
			Name:   h.WeaponName,
			Type:   "Weapon",
			Damage: h.WeaponDamage,
			Effect: h.WeaponEffect,
		}
	}
	return engine.RestorePlayer(st, cfg), nil
}

// ApplyPlayerToHero writes the player's snapshot back onto the hero row.
func ApplyPlayerToHero(p *engine.Player, h *storage.Hero) error {
	st := p.State()

	inventory, err := json.Marshal(st.Inventory)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	h.Name = st.Name
	h.Level = st.Level
	h.Exp = st.Exp
	h.Gold = st.Gold
	h.StatSTR = st.Stats[engine.AbilitySTR]
	h.StatDEX = st.Stats[engine.AbilityDEX]
	h.StatCON = st.Stats[engine.AbilityCON]
	h.StatINT = st.Stats[engine.AbilityINT]
	h.StatWIS = st.Stats[engine.AbilityWIS]
	h.StatCHA = st.Stats[engine.AbilityCHA]
	h.WeaponName = st.Weapon.Name
	h.WeaponDamage = st.Weapon.Damage
	h.WeaponEffect = st.Weapon.Effect
	h.Inventory = string(inventory)
	return nil
}
