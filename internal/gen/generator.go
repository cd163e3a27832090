package gen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
)

// Generator wraps an Adapter with the parsing, validation and fallback policy
// the combat loop relies on: generation failures are logged and substituted,
// never propagated.
type Generator struct {
	adapter Adapter
	cfg     engine.Config
	log     *slog.Logger
}

func New(adapter Adapter, cfg engine.Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{adapter: adapter, cfg: cfg, log: log}
}

// Monster asks the model for an encounter-appropriate monster. Any failure —
// transport, unparsable payload, invalid shape — yields the deterministic
// fallback scaled to the player's level.
func (g *Generator) Monster(ctx context.Context, playerLevel int, hint string) *engine.Monster {
	raw, err := g.adapter.Generate(ctx, monsterPrompt(playerLevel, hint))
	if err != nil {
		g.log.Warn("monster generation failed", "error", err)
		return engine.FallbackMonster(playerLevel, g.cfg)
	}
	spec, err := parseMonsterSpec(raw)
	if err != nil {
		g.log.Warn("unparsable monster payload", "error", err, "payload", raw)
		return engine.FallbackMonster(playerLevel, g.cfg)
	}
	m, err := engine.NewMonster(spec, g.cfg)
	if err != nil {
		g.log.Warn("invalid monster spec", "error", err, "payload", raw)
		return engine.FallbackMonster(playerLevel, g.cfg)
	}
	return m
}

// Action asks the model what the monster does this turn. Failures fall back
// to a plain attack against the player.
func (g *Generator) Action(ctx context.Context, actionCtx ActionContext) engine.MonsterAction {
	raw, err := g.adapter.Generate(ctx, actionPrompt(actionCtx))
	if err != nil {
		g.log.Warn("action generation failed", "error", err)
		return engine.FallbackAction()
	}
	action, err := parseAction(raw)
	if err != nil {
		g.log.Warn("unparsable action payload", "error", err, "payload", raw)
		return engine.FallbackAction()
	}
	return action
}

// Item asks the model for a piece of loot. Malformed output means no item
// was produced for this drop; ok reports whether an item came back.
func (g *Generator) Item(ctx context.Context) (engine.Item, bool) {
	raw, err := g.adapter.Generate(ctx, itemPrompt())
	if err != nil {
		g.log.Warn("item generation failed", "error", err)
		return engine.Item{}, false
	}
	item, err := parseItem(raw)
	if err != nil {
		g.log.Warn("unparsable item payload", "error", err, "payload", raw)
		return engine.Item{}, false
	}
	return item, true
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type monsterPayload struct {
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	HP               float64            `json:"hp"`
	BaseExp          float64            `json:"baseExp"`
	DropChance       float64            `json:"dropChance"`
	Stats            map[string]float64 `json:"stats"`
	SpecialAbilities []string           `json:"specialAbilities"`
}

func parseMonsterSpec(raw string) (engine.MonsterSpec, error) {
	var p monsterPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return engine.MonsterSpec{}, fmt.Errorf("decode monster: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return engine.MonsterSpec{}, errors.New("monster has no name")
	}
	if p.HP <= 0 {
		return engine.MonsterSpec{}, fmt.Errorf("monster hp %v is not positive", p.HP)
	}
	spec := engine.MonsterSpec{
		Name:             strings.TrimSpace(p.Name),
		Description:      strings.TrimSpace(p.Description),
		HP:               int(p.HP),
		BaseExp:          int(p.BaseExp),
		DropChance:       p.DropChance,
		Stats:            make(map[engine.Ability]int, len(p.Stats)),
		SpecialAbilities: p.SpecialAbilities,
	}
	for k, v := range p.Stats {
		a := engine.Ability(strings.ToUpper(strings.TrimSpace(k)))
		if a.IsValid() && v >= 0 {
			spec.Stats[a] = int(v)
		}
	}
	return spec, nil
}

type actionPayload struct {
	ActionType  string `json:"actionType"`
	Description string `json:"description"`
}

func parseAction(raw string) (engine.MonsterAction, error) {
	var p actionPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return engine.MonsterAction{}, fmt.Errorf("decode action: %w", err)
	}
	action := engine.MonsterAction{Description: strings.TrimSpace(p.Description)}
	switch engine.ActionType(strings.ToLower(strings.TrimSpace(p.ActionType))) {
	case engine.ActionAttack:
		action.Type = engine.ActionAttack
	case engine.ActionDefend:
		action.Type = engine.ActionDefend
	case engine.ActionOther:
		action.Type = engine.ActionOther
	default:
		// Unrecognized vocabulary is the fail-safe default, not an error.
		action.Type = engine.ActionAttack
	}
	return action, nil
}

type itemPayload struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Damage string `json:"damage"`
	Effect string `json:"effect"`
}

func parseItem(raw string) (engine.Item, error) {
	var p itemPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return engine.Item{}, fmt.Errorf("decode item: %w", err)
	}
	item := engine.Item{
		Name:   strings.TrimSpace(p.Name),
		Type:   strings.TrimSpace(p.Type),
		Damage: strings.TrimSpace(p.Damage),
		Effect: strings.TrimSpace(p.Effect),
	}
	if item.Name == "" || item.Type == "" {
		return engine.Item{}, errors.New("item missing name or type")
	}
	if item.IsWeapon() && engine.ParseDie(item.Damage) == 0 {
		return engine.Item{}, fmt.Errorf("weapon damage %q is not dice notation", p.Damage)
	}
	return item, nil
}
