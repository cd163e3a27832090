package engine

import (
	"errors"
	"math"
	"strings"
)

// Item is an opaque record produced by the item generator. Damage carries
// "NdM" dice notation for weapons and is empty otherwise.
type Item struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Damage string `json:"damage,omitempty"`
	Effect string `json:"effect,omitempty"`
}

func (it Item) IsWeapon() bool {
	return strings.EqualFold(strings.TrimSpace(it.Type), "Weapon")
}

// BaselineWeapon is what every new player starts with, so an equipped weapon
// exists from construction on.
func BaselineWeapon() Item {
	return Item{
		Name:   "Rusty Dagger",
		Type:   "Weapon",
		Damage: "1d4",
		Effect: "A dull blade that has seen better decades.",
	}
}

// Combatant is either side of an attack action. The derived attributes are
// pure functions of current state, recomputed on every read.
type Combatant interface {
	Name() string
	HP() *ResourceBar
	AttackPower() int
	Defense() int
	HitChance() float64
	EvasionRate() float64
	CriticalChance() float64
}

// Player is the persistent hero. It owns its stats, bars, progression track,
// gold, inventory and exactly one equipped weapon.
type Player struct {
	name      string
	stats     *StatBlock
	hp        *ResourceBar
	mp        *ResourceBar
	track     *ProgressionTrack
	gold      int
	inventory []Item
	weapon    Item
	cfg       Config
}

// NewPlayer builds a level-1 player. Missing stats default to 10; invalid
// entries in the supplied map are ignored.
func NewPlayer(name string, stats map[Ability]int, cfg Config) *Player {
	p := &Player{
		name:   name,
		stats:  NewStatBlockFrom(stats),
		track:  NewProgressionTrack(cfg.Curve),
		gold:   cfg.StartingGold,
		weapon: BaselineWeapon(),
		cfg:    cfg,
	}
	p.hp, _ = NewResourceBar(p.maxHP())
	p.mp, _ = NewResourceBar(p.maxMP())
	return p
}

func (p *Player) Name() string             { return p.name }

// Rename changes the hero's name. Blank names are ignored.
func (p *Player) Rename(name string) {
	if strings.TrimSpace(name) != "" {
		p.name = name
	}
}

func (p *Player) Stats() *StatBlock        { return p.stats }
func (p *Player) HP() *ResourceBar         { return p.hp }
func (p *Player) MP() *ResourceBar         { return p.mp }
func (p *Player) Track() *ProgressionTrack { return p.track }
func (p *Player) Level() int               { return p.track.Level() }
func (p *Player) Gold() int                { return p.gold }
func (p *Player) Weapon() Item             { return p.weapon }

// Inventory returns the carried items in acquisition order.
func (p *Player) Inventory() []Item {
	out := make([]Item, len(p.inventory))
	copy(out, p.inventory)
	return out
}

func (p *Player) AddGold(amount int) {
	p.gold += amount
	if p.gold < 0 {
		p.gold = 0
	}
}

func (p *Player) AddItem(it Item) {
	p.inventory = append(p.inventory, it)
}

// ErrNotAWeapon is returned by Equip for non-weapon items.
var ErrNotAWeapon = errors.New("item is not a weapon")

// Equip swaps the given weapon in, moving the previous one to the inventory.
// If the weapon is already carried, its inventory copy is consumed by the
// swap.
func (p *Player) Equip(it Item) error {
	if !it.IsWeapon() {
		return ErrNotAWeapon
	}
	for i := range p.inventory {
		if p.inventory[i] == it {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			break
		}
	}
	p.inventory = append(p.inventory, p.weapon)
	p.weapon = it
	return nil
}

func (p *Player) maxHP() int {
	return p.cfg.BaseHP + (p.track.Level()-1)*p.cfg.HPPerLevel
}

func (p *Player) maxMP() int {
	return p.cfg.BaseMP + (p.track.Level()-1)*p.cfg.MPPerLevel
}

// GainExperience feeds the progression track. On level-up the bar maximums
// grow and both bars refill to the new maximum.
func (p *Player) GainExperience(amount int) bool {
	leveled := p.track.GainExperience(amount)
	if leveled {
		_ = p.hp.SetMaximum(p.maxHP())
		p.hp.Adjust(p.hp.Maximum())
		_ = p.mp.SetMaximum(p.maxMP())
		p.mp.Adjust(p.mp.Maximum())
	}
	return leveled
}

// PlayerState is a snapshot of everything that persists between sessions.
// Bars are intentionally absent: a restored player starts at full HP/MP.
type PlayerState struct {
	Name      string
	Stats     map[Ability]int
	Level     int
	Exp       int
	Gold      int
	Weapon    Item
	Inventory []Item
}

// RestorePlayer rebuilds a player from a persisted snapshot. A missing or
// non-weapon snapshot weapon falls back to the baseline one.
func RestorePlayer(st PlayerState, cfg Config) *Player {
	p := &Player{
		name:   st.Name,
		stats:  NewStatBlockFrom(st.Stats),
		track:  Restore(cfg.Curve, st.Level, st.Exp),
		gold:   st.Gold,
		weapon: st.Weapon,
		cfg:    cfg,
	}
	if p.name == "" {
		p.name = "Adventurer"
	}
	if p.gold < 0 {
		p.gold = 0
	}
	if !p.weapon.IsWeapon() {
		p.weapon = BaselineWeapon()
	}
	p.inventory = append(p.inventory, st.Inventory...)
	p.hp, _ = NewResourceBar(p.maxHP())
	p.mp, _ = NewResourceBar(p.maxMP())
	return p
}

// State captures the persistable snapshot of the player.
func (p *Player) State() PlayerState {
	stats := make(map[Ability]int, len(Abilities))
	for _, a := range Abilities {
		v, _ := p.stats.Get(a)
		stats[a] = v
	}
	return PlayerState{
		Name:      p.name,
		Stats:     stats,
		Level:     p.track.Level(),
		Exp:       p.track.Experience(),
		Gold:      p.gold,
		Weapon:    p.weapon,
		Inventory: p.Inventory(),
	}
}

// weaponDie is the side count of the equipped weapon's damage die, 0 when the
// notation is absent or malformed.
func (p *Player) weaponDie() int {
	return ParseDie(p.weapon.Damage)
}

// AttackPower = floor(max(1, 5 + bonus(STR) + die/2 + 1)).
func (p *Player) AttackPower() int {
	raw := 5 + float64(p.stats.Bonus(AbilitySTR)) + float64(p.weaponDie())/2 + 1
	return int(math.Floor(math.Max(1, raw)))
}

// Defense = 2 + bonus(DEX).
func (p *Player) Defense() int {
	return 2 + p.stats.Bonus(AbilityDEX)
}

func (p *Player) HitChance() float64 {
	return p.cfg.BaseHitChance + float64(p.stats.Bonus(AbilityDEX))*2
}

func (p *Player) EvasionRate() float64 {
	return p.cfg.BaseEvasionRate + float64(p.stats.Bonus(AbilityDEX))
}

func (p *Player) CriticalChance() float64 {
	return p.cfg.BaseCriticalChance + float64(p.stats.Bonus(AbilityDEX))*0.5
}

// MonsterSpec is the structured record the content generator must supply.
type MonsterSpec struct {
	Name             string
	Description      string
	HP               int
	BaseExp          int
	DropChance       float64
	Stats            map[Ability]int
	SpecialAbilities []string
}

// Monster is built once per encounter from a MonsterSpec and discarded when
// the encounter ends. Its stat map keeps only the keys the generator actually
// supplied: the combat formulas below branch on presence.
type Monster struct {
	name        string
	description string
	stats       map[Ability]int
	hp          *ResourceBar
	baseExp     int
	dropChance  float64
	abilities   []string
	cfg         Config
}

// NewMonster validates the spec's numeric shape and wraps it. The generator
// layer is responsible for falling back before calling this with garbage.
func NewMonster(spec MonsterSpec, cfg Config) (*Monster, error) {
	hp, err := NewResourceBar(spec.HP)
	if err != nil {
		return nil, err
	}
	m := &Monster{
		name:        spec.Name,
		description: spec.Description,
		stats:       make(map[Ability]int, len(spec.Stats)),
		hp:          hp,
		baseExp:     spec.BaseExp,
		dropChance:  spec.DropChance,
		abilities:   spec.SpecialAbilities,
		cfg:         cfg,
	}
	if m.baseExp < 0 {
		m.baseExp = 0
	}
	if m.dropChance < 0 {
		m.dropChance = 0
	} else if m.dropChance > 1 {
		m.dropChance = 1
	}
	for a, v := range spec.Stats {
		if a.IsValid() && v >= 0 {
			m.stats[a] = v
		}
	}
	return m, nil
}

func (m *Monster) Name() string        { return m.name }
func (m *Monster) Description() string { return m.description }
func (m *Monster) HP() *ResourceBar    { return m.hp }
func (m *Monster) BaseExp() int        { return m.baseExp }
func (m *Monster) DropChance() float64 { return m.dropChance }

func (m *Monster) SpecialAbilities() []string {
	out := make([]string, len(m.abilities))
	copy(out, m.abilities)
	return out
}

// AttackPower = max(1, bonus(STR)), or a flat 5 when the generator supplied
// no STR at all.
func (m *Monster) AttackPower() int {
	str, ok := m.stats[AbilitySTR]
	if !ok {
		return 5
	}
	b := ScoreBonus(str)
	if b < 1 {
		return 1
	}
	return b
}

// Defense = max(0, CON/2) over the raw score, not its bonus — monsters take
// their secondary stat at roughly half weight.
func (m *Monster) Defense() int {
	con, ok := m.stats[AbilityCON]
	if !ok {
		return 0
	}
	d := con / 2
	if d < 0 {
		return 0
	}
	return d
}

func (m *Monster) HitChance() float64      { return m.cfg.BaseHitChance }
func (m *Monster) EvasionRate() float64    { return m.cfg.BaseEvasionRate }
func (m *Monster) CriticalChance() float64 { return m.cfg.BaseCriticalChance }
