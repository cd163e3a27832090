package engine

import "testing"

func TestPlayerDerivedAttributes(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer("Theron", map[Ability]int{
		AbilitySTR: 14, // bonus +2
		AbilityDEX: 12, // bonus +1
	}, cfg)

	// Baseline weapon is 1d4: attack = floor(max(1, 5+2+4/2+1)) = 10.
	if got := p.AttackPower(); got != 10 {
		t.Fatalf("AttackPower()=%d, want 10", got)
	}
	if got := p.Defense(); got != 3 {
		t.Fatalf("Defense()=%d, want 3", got)
	}
	if got := p.HitChance(); got != cfg.BaseHitChance+2 {
		t.Fatalf("HitChance()=%v, want %v", got, cfg.BaseHitChance+2)
	}
	if got := p.EvasionRate(); got != cfg.BaseEvasionRate+1 {
		t.Fatalf("EvasionRate()=%v, want %v", got, cfg.BaseEvasionRate+1)
	}
	if got := p.CriticalChance(); got != cfg.BaseCriticalChance+0.5 {
		t.Fatalf("CriticalChance()=%v, want %v", got, cfg.BaseCriticalChance+0.5)
	}
}

func TestPlayerAttackPowerWithoutWeaponDie(t *testing.T) {
	p := NewPlayer("Theron", map[Ability]int{AbilitySTR: 14}, DefaultConfig())

	// A weapon with no parsable damage die contributes 0.
	if err := p.Equip(Item{Name: "Fists", Type: "Weapon"}); err != nil {
		t.Fatalf("Equip: %v", err)
	}
	// floor(max(1, 5+2+0+1)) = 8.
	if got := p.AttackPower(); got != 8 {
		t.Fatalf("AttackPower()=%d, want 8", got)
	}
}

func TestPlayerAttributesTrackStatChanges(t *testing.T) {
	p := NewPlayer("Theron", nil, DefaultConfig())
	before := p.AttackPower()
	if err := p.Stats().Set(AbilitySTR, 18); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Derived attributes are recomputed per read, never cached.
	if got := p.AttackPower(); got != before+4 {
		t.Fatalf("AttackPower()=%d, want %d", got, before+4)
	}
}

func TestPlayerStartsEquipped(t *testing.T) {
	p := NewPlayer("Theron", nil, DefaultConfig())
	if !p.Weapon().IsWeapon() {
		t.Fatalf("new player has no weapon equipped")
	}
	if p.Gold() != DefaultConfig().StartingGold {
		t.Fatalf("Gold()=%d, want %d", p.Gold(), DefaultConfig().StartingGold)
	}
}

func TestPlayerEquipSwapsIntoInventory(t *testing.T) {
	p := NewPlayer("Theron", nil, DefaultConfig())
	old := p.Weapon()

	sword := Item{Name: "Ember Blade", Type: "Weapon", Damage: "1d8"}
	if err := p.Equip(sword); err != nil {
		t.Fatalf("Equip: %v", err)
	}
	if p.Weapon().Name != sword.Name {
		t.Fatalf("Weapon()=%q, want %q", p.Weapon().Name, sword.Name)
	}
	inv := p.Inventory()
	if len(inv) != 1 || inv[0].Name != old.Name {
		t.Fatalf("old weapon not moved to inventory: %+v", inv)
	}

	if err := p.Equip(Item{Name: "Herb", Type: "Potion"}); err != ErrNotAWeapon {
		t.Fatalf("Equip(potion) err=%v, want ErrNotAWeapon", err)
	}
}

func TestPlayerLevelUpRefillsBars(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer("Theron", nil, cfg)
	p.HP().Adjust(-10)
	p.MP().Adjust(-5)

	if !p.GainExperience(cfg.Curve.Threshold(1)) {
		t.Fatalf("expected level-up")
	}
	if p.Level() != 2 {
		t.Fatalf("Level()=%d, want 2", p.Level())
	}
	wantHP := cfg.BaseHP + cfg.HPPerLevel
	if p.HP().Maximum() != wantHP || !p.HP().IsFull() {
		t.Fatalf("HP=%s, want full %d", p.HP(), wantHP)
	}
	wantMP := cfg.BaseMP + cfg.MPPerLevel
	if p.MP().Maximum() != wantMP || !p.MP().IsFull() {
		t.Fatalf("MP=%s, want full %d", p.MP(), wantMP)
	}
}

func TestMonsterDerivedAttributes(t *testing.T) {
	cfg := DefaultConfig()

	m := mustMonster(t, MonsterSpec{
		Name:  "Bog Lurker",
		HP:    20,
		Stats: map[Ability]int{AbilitySTR: 16, AbilityCON: 10},
	}, cfg)

	if got := m.AttackPower(); got != 3 {
		t.Fatalf("AttackPower()=%d, want bonus(16)=3", got)
	}
	// Defense uses the raw CON score over 2, not the bonus.
	if got := m.Defense(); got != 5 {
		t.Fatalf("Defense()=%d, want 10/2=5", got)
	}
	if m.HitChance() != cfg.BaseHitChance || m.EvasionRate() != cfg.BaseEvasionRate || m.CriticalChance() != cfg.BaseCriticalChance {
		t.Fatalf("monster rates should be the base constants")
	}
}

func TestMonsterMissingStats(t *testing.T) {
	m := mustMonster(t, MonsterSpec{Name: "Wisp", HP: 5}, DefaultConfig())
	if got := m.AttackPower(); got != 5 {
		t.Fatalf("AttackPower()=%d, want flat 5 with STR absent", got)
	}
	if got := m.Defense(); got != 0 {
		t.Fatalf("Defense()=%d, want 0 with CON absent", got)
	}
}

func TestMonsterLowStrengthFloorsAtOne(t *testing.T) {
	m := mustMonster(t, MonsterSpec{
		Name:  "Mudling",
		HP:    5,
		Stats: map[Ability]int{AbilitySTR: 6}, // bonus -2
	}, DefaultConfig())
	if got := m.AttackPower(); got != 1 {
		t.Fatalf("AttackPower()=%d, want floor 1", got)
	}
}

func TestNewMonsterValidation(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := NewMonster(MonsterSpec{Name: "Ghost", HP: 0}, cfg); err == nil {
		t.Fatalf("expected error for non-positive HP")
	}

	m := mustMonster(t, MonsterSpec{
		Name:       "Imp",
		HP:         10,
		BaseExp:    -20,
		DropChance: 1.7,
	}, cfg)
	if m.BaseExp() != 0 {
		t.Fatalf("BaseExp()=%d, want clamped 0", m.BaseExp())
	}
	if m.DropChance() != 1 {
		t.Fatalf("DropChance()=%v, want clamped 1", m.DropChance())
	}
}
