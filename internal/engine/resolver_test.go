package engine

import "testing"

func TestResolveAttackDeterministicDamage(t *testing.T) {
	cfg := DefaultConfig()

	attacker := newFakeCombatant(t, 30)
	attacker.attack = 8
	attacker.hit = 100
	attacker.crit = 0

	defender := newFakeCombatant(t, 30)
	defender.defense = 5
	defender.evade = 0

	// Draws don't matter: hit is certain, crit and evasion are impossible.
	r := NewResolver(cfg, &scriptedSource{floats: []float64{0.99, 0.99, 0.99}})
	out := r.ResolveAttack(attacker, defender)

	if !out.Hit || out.Critical || out.Evaded {
		t.Fatalf("outcome=%+v, want plain hit", out)
	}
	if out.Damage != 3 {
		t.Fatalf("Damage=%d, want max(1, 8-5)=3", out.Damage)
	}
	if defender.HP().Current() != 27 {
		t.Fatalf("defender HP=%s, want 27/30", defender.HP())
	}
}

func TestResolveAttackAlwaysMisses(t *testing.T) {
	attacker := newFakeCombatant(t, 30)
	attacker.hit = 0
	defender := newFakeCombatant(t, 30)

	r := NewResolver(DefaultConfig(), &scriptedSource{floats: []float64{0, 0, 0}})
	out := r.ResolveAttack(attacker, defender)

	if out.Hit || out.Damage != 0 {
		t.Fatalf("outcome=%+v, want miss with zero damage", out)
	}
	if !defender.HP().IsFull() {
		t.Fatalf("miss must not touch the defender's bar")
	}
}

func TestResolveAttackMinimumOneDamage(t *testing.T) {
	attacker := newFakeCombatant(t, 30)
	attacker.attack = 2
	defender := newFakeCombatant(t, 30)
	defender.defense = 50

	r := NewResolver(DefaultConfig(), &scriptedSource{floats: []float64{0, 0.99, 0.99}})
	out := r.ResolveAttack(attacker, defender)
	if out.Damage != 1 {
		t.Fatalf("Damage=%d, want minimum 1 on a connected hit", out.Damage)
	}
}

func TestResolveAttackCriticalFloors(t *testing.T) {
	cfg := DefaultConfig() // crit multiplier 1.5
	attacker := newFakeCombatant(t, 30)
	attacker.attack = 5
	attacker.crit = 100
	defender := newFakeCombatant(t, 30)

	r := NewResolver(cfg, &scriptedSource{floats: []float64{0, 0, 0.99}})
	out := r.ResolveAttack(attacker, defender)
	if !out.Critical {
		t.Fatalf("expected critical")
	}
	// floor(5*1.5)=7, defense 0.
	if out.Damage != 7 {
		t.Fatalf("Damage=%d, want 7", out.Damage)
	}
}

func TestResolveAttackEvasionOverridesComputedDamage(t *testing.T) {
	attacker := newFakeCombatant(t, 30)
	attacker.attack = 50
	attacker.crit = 100
	defender := newFakeCombatant(t, 30)
	defender.evade = 100

	// Hit draw, crit draw, then the evasion draw zeroes it all out.
	r := NewResolver(DefaultConfig(), &scriptedSource{floats: []float64{0, 0, 0}})
	out := r.ResolveAttack(attacker, defender)

	if !out.Hit || !out.Evaded {
		t.Fatalf("outcome=%+v, want evaded hit", out)
	}
	if out.Damage != 0 {
		t.Fatalf("Damage=%d, want 0 after evasion", out.Damage)
	}
	if !defender.HP().IsFull() {
		t.Fatalf("evaded attack must not touch the defender's bar")
	}
}

func TestResolveAttackGuardedHalvesDamage(t *testing.T) {
	attacker := newFakeCombatant(t, 30)
	attacker.attack = 9
	defender := newFakeCombatant(t, 30)
	defender.defense = 1

	r := NewResolver(DefaultConfig(), &scriptedSource{floats: []float64{0, 0.99, 0.99}})
	out := r.ResolveAttackGuarded(attacker, defender)
	// 9/2=4, minus defense 1 → 3.
	if out.Damage != 3 {
		t.Fatalf("Damage=%d, want 3", out.Damage)
	}
}

func TestResolveAttackDefeat(t *testing.T) {
	attacker := newFakeCombatant(t, 30)
	attacker.attack = 10
	defender := newFakeCombatant(t, 3)

	r := NewResolver(DefaultConfig(), &scriptedSource{floats: []float64{0, 0.99, 0.99}})
	out := r.ResolveAttack(attacker, defender)
	if !out.Defeated {
		t.Fatalf("outcome=%+v, want defeat", out)
	}
	if !defender.HP().IsEmpty() {
		t.Fatalf("defender HP=%s, want empty", defender.HP())
	}
}

func TestResolverPlayerVersusMonsterScenario(t *testing.T) {
	cfg := DefaultConfig()

	p := NewPlayer("Theron", map[Ability]int{AbilitySTR: 14}, cfg)
	// No weapon die: attack = floor(max(1, 5+2+0+1)) = 8.
	if err := p.Equip(Item{Name: "Fists", Type: "Weapon"}); err != nil {
		t.Fatalf("Equip: %v", err)
	}

	m := mustMonster(t, MonsterSpec{
		Name:  "Bog Lurker",
		HP:    10,
		Stats: map[Ability]int{AbilityCON: 10}, // defense 5
	}, cfg)

	r := NewResolver(cfg, &scriptedSource{floats: []float64{0, 0.99, 0.99}})
	out := r.ResolveAttack(p, m)
	if out.Damage != 3 {
		t.Fatalf("Damage=%d, want max(1, 8-5)=3", out.Damage)
	}
	if m.HP().Current() != 7 {
		t.Fatalf("monster HP=%s, want 7/10", m.HP())
	}
}
