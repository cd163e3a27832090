package engine

import "testing"

// scriptedSource replays fixed draws so resolution is deterministic in tests.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// fakeCombatant pins every derived attribute to a constant.
type fakeCombatant struct {
	name    string
	hp      *ResourceBar
	attack  int
	defense int
	hit     float64
	evade   float64
	crit    float64
}

func newFakeCombatant(t *testing.T, hp int) *fakeCombatant {
	t.Helper()
	bar, err := NewResourceBar(hp)
	if err != nil {
		t.Fatalf("NewResourceBar(%d): %v", hp, err)
	}
	return &fakeCombatant{name: "dummy", hp: bar, attack: 5, hit: 100}
}

func (f *fakeCombatant) Name() string            { return f.name }
func (f *fakeCombatant) HP() *ResourceBar        { return f.hp }
func (f *fakeCombatant) AttackPower() int        { return f.attack }
func (f *fakeCombatant) Defense() int            { return f.defense }
func (f *fakeCombatant) HitChance() float64      { return f.hit }
func (f *fakeCombatant) EvasionRate() float64    { return f.evade }
func (f *fakeCombatant) CriticalChance() float64 { return f.crit }

func mustMonster(t *testing.T, spec MonsterSpec, cfg Config) *Monster {
	t.Helper()
	m, err := NewMonster(spec, cfg)
	if err != nil {
		t.Fatalf("NewMonster: %v", err)
	}
	return m
}
