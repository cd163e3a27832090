package engine

import (
	"errors"
	"testing"
)

func TestScoreBonus(t *testing.T) {
	cases := []struct {
		score, want int
	}{
		{10, 0},
		{18, 4},
		{7, -2},
		{11, 0},
		{12, 1},
		{9, -1},
		{0, -5},
		{20, 5},
	}
	for _, c := range cases {
		if got := ScoreBonus(c.score); got != c.want {
			t.Errorf("ScoreBonus(%d)=%d, want %d", c.score, got, c.want)
		}
	}
}

func TestStatBlockDefaults(t *testing.T) {
	s := NewStatBlock()
	for _, a := range Abilities {
		v, err := s.Get(a)
		if err != nil {
			t.Fatalf("Get(%s): %v", a, err)
		}
		if v != DefaultScore {
			t.Fatalf("Get(%s)=%d, want %d", a, v, DefaultScore)
		}
		if b := s.Bonus(a); b != 0 {
			t.Fatalf("Bonus(%s)=%d, want 0", a, b)
		}
	}
}

func TestStatBlockSetAndGet(t *testing.T) {
	s := NewStatBlock()
	if err := s.Set(AbilitySTR, 14); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := s.Get(AbilitySTR)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 14 {
		t.Fatalf("Get(STR)=%d, want 14", v)
	}
	if b := s.Bonus(AbilitySTR); b != 2 {
		t.Fatalf("Bonus(STR)=%d, want 2", b)
	}
}

func TestStatBlockUnknownAbility(t *testing.T) {
	s := NewStatBlock()

	_, err := s.Get(Ability("MOXIE"))
	var abilityErr InvalidAbilityError
	if !errors.As(err, &abilityErr) {
		t.Fatalf("Get(MOXIE) err=%v, want InvalidAbilityError", err)
	}

	if err := s.Set(Ability("MOXIE"), 12); !errors.As(err, &abilityErr) {
		t.Fatalf("Set(MOXIE) err=%v, want InvalidAbilityError", err)
	}

	// Bonus is total: unknown keys yield 0 instead of an error.
	if b := s.Bonus(Ability("MOXIE")); b != 0 {
		t.Fatalf("Bonus(MOXIE)=%d, want 0", b)
	}
}

func TestStatBlockLuckPseudoStat(t *testing.T) {
	s := NewStatBlock()
	v, err := s.Get(AbilityLUCK)
	if err != nil {
		t.Fatalf("Get(LUCK): %v", err)
	}
	if v != DefaultScore {
		t.Fatalf("Get(LUCK)=%d, want %d", v, DefaultScore)
	}
	if b := s.Bonus(AbilityLUCK); b != 0 {
		t.Fatalf("Bonus(LUCK)=%d, want 0", b)
	}
}

func TestStatBlockRejectsNegative(t *testing.T) {
	s := NewStatBlock()
	err := s.Set(AbilityCON, -1)
	var valueErr InvalidValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("Set(CON, -1) err=%v, want InvalidValueError", err)
	}
	if v, _ := s.Get(AbilityCON); v != DefaultScore {
		t.Fatalf("failed Set mutated the block: CON=%d", v)
	}
}

func TestNewStatBlockFromIgnoresInvalid(t *testing.T) {
	s := NewStatBlockFrom(map[Ability]int{
		AbilitySTR:       16,
		AbilityDEX:       -3,
		Ability("MOXIE"): 18,
	})
	if v, _ := s.Get(AbilitySTR); v != 16 {
		t.Fatalf("STR=%d, want 16", v)
	}
	if v, _ := s.Get(AbilityDEX); v != DefaultScore {
		t.Fatalf("DEX=%d, want default %d", v, DefaultScore)
	}
}
