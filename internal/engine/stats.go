package engine

import "math"

type Ability string

const (
	AbilitySTR Ability = "STR"
	AbilityDEX Ability = "DEX"
	AbilityCON Ability = "CON"
	AbilityINT Ability = "INT"
	AbilityWIS Ability = "WIS"
	AbilityCHA Ability = "CHA"
)

// AbilityLUCK is a pseudo-stat that monsters and items sometimes reference.
// It is never stored: lookups report the default score and a zero bonus
// instead of failing.
const AbilityLUCK Ability = "LUCK"

// Abilities lists the recognized set in display order.
var Abilities = []Ability{
	AbilitySTR,
	AbilityDEX,
	AbilityCON,
	AbilityINT,
	AbilityWIS,
	AbilityCHA,
}

func (a Ability) IsValid() bool {
	switch a {
	case AbilitySTR, AbilityDEX, AbilityCON, AbilityINT, AbilityWIS, AbilityCHA:
		return true
	default:
		return false
	}
}

// DefaultScore is the value every ability starts at.
const DefaultScore = 10

// StatBlock holds one score per recognized ability. Every key is always
// present; values are never negative.
type StatBlock struct {
	scores map[Ability]int
}

// NewStatBlock returns a block with every ability at DefaultScore.
func NewStatBlock() *StatBlock {
	s := &StatBlock{scores: make(map[Ability]int, len(Abilities))}
	for _, a := range Abilities {
		s.scores[a] = DefaultScore
	}
	return s
}

// NewStatBlockFrom seeds a block from the supplied values. Unrecognized keys
// and negative values are ignored; everything else falls back to DefaultScore.
func NewStatBlockFrom(values map[Ability]int) *StatBlock {
	s := NewStatBlock()
	for a, v := range values {
		if a.IsValid() && v >= 0 {
			s.scores[a] = v
		}
	}
	return s
}

// Get returns the score for a recognized ability. The LUCK pseudo-stat is
// tolerated and reports DefaultScore; any other unknown key is an
// InvalidAbilityError.
func (s *StatBlock) Get(a Ability) (int, error) {
	if a == AbilityLUCK {
		return DefaultScore, nil
	}
	if !a.IsValid() {
		return 0, InvalidAbilityError{Ability: a}
	}
	return s.scores[a], nil
}

// Set overwrites the score for a recognized ability.
func (s *StatBlock) Set(a Ability, value int) error {
	if !a.IsValid() {
		return InvalidAbilityError{Ability: a}
	}
	if value < 0 {
		return InvalidValueError{Ability: a, Value: value}
	}
	s.scores[a] = value
	return nil
}

// Bonus is the derived modifier floor((score-10)/2). Unlike Get it is total:
// LUCK and any other unrecognized ability yield 0.
func (s *StatBlock) Bonus(a Ability) int {
	v, err := s.Get(a)
	if err != nil {
		return 0
	}
	return ScoreBonus(v)
}

// ScoreBonus converts a raw ability score to its modifier, flooring so that
// odd scores below 10 round away from zero (7 → -2).
func ScoreBonus(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}
