package engine

import "fmt"

// InvalidAbilityError is returned when a stat lookup or mutation names an
// ability outside the recognized set.
type InvalidAbilityError struct {
	Ability Ability
}

func (e InvalidAbilityError) Error() string {
	return fmt.Sprintf("unknown ability %q", string(e.Ability))
}

// InvalidValueError is returned when a stat is assigned a negative value.
type InvalidValueError struct {
	Ability Ability
	Value   int
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %d for ability %q: must be non-negative", e.Value, string(e.Ability))
}

// InvalidRangeError is returned when a resource bar maximum is not positive.
type InvalidRangeError struct {
	Maximum int
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid bar maximum %d: must be positive", e.Maximum)
}
