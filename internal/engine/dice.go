package engine

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Source is the randomness provider for combat rolls. Keeping it behind an
// interface lets tests script every draw.
type Source interface {
	// IntN returns a non-negative random int in [0, n). Requires n > 0.
	IntN(n int) int
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
}

type systemSource struct{}

func (systemSource) IntN(n int) int   { return rand.IntN(n) }
func (systemSource) Float64() float64 { return rand.Float64() }

// SystemSource returns the process-wide math/rand/v2 source.
func SystemSource() Source {
	return systemSource{}
}

// ParseDie extracts the die side count from "NdM" notation ("1d6" → 6).
// Empty or malformed notation yields 0, meaning no die contribution.
func ParseDie(notation string) int {
	_, sides := ParseDice(notation)
	return sides
}

// ParseDice splits "NdM" into count and sides. Malformed input yields (0, 0);
// a missing count ("d8") is read as 1.
func ParseDice(notation string) (count, sides int) {
	s := strings.ToLower(strings.TrimSpace(notation))
	if s == "" {
		return 0, 0
	}
	left, right, ok := strings.Cut(s, "d")
	if !ok {
		return 0, 0
	}
	if left == "" {
		count = 1
	} else {
		n, err := strconv.Atoi(left)
		if err != nil || n < 1 {
			return 0, 0
		}
		count = n
	}
	m, err := strconv.Atoi(right)
	if err != nil || m < 1 {
		return 0, 0
	}
	return count, m
}
