package engine

import "math"

// Curve holds the leveling constants. Injected at construction so the
// threshold formula never reads package-wide state.
type Curve struct {
	// BaseExp anchors the threshold formula: floor(BaseExp * level * Multiplier).
	BaseExp    int
	Multiplier float64
}

// DefaultCurve returns the standard progression: 100 XP base, x1.5 per level.
func DefaultCurve() Curve {
	return Curve{BaseExp: 100, Multiplier: 1.5}
}

// Threshold returns the experience needed to clear the given level, never
// below 1 even for a degenerate curve.
func (c Curve) Threshold(level int) int {
	t := int(math.Floor(float64(c.BaseExp) * float64(level) * c.Multiplier))
	if t < 1 {
		return 1
	}
	return t
}

// ProgressionTrack accumulates experience and applies the level-up curve.
// After every GainExperience call, experience < threshold holds.
type ProgressionTrack struct {
	curve     Curve
	level     int
	exp       int
	threshold int
}

// NewProgressionTrack starts at level 1 with zero experience.
func NewProgressionTrack(curve Curve) *ProgressionTrack {
	t := &ProgressionTrack{curve: curve, level: 1}
	t.threshold = curve.Threshold(t.level)
	return t
}

func (t *ProgressionTrack) Level() int      { return t.level }
func (t *ProgressionTrack) Experience() int { return t.exp }

// Threshold is the experience required to reach the next level.
func (t *ProgressionTrack) Threshold() int { return t.threshold }

// GainExperience adds the amount and applies as many sequential level-ups as
// the surplus covers, carrying the remainder across thresholds. Reports
// whether at least one level was gained.
//
// Negative amounts are a contract violation on the caller's side and are not
// validated here.
func (t *ProgressionTrack) GainExperience(amount int) bool {
	t.exp += amount
	leveled := false
	for t.exp >= t.threshold {
		t.exp -= t.threshold
		t.level++
		t.threshold = t.curve.Threshold(t.level)
		leveled = true
	}
	return leveled
}

// Restore rebuilds a track from persisted values, clamping experience below
// the threshold for the stored level.
func Restore(curve Curve, level, exp int) *ProgressionTrack {
	if level < 1 {
		level = 1
	}
	t := &ProgressionTrack{curve: curve, level: level}
	t.threshold = curve.Threshold(level)
	if exp < 0 {
		exp = 0
	}
	if exp >= t.threshold {
		exp = t.threshold - 1
	}
	t.exp = exp
	return t
}
