package engine

import "testing"

func TestCurveThreshold(t *testing.T) {
	c := DefaultCurve()
	cases := []struct {
		level, want int
	}{
		{1, 150},
		{2, 300},
		{3, 450},
		{10, 1500},
	}
	for _, tc := range cases {
		if got := c.Threshold(tc.level); got != tc.want {
			t.Errorf("Threshold(%d)=%d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestDegenerateCurveThresholdFloorsAtOne(t *testing.T) {
	for _, c := range []Curve{{}, {BaseExp: 0, Multiplier: 1.5}, {BaseExp: 100, Multiplier: -1}} {
		if got := c.Threshold(3); got != 1 {
			t.Errorf("Threshold(3) for %+v = %d, want 1", c, got)
		}
	}

	// GainExperience must terminate even on an all-zero curve.
	tr := NewProgressionTrack(Curve{})
	if !tr.GainExperience(5) {
		t.Fatalf("expected level-ups")
	}
	if tr.Level() != 6 || tr.Experience() != 0 {
		t.Fatalf("level=%d exp=%d, want 6/0", tr.Level(), tr.Experience())
	}
}

func TestGainExperienceExactThreshold(t *testing.T) {
	tr := NewProgressionTrack(DefaultCurve())
	if tr.Level() != 1 {
		t.Fatalf("new track level=%d, want 1", tr.Level())
	}

	leveled := tr.GainExperience(tr.Threshold())
	if !leveled {
		t.Fatalf("expected a level-up")
	}
	if tr.Level() != 2 {
		t.Fatalf("Level()=%d, want 2", tr.Level())
	}
	if tr.Experience() != 0 {
		t.Fatalf("Experience()=%d, want 0 residual", tr.Experience())
	}
	if tr.Threshold() != DefaultCurve().Threshold(2) {
		t.Fatalf("Threshold()=%d, want recomputed for level 2", tr.Threshold())
	}
}

func TestGainExperienceMultiLevelCarryOver(t *testing.T) {
	c := DefaultCurve()
	tr := NewProgressionTrack(c)

	// Enough to clear level 1 and level 2 with 1 XP spare.
	amount := c.Threshold(1) + c.Threshold(2) + 1
	if !tr.GainExperience(amount) {
		t.Fatalf("expected level-ups")
	}
	if tr.Level() != 3 {
		t.Fatalf("Level()=%d, want 3", tr.Level())
	}
	if tr.Experience() != 1 {
		t.Fatalf("Experience()=%d, want carry-over 1", tr.Experience())
	}
}

func TestGainExperienceBelowThreshold(t *testing.T) {
	tr := NewProgressionTrack(DefaultCurve())
	if tr.GainExperience(tr.Threshold() - 1) {
		t.Fatalf("unexpected level-up")
	}
	if tr.Level() != 1 {
		t.Fatalf("Level()=%d, want 1", tr.Level())
	}
}

func TestGainExperienceInvariant(t *testing.T) {
	tr := NewProgressionTrack(DefaultCurve())
	for _, amount := range []int{0, 1, 149, 150, 151, 10_000, 3} {
		tr.GainExperience(amount)
		if tr.Experience() >= tr.Threshold() {
			t.Fatalf("after gaining %d: exp %d >= threshold %d", amount, tr.Experience(), tr.Threshold())
		}
	}
}

func TestRestoreClampsIntoInvariant(t *testing.T) {
	c := DefaultCurve()

	tr := Restore(c, 4, 100)
	if tr.Level() != 4 || tr.Experience() != 100 {
		t.Fatalf("Restore gave level=%d exp=%d", tr.Level(), tr.Experience())
	}

	// Experience at or above the threshold is clamped below it.
	tr = Restore(c, 2, c.Threshold(2)+50)
	if tr.Experience() >= tr.Threshold() {
		t.Fatalf("Restore broke invariant: exp %d >= threshold %d", tr.Experience(), tr.Threshold())
	}

	tr = Restore(c, 0, -10)
	if tr.Level() != 1 || tr.Experience() != 0 {
		t.Fatalf("Restore(0,-10) gave level=%d exp=%d, want 1/0", tr.Level(), tr.Experience())
	}
}
