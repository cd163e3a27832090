package engine

import (
	"encoding/json"
	"fmt"
)

// ResourceBar is a clamped current/maximum counter used for HP and MP.
// Invariant: 0 <= current <= maximum and maximum > 0.
type ResourceBar struct {
	maximum int
	current int
}

// NewResourceBar creates a full bar.
func NewResourceBar(maximum int) (*ResourceBar, error) {
	return NewResourceBarAt(maximum, maximum)
}

// NewResourceBarAt creates a bar with an explicit starting position, clamped
// into [0, maximum].
func NewResourceBarAt(maximum, current int) (*ResourceBar, error) {
	if maximum <= 0 {
		return nil, InvalidRangeError{Maximum: maximum}
	}
	b := &ResourceBar{maximum: maximum}
	b.current = clamp(current, 0, maximum)
	return b, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (b *ResourceBar) Maximum() int { return b.maximum }
func (b *ResourceBar) Current() int { return b.current }

// Adjust moves the current position by delta, clamping into [0, maximum].
func (b *ResourceBar) Adjust(delta int) {
	b.current = clamp(b.current+delta, 0, b.maximum)
}

// SetMaximum reassigns the maximum. A current position above the new maximum
// is clamped down; this is not an error.
func (b *ResourceBar) SetMaximum(maximum int) error {
	if maximum <= 0 {
		return InvalidRangeError{Maximum: maximum}
	}
	b.maximum = maximum
	if b.current > maximum {
		b.current = maximum
	}
	return nil
}

func (b *ResourceBar) IsFull() bool  { return b.current == b.maximum }
func (b *ResourceBar) IsEmpty() bool { return b.current == 0 }

// Percentage reports fill as 0..100.
func (b *ResourceBar) Percentage() float64 {
	return float64(b.current) / float64(b.maximum) * 100
}

// String renders the bar as "current/maximum", the form handed to the action
// generator and the display sink.
func (b *ResourceBar) String() string {
	return fmt.Sprintf("%d/%d", b.current, b.maximum)
}

type barJSON struct {
	Maximum int `json:"maximum"`
	Current int `json:"current"`
}

func (b *ResourceBar) MarshalJSON() ([]byte, error) {
	return json.Marshal(barJSON{Maximum: b.maximum, Current: b.current})
}

func (b *ResourceBar) UnmarshalJSON(data []byte) error {
	var raw barJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Maximum <= 0 {
		return InvalidRangeError{Maximum: raw.Maximum}
	}
	b.maximum = raw.Maximum
	b.current = clamp(raw.Current, 0, raw.Maximum)
	return nil
}
