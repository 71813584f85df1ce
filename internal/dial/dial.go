// Package dial maps pointer angles to discretized durations and lays out the
// circular control that edits one theme's total for a day.
package dial

import (
	"math"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/units"
)

// Scale is the minute range covered by one full turn and its snapping step.
type Scale struct {
	Max  int
	Step int
}

// DefaultScale covers 8 hours in 15 minute steps.
var DefaultScale = Scale{Max: units.Max, Step: units.Step}

// ForPolicy returns a scale of max minutes snapping to the step of p.
func ForPolicy(p units.Policy, max int) Scale {
	s := Scale{Max: max, Step: units.Step}
	if p != nil && p.Step() > 0 {
		s.Step = p.Step()
	}
	if s.Max <= 0 {
		s.Max = units.Max
	}
	return s
}

// Normalize folds any angle into [0, 2π).
func Normalize(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	a := math.Mod(angle, canvas.FullTurn)
	if a < 0 {
		a += canvas.FullTurn
	}
	return a
}

// AngleToMinutes maps an angle measured clockwise from 12 o'clock to minutes
// snapped to the step, never above Max.
func (s Scale) AngleToMinutes(angle float64) int {
	frac := Normalize(angle) / canvas.FullTurn
	return s.Snap(frac * float64(s.Max))
}

// MinutesToAngle maps minutes, clamped to [0, Max], to an angle clockwise from 12 o'clock.
func (s Scale) MinutesToAngle(minutes float64) float64 {
	return canvas.FullTurn * s.Fraction(minutes)
}

// Snap rounds minutes to the nearest step within [0, Max].
func (s Scale) Snap(minutes float64) int {
	if s.Step <= 0 || math.IsNaN(minutes) {
		return 0
	}
	step := float64(s.Step)
	v := int(math.Round(minutes/step) * step)
	return min(max(v, 0), s.Max)
}

// Fraction returns minutes as a share of a full turn, clamped to [0, 1].
func (s Scale) Fraction(minutes float64) float64 {
	if s.Max <= 0 || math.IsNaN(minutes) {
		return 0
	}
	return math.Min(1, math.Max(0, minutes/float64(s.Max)))
}

// AngleFromPoint returns the angle of (x, y) around (cx, cy), clockwise from
// 12 o'clock, in [0, 2π). A point on the center maps to 0.
func AngleFromPoint(x, y, cx, cy float64) float64 {
	dx, dy := x-cx, y-cy
	if dx == 0 && dy == 0 {
		return 0
	}
	return Normalize(math.Atan2(dy, dx) + math.Pi/2)
}
