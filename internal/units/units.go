// Package units defines the time discretization: the step granularity and
// the policies that turn a requested duration into allocation units.
package units

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// Step is the smallest addressable duration, in minutes.
	Step = 15
	// Max is the largest duration per theme-day the dial can express.
	Max = 480
)

// ErrNoSizes is returned when a size-list policy is built without any positive size.
var ErrNoSizes = errors.New("size list policy needs at least one positive size")

// Policy converts a target duration into unit sizes.
type Policy interface {
	// Decompose returns the unit sizes, in minutes, allocated for minutes.
	Decompose(minutes float64) []int
	// Step returns the smallest unit the policy can allocate.
	Step() int
}

// ToUnits returns how many allocation units p produces for minutes.
func ToUnits(p Policy, minutes float64) int {
	return len(p.Decompose(minutes))
}

// IsAligned reports whether minutes is an exact multiple of the policy step.
func IsAligned(p Policy, minutes int) bool {
	step := p.Step()
	return step > 0 && minutes%step == 0
}

// Sum adds up a decomposition.
func Sum(parts []int) int {
	total := 0
	for _, p := range parts {
		total += p
	}
	return total
}

// roundMinutes clamps negatives and non-finite input to zero and rounds to whole minutes.
func roundMinutes(minutes float64) int {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return 0
	}
	return int(math.Round(minutes))
}

// FixedStep allocates units of one constant size, rounding any remainder up
// to one extra unit.
type FixedStep struct {
	Size int
}

// NewFixedStep returns a fixed-step policy; a non-positive size falls back to Step.
func NewFixedStep(size int) FixedStep {
	if size <= 0 {
		size = Step
	}
	return FixedStep{Size: size}
}

func (f FixedStep) Step() int { return f.Size }

func (f FixedStep) Decompose(minutes float64) []int {
	rest := roundMinutes(minutes)
	out := make([]int, 0, rest/f.Size+1)
	for rest >= f.Size {
		out = append(out, f.Size)
		rest -= f.Size
	}
	if rest > 0 {
		out = append(out, f.Size)
	}
	return out
}

// SizeList allocates greedily from the largest declared size downward and
// rounds any remainder up to one extra smallest-size unit.
type SizeList struct {
	sizes []int // descending
}

// NewSizeList builds a size-list policy. Duplicates and non-positive sizes are dropped.
func NewSizeList(sizes []int) (SizeList, error) {
	seen := map[int]bool{}
	var out []int
	for _, s := range sizes {
		if s <= 0 || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return SizeList{}, ErrNoSizes
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return SizeList{sizes: out}, nil
}

// Sizes returns the declared sizes in ascending order.
func (s SizeList) Sizes() []int {
	out := make([]int, len(s.sizes))
	for i, v := range s.sizes {
		out[len(s.sizes)-1-i] = v
	}
	return out
}

func (s SizeList) Step() int {
	if len(s.sizes) == 0 {
		return 0
	}
	return s.sizes[len(s.sizes)-1]
}

func (s SizeList) Decompose(minutes float64) []int {
	rest := roundMinutes(minutes)
	var out []int
	for _, size := range s.sizes {
		for rest >= size {
			out = append(out, size)
			rest -= size
		}
	}
	if rest > 0 {
		out = append(out, s.Step())
	}
	return out
}

// String describes the policy for logs and CLI output.
func (s SizeList) String() string { return fmt.Sprintf("sizes%v", s.Sizes()) }

func (f FixedStep) String() string { return fmt.Sprintf("step(%d)", f.Size) }
