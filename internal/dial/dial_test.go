package dial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/palette"
	"github.com/Tiliavir/temps-vecu/internal/units"
)

func TestAngleRoundTrip(t *testing.T) {
	s := dial.DefaultScale
	for m := 0; m < s.Max; m += s.Step {
		assert.Equal(t, m, s.AngleToMinutes(s.MinutesToAngle(float64(m))), "minutes %d", m)
	}
	// A full turn normalizes back to 12 o'clock.
	assert.Equal(t, 0, s.AngleToMinutes(s.MinutesToAngle(float64(s.Max))))
}

func TestAngleToMinutes(t *testing.T) {
	s := dial.DefaultScale
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"top", 0, 0},
		{"quarter", math.Pi / 2, 120},
		{"half", math.Pi, 240},
		{"snaps down", math.Pi / 2 * 1.01, 120},
		{"snaps up", 2 * math.Pi * 10 / 480, 15},
		{"negative", -math.Pi / 2, 360},
		{"past a turn", 2*math.Pi + math.Pi, 240},
		{"almost full", 2*math.Pi - 1e-6, 480},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.AngleToMinutes(tt.angle))
		})
	}
}

func TestAngleToMinutesStaysWithinMax(t *testing.T) {
	s := dial.Scale{Max: 480, Step: 45}
	for a := 0.0; a < 2*math.Pi; a += 0.01 {
		m := s.AngleToMinutes(a)
		require.GreaterOrEqual(t, m, 0)
		require.LessOrEqual(t, m, s.Max, "angle %v", a)
	}
	assert.Equal(t, 480, s.AngleToMinutes(2*math.Pi-0.01))
	assert.Equal(t, 225, s.AngleToMinutes(math.Pi))
}

func TestMinutesToAngleClamps(t *testing.T) {
	s := dial.DefaultScale
	assert.Equal(t, 0.0, s.MinutesToAngle(-30))
	assert.InDelta(t, 2*math.Pi, s.MinutesToAngle(10_000), 1e-12)
	assert.InDelta(t, math.Pi, s.MinutesToAngle(240), 1e-12)
}

func TestSnap(t *testing.T) {
	s := dial.DefaultScale
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{7, 0},
		{8, 15},
		{50, 45},
		{-30, 0},
		{999, 480},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.Snap(tc.in), "snap %v", tc.in)
	}
}

func TestForPolicy(t *testing.T) {
	p, err := units.NewSizeList([]int{30, 60})
	require.NoError(t, err)
	s := dial.ForPolicy(p, 0)
	assert.Equal(t, dial.Scale{Max: units.Max, Step: 30}, s)
}

func TestAngleFromPoint(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"top", 50, 0, 0},
		{"right", 100, 50, math.Pi / 2},
		{"bottom", 50, 100, math.Pi},
		{"left", 0, 50, 3 * math.Pi / 2},
		{"center", 50, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, dial.AngleFromPoint(tt.x, tt.y, 50, 50), 1e-9)
		})
	}
}

func TestLayoutZero(t *testing.T) {
	vp := canvas.Viewport{Width: 200, Height: 200}
	l := dial.DefaultScale.Layout(vp, 0, "#9aa380", dial.Style{})

	assert.False(t, l.HasArc)
	assert.Empty(t, l.Label)
	assert.InDelta(t, 100, l.HandleX, 1e-9)
	assert.InDelta(t, 100-l.Radius, l.HandleY, 1e-9)
	assert.Len(t, l.Ticks, 32)

	majors := 0
	for _, tk := range l.Ticks {
		if tk.Major {
			majors++
		}
	}
	assert.Equal(t, 8, majors)

	var rec canvas.Recorder
	dial.Render(&rec, l)
	assert.Empty(t, rec.Kind("arc"))
	assert.Empty(t, rec.Kind("text"))
	assert.Len(t, rec.Kind("ring"), 1)
}

func TestLayoutWithValue(t *testing.T) {
	vp := canvas.Viewport{Width: 200, Height: 200}
	l := dial.DefaultScale.Layout(vp, 120, "#000000", dial.Style{Thickness: 16, HandleDiameter: 16})

	require.True(t, l.HasArc)
	assert.InDelta(t, 0, l.ArcEnd, 1e-3)
	assert.Equal(t, "2h", l.Label)
	assert.Equal(t, palette.White, l.TextColor)
	assert.Equal(t, "#000000", l.FillColor)
	assert.Equal(t, palette.Lighten("#000000", 0.78), l.TrackColor)
	assert.NotEqual(t, l.FillColor, l.TrackColor)
	assert.InDelta(t, 100+l.Radius, l.HandleX, 1e-2)

	var rec canvas.Recorder
	dial.Render(&rec, l)
	require.Len(t, rec.Kind("arc"), 1)
	texts := rec.Kind("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "2h", texts[0].Text)
}

func TestTracker(t *testing.T) {
	vp := canvas.Viewport{Width: 100, Height: 100}
	var got []int
	tr := dial.NewTracker(dial.DefaultScale, vp, func(m int) { got = append(got, m) })

	assert.False(t, tr.Handle(dial.Event{Phase: dial.Move, X: 100, Y: 50}), "move without press is ignored")
	assert.False(t, tr.Handle(dial.Event{Phase: dial.Down, X: 150, Y: 50}), "press outside the control is ignored")

	assert.True(t, tr.Handle(dial.Event{Phase: dial.Down, Source: dial.Mouse, X: 100, Y: 50}))
	assert.True(t, tr.Dragging())
	assert.True(t, tr.Handle(dial.Event{Phase: dial.Move, Source: dial.Mouse, X: 50, Y: 100}))
	// Pointer outside the control while dragging still maps by angle.
	assert.True(t, tr.Handle(dial.Event{Phase: dial.Move, Source: dial.Mouse, X: -400, Y: 50}))
	tr.Handle(dial.Event{Phase: dial.Up})
	assert.False(t, tr.Dragging())
	assert.False(t, tr.Handle(dial.Event{Phase: dial.Move, X: 50, Y: 0}))

	assert.True(t, tr.Handle(dial.Event{Phase: dial.Down, Source: dial.Touch, X: 50, Y: 0}))
	tr.Handle(dial.Event{Phase: dial.Up, Source: dial.Touch})

	assert.Equal(t, []int{120, 240, 360, 0}, got)
}
