package dial

import "github.com/Tiliavir/temps-vecu/internal/canvas"

// Source is the device that produced a pointer event.
type Source int

const (
	Mouse Source = iota
	Touch
)

// Phase is the stage of a pointer gesture.
type Phase int

const (
	Down Phase = iota
	Move
	Up
)

// Event is a pointer sample in CSS units relative to the control's top-left corner.
type Event struct {
	Phase  Phase
	Source Source
	X, Y   float64
}

// Tracker turns pointer gestures over the control into minute values. Mouse
// and touch events are handled the same way.
type Tracker struct {
	scale    Scale
	vp       canvas.Viewport
	onChange func(minutes int)
	dragging bool
}

// NewTracker returns a tracker for a control of size vp. onChange runs on
// pointer-down and on every move sample while dragging.
func NewTracker(scale Scale, vp canvas.Viewport, onChange func(minutes int)) *Tracker {
	return &Tracker{scale: scale, vp: vp, onChange: onChange}
}

// Dragging reports whether a gesture is in progress.
func (t *Tracker) Dragging() bool { return t.dragging }

// Handle feeds one event and reports whether it produced a value.
func (t *Tracker) Handle(ev Event) bool {
	switch ev.Phase {
	case Down:
		if !t.over(ev.X, ev.Y) {
			return false
		}
		t.dragging = true
		t.update(ev)
		return true
	case Move:
		if !t.dragging {
			return false
		}
		t.update(ev)
		return true
	case Up:
		t.dragging = false
	}
	return false
}

func (t *Tracker) over(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= t.vp.Width && y <= t.vp.Height
}

func (t *Tracker) update(ev Event) {
	a := AngleFromPoint(ev.X, ev.Y, t.vp.Width/2, t.vp.Height/2)
	if t.onChange != nil {
		t.onChange(t.scale.AngleToMinutes(a))
	}
}
