package dial

import (
	"math"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/palette"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

const (
	tickGap      = 2.0
	tickReach    = 8.0
	majorLen     = 6.0
	minorLen     = 3.5
	majorWidth   = 2.0
	minorWidth   = 1.0
	ticksPerMark = 4

	// The arc stops just short of a full turn so the round cap does not wrap.
	arcEpsilon = 0.0001

	majorTickColor = "rgba(0,0,0,0.15)"
	minorTickColor = "rgba(0,0,0,0.08)"
	highlightColor = "rgba(255,255,255,0.4)"
)

// Style is the user-tunable appearance of the control.
type Style struct {
	Thickness      float64
	HandleDiameter float64
}

// StyleFrom reads the ring thickness and handle diameter from settings.
func StyleFrom(s model.Settings) Style {
	return Style{Thickness: s.RingThickness, HandleDiameter: s.HandleDiameter}
}

func (st Style) normalized() Style {
	if st.Thickness <= 0 {
		st.Thickness = model.DefaultRingThickness
	}
	if st.HandleDiameter <= 0 {
		st.HandleDiameter = model.DefaultHandleDiameter
	}
	return st
}

// Tick is one graduation outside the ring.
type Tick struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Major          bool
}

// Layout is the resolved geometry of the control for one value.
type Layout struct {
	CX, CY    float64
	Radius    float64
	Thickness float64
	Minutes   int

	TrackColor string
	FillColor  string
	TextColor  string

	// HasArc is false at zero, in which case no arc is drawn.
	HasArc   bool
	ArcStart float64
	ArcEnd   float64

	Ticks []Tick

	HandleX, HandleY, HandleR float64

	Label string
}

// Layout places the control in vp for minutes of a theme colored color.
func (s Scale) Layout(vp canvas.Viewport, minutes int, color string, st Style) Layout {
	st = st.normalized()
	cx, cy := vp.Width/2, vp.Height/2
	pad := math.Max(st.Thickness/2+tickReach+tickGap, st.HandleDiameter/2+4)
	r := math.Max(0, math.Min(cx, cy)-pad)

	hasTime := minutes > 0
	l := Layout{
		CX: cx, CY: cy, Radius: r, Thickness: st.Thickness, Minutes: minutes,
		TextColor: palette.BestTextColor(color),
		ArcStart:  canvas.Top,
		HandleR:   st.HandleDiameter / 2,
	}
	if hasTime {
		l.TrackColor = palette.Lighten(color, 0.78)
		l.FillColor = color
		l.Label = timecalc.FormatMinutes(minutes)
	} else {
		l.TrackColor = palette.Lighten(color, 0.88)
		l.FillColor = palette.Lighten(color, 0.65)
	}

	frac := s.Fraction(float64(minutes))
	handleAngle := canvas.Top
	if frac > 0 {
		l.HasArc = true
		l.ArcEnd = canvas.Top + frac*canvas.FullTurn - arcEpsilon
		handleAngle = l.ArcEnd
	}
	l.HandleX, l.HandleY = canvas.Polar(cx, cy, r, handleAngle)

	count := 0
	if s.Step > 0 {
		count = s.Max / s.Step
	}
	base := r + st.Thickness/2 + tickGap
	for i := 0; i < count; i++ {
		a := canvas.Top + float64(i)/float64(count)*canvas.FullTurn
		major := i%ticksPerMark == 0
		length, width := minorLen, minorWidth
		if major {
			length, width = majorLen, majorWidth
		}
		x1, y1 := canvas.Polar(cx, cy, base, a)
		x2, y2 := canvas.Polar(cx, cy, base+length, a)
		l.Ticks = append(l.Ticks, Tick{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Major: major})
	}
	return l
}

// Render draws l on surf.
func Render(surf canvas.Surface, l Layout) {
	for _, t := range l.Ticks {
		c := minorTickColor
		if t.Major {
			c = majorTickColor
		}
		surf.Line(t.X1, t.Y1, t.X2, t.Y2, t.Width, c)
	}
	surf.StrokeCircle(l.CX, l.CY, l.Radius, l.Thickness, l.TrackColor)
	if l.HasArc {
		surf.StrokeArc(l.CX, l.CY, l.Radius, l.ArcStart, l.ArcEnd, l.Thickness, l.FillColor)
	}
	surf.FillCircle(l.HandleX, l.HandleY, l.HandleR, l.FillColor)
	surf.FillCircle(l.HandleX, l.HandleY, math.Max(1, l.HandleR-2), highlightColor)
	if l.Label != "" {
		surf.Text(l.CX, l.CY, l.Label, canvas.TextStyle{
			Color:  l.TextColor,
			Size:   13,
			Bold:   true,
			Anchor: canvas.AnchorMiddle,
		})
	}
}
