package canvas

// Op is one recorded drawing primitive.
type Op struct {
	Kind  string
	Args  []float64
	Color string
	Text  string
	Style TextStyle
}

// Recorder is a Surface that keeps every primitive in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(kind, color string, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Color: color})
}

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.add("rect", color, x, y, w, h)
}

func (r *Recorder) FillSector(cx, cy, inner, outer, start, end float64, color string) {
	r.add("sector", color, cx, cy, inner, outer, start, end)
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end, width float64, color string) {
	r.add("arc", color, cx, cy, radius, start, end, width)
}

func (r *Recorder) FillCircle(cx, cy, radius float64, color string) {
	r.add("circle", color, cx, cy, radius)
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, color string) {
	r.add("ring", color, cx, cy, radius, width)
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, color string) {
	r.add("line", color, x1, y1, x2, y2, width)
}

func (r *Recorder) Text(x, y float64, s string, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: "text", Args: []float64{x, y}, Color: style.Color, Text: s, Style: style})
}

// Kind returns the recorded ops of one kind, in drawing order.
func (r *Recorder) Kind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
