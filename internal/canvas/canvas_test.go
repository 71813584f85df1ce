package canvas_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
)

func TestBufferSize(t *testing.T) {
	tests := []struct {
		vp           canvas.Viewport
		wantW, wantH int
	}{
		{canvas.Viewport{Width: 360, Height: 360}, 360, 360},
		{canvas.Viewport{Width: 360, Height: 280, PixelRatio: 2}, 720, 560},
		{canvas.Viewport{Width: 100.5, Height: 10, PixelRatio: 1.5}, 151, 15},
		{canvas.Viewport{Width: 50, Height: 50, PixelRatio: 0.5}, 50, 50},
	}
	for _, tt := range tests {
		w, h := tt.vp.BufferSize()
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestSVGDocument(t *testing.T) {
	s := canvas.NewSVG(canvas.Viewport{Width: 100, Height: 50, PixelRatio: 2})
	s.FillRect(0, 0, 10, 10, "#ff0000")
	s.FillSector(50, 25, 10, 20, canvas.Top, canvas.Top+canvas.FullTurn, "#00ff00")
	s.FillSector(50, 25, 0, 20, 0, math.Pi/2, "#0000ff")
	s.Text(50, 25, "a<b", canvas.TextStyle{Color: "#000", Anchor: canvas.AnchorMiddle})

	doc := s.String()
	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"`))
	assert.Contains(t, doc, `<g transform="scale(2)">`)
	assert.Contains(t, doc, `fill="#ff0000"`)
	assert.Equal(t, 2, strings.Count(doc, `fill="#00ff00"`))
	assert.Contains(t, doc, "a&lt;b")
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
}

func TestRecorderKind(t *testing.T) {
	var r canvas.Recorder
	r.FillRect(1, 2, 3, 4, "#111")
	r.Line(0, 0, 1, 1, 1, "#222")
	r.FillRect(5, 6, 7, 8, "#333")
	rects := r.Kind("rect")
	assert.Len(t, rects, 2)
	assert.Equal(t, []float64{5, 6, 7, 8}, rects[1].Args)
}

func TestPolar(t *testing.T) {
	x, y := canvas.Polar(0, 0, 10, canvas.Top)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -10, y, 1e-9)
}
