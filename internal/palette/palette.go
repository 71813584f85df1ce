// Package palette holds the color math used by the dial, the charts and the
// chip styling: parsing, blending and WCAG-style contrast selection.
package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Black = "#000000"
	White = "#ffffff"
)

// fallback is used when a color string cannot be parsed.
var fallback = colorful.Color{R: 1, G: 1, B: 1}

// ParseHex parses "#rgb" or "#rrggbb" (the leading # is optional).
func ParseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}

func parseOr(s string, def colorful.Color) colorful.Color {
	c, err := ParseHex(s)
	if err != nil {
		return def
	}
	return c
}

// linear converts one sRGB channel in [0,1] to linear light.
func linear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the perceptual luminance of hex in [0,1].
// Unparseable colors are treated as white.
func RelativeLuminance(hex string) float64 {
	c := parseOr(hex, fallback)
	r, g, b := c.RGB255()
	return 0.2126*linear(float64(r)/255) + 0.7152*linear(float64(g)/255) + 0.0722*linear(float64(b)/255)
}

// ContrastRatio returns (lighter+0.05)/(darker+0.05), always >= 1.
func ContrastRatio(l1, l2 float64) float64 {
	hi, lo := math.Max(l1, l2), math.Min(l1, l2)
	return (hi + 0.05) / (lo + 0.05)
}

// BestTextColor picks black or white, whichever reads better on background.
func BestTextColor(background string) string {
	l := RelativeLuminance(background)
	if ContrastRatio(l, 1) > ContrastRatio(l, 0) {
		return White
	}
	return Black
}

// Mix blends a toward b by t in [0,1] in RGB space and returns "#rrggbb".
// Unparseable inputs fall back to light greys.
func Mix(a, b string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	ca := parseOr(a, colorful.Color{R: 200.0 / 255, G: 200.0 / 255, B: 200.0 / 255})
	cb := parseOr(b, colorful.Color{R: 240.0 / 255, G: 240.0 / 255, B: 240.0 / 255})
	return ca.BlendRgb(cb, t).Clamped().Hex()
}

// Lighten mixes hex toward white.
func Lighten(hex string, t float64) string { return Mix(hex, White, t) }

