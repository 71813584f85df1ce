package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/temps-vecu/internal/palette"
)

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, palette.RelativeLuminance("#000000"), 1e-9)
	assert.InDelta(t, 1.0, palette.RelativeLuminance("#ffffff"), 1e-9)
	assert.InDelta(t, 0.2126, palette.RelativeLuminance("#ff0000"), 1e-4)
	assert.InDelta(t, 0.7152, palette.RelativeLuminance("#00ff00"), 1e-4)
	assert.InDelta(t, 0.0722, palette.RelativeLuminance("#0000ff"), 1e-4)
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, palette.ContrastRatio(1, 0), 1e-9)
	assert.InDelta(t, 21.0, palette.ContrastRatio(0, 1), 1e-9)
	assert.InDelta(t, 1.0, palette.ContrastRatio(0.4, 0.4), 1e-9)
}

func TestBestTextColor(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#000000", palette.White},
		{"#ffffff", palette.Black},
		{"#edeae4", palette.Black},
		{"#1a237e", palette.White},
		{"fff", palette.Black},
		{"not a color", palette.Black},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, palette.BestTextColor(tt.bg), "BestTextColor(%q)", tt.bg)
	}
}

func TestMix(t *testing.T) {
	assert.Equal(t, "#000000", palette.Mix("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", palette.Mix("#000000", "#ffffff", 1))
	assert.Equal(t, "#808080", palette.Mix("#000000", "#ffffff", 0.5))
	assert.Equal(t, "#ffffff", palette.Mix("#000000", "#ffffff", 7))
}

func TestLighten(t *testing.T) {
	assert.Equal(t, "#808080", palette.Lighten("#000000", 0.5))
	assert.Equal(t, "#9aa380", palette.Lighten("#9aa380", 0))
	assert.Equal(t, palette.White, palette.Lighten("#9aa380", 1))
}

func TestParseHexShortForm(t *testing.T) {
	c, err := palette.ParseHex("#111")
	assert.NoError(t, err)
	assert.Equal(t, "#111111", c.Hex())

	_, err = palette.ParseHex("#12")
	assert.Error(t, err)
}
