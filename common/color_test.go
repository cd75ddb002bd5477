package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"named", "red", RGBA{1, 0, 0, 1}},
		{"named mixed case", " Black ", RGBA{0, 0, 0, 1}},
		{"short hex", "#fff", RGBA{1, 1, 1, 1}},
		{"long hex", "#0000ff", RGBA{0, 0, 1, 1}},
		{"hex with alpha", "#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"rgb", "rgb(255, 0, 0)", RGBA{1, 0, 0, 1}},
		{"rgba", "rgba(0,255,0,0.5)", RGBA{0, 1, 0, 0.5}},
		{"percent", "rgb(100%, 0%, 50%)", RGBA{1, 0, 0.5, 1}},
		{"transparent", "transparent", RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-3)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "rgb(1,2)", "rgba(a,b,c,d)", "hsl(0,0,0)"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestColorOrFallsBack(t *testing.T) {
	assert.Equal(t, Black, ColorOr("bogus", Black))
	assert.Equal(t, RGBA{1, 1, 1, 1}, ColorOr("white", Black))
}
