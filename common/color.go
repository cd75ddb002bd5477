package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor when a color string cannot be interpreted.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor converts a CSS-style color string into an RGBA with channels in [0, 1].
// Accepted forms are CSS color names, "transparent", "#rgb", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)" and "rgba(r, g, b, a)".
//
// Parameters:
//   - s: color string
//
// Returns:
//   - RGBA: parsed color
//   - error: ErrInvalidColor wrapped with the offending input
func ParseColor(s string) (RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "":
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case str == "transparent":
		return RGBA{0, 0, 0, 0}, nil
	case strings.HasPrefix(str, "#"):
		return parseHex(str)
	case strings.HasPrefix(str, "rgb"):
		return parseFunctional(str)
	}
	if c, ok := colornames.Map[str]; ok {
		return RGBA{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// ColorOr parses s and returns fallback when it cannot be parsed.
func ColorOr(s string, fallback RGBA) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func parseHex(str string) (RGBA, error) {
	if len(str) == 9 {
		v, err := strconv.ParseUint(str[1:], 16, 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, str)
		}
		return RGBA{
			float32(v>>24&0xff) / 255,
			float32(v>>16&0xff) / 255,
			float32(v>>8&0xff) / 255,
			float32(v&0xff) / 255,
		}, nil
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, str, err)
	}
	return RGBA{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

func parseFunctional(str string) (RGBA, error) {
	open := strings.IndexByte(str, '(')
	if open < 0 || !strings.HasSuffix(str, ")") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, str)
	}
	name := strings.TrimSpace(str[:open])
	parts := strings.Split(str[open+1:len(str)-1], ",")
	if (name == "rgb" && len(parts) != 3) || (name == "rgba" && len(parts) != 4) || (name != "rgb" && name != "rgba") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, str)
	}

	out := RGBA{0, 0, 0, 1}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		percent := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, str)
		}
		switch {
		case percent:
			v /= 100
		case i < 3:
			v /= 255
		}
		out[i] = float32(clamp01(v))
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
