// Package palette provides small sRGB helpers for deriving theme colors.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Parse decodes a #rgb or #rrggbb hex color.
func Parse(hex string) (RGB, bool) {
	s := strings.TrimSpace(hex)
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[i*2] = s[i]
			expanded[i*2+1] = s[i]
		}
		s = string(expanded[:])
	case 6:
	default:
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// Hex returns the #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken scales a hex color toward black by pct (0..100).
// Invalid input is returned unchanged.
func Darken(hex string, pct int) string {
	c, ok := Parse(hex)
	if !ok {
		return hex
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	keep := 100 - pct
	return RGB{
		R: uint8(int(c.R) * keep / 100),
		G: uint8(int(c.G) * keep / 100),
		B: uint8(int(c.B) * keep / 100),
	}.Hex()
}

// Lighten scales a hex color toward white by pct (0..100).
// Invalid input is returned unchanged.
func Lighten(hex string, pct int) string {
	c, ok := Parse(hex)
	if !ok {
		return hex
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return RGB{
		R: uint8(int(c.R) + (255-int(c.R))*pct/100),
		G: uint8(int(c.G) + (255-int(c.G))*pct/100),
		B: uint8(int(c.B) + (255-int(c.B))*pct/100),
	}.Hex()
}

// Mix blends a toward b by ratio (0 keeps a, 1 yields b).
// Invalid input returns a unchanged.
func Mix(a, b string, ratio float64) string {
	ca, okA := Parse(a)
	cb, okB := Parse(b)
	if !okA || !okB {
		return a
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	blend := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-ratio) + float64(y)*ratio + 0.5)
	}
	return RGB{
		R: blend(ca.R, cb.R),
		G: blend(ca.G, cb.G),
		B: blend(ca.B, cb.B),
	}.Hex()
}

// Alpha returns the rgba() form of a hex color with the given alpha.
// Invalid input is returned unchanged.
func Alpha(hex string, alpha float64) string {
	c, ok := Parse(hex)
	if !ok {
		return hex
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, alpha)
}
