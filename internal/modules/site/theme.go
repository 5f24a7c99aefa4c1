package site

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the palette derived from the brand color.
type Theme struct {
	Light string // background tint
	Base  string // accents
	Dark  string // hover states
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// DeriveTheme builds the palette from one hex color. Unparseable input falls
// back to DefaultBrandColor.
func DeriveTheme(hex string) Theme {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		c, _ = colorful.Hex(DefaultBrandColor)
	}
	return Theme{
		Light: c.BlendRgb(white, 0.85).Clamped().Hex(),
		Base:  c.Clamped().Hex(),
		Dark:  c.BlendRgb(black, 0.2).Clamped().Hex(),
	}
}
