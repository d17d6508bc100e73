package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA is a color with straight (non-premultiplied) alpha in [0, 1].
// Alpha is only honoured for foreground colors.
type RGBA struct {
	RGB
	A float64
}

// Predefined colors shared by the tank and the host.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Opaque returns c with full alpha.
func (c RGB) Opaque() RGBA {
	return RGBA{RGB: c, A: 1}
}

// WithAlpha returns c with the given alpha, clamped to [0, 1].
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: ClampF(a, 0, 1)}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend linearly interpolates from c toward dst. t = 0 yields c, t = 1 yields dst.
func (c RGB) Blend(dst RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	return fromColorful(c.toColorful().BlendRgb(dst.toColorful(), t))
}

// Over composites c onto an opaque background using c's alpha.
func (c RGBA) Over(bg RGB) RGB {
	return bg.Blend(c.RGB, c.A)
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a #rrggbb or #rgb color.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(c), nil
}
