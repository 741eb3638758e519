package stream

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with channels in the 0..255 range.
type RGB struct {
	R float64
	G float64
	B float64
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

var namedColours = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
}

// HexToRGB parses a #rrggbb colour into integer channels.
func HexToRGB(hex string) (RGB, error) {
	if named, ok := namedColours[strings.ToLower(hex)]; ok {
		hex = named
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return RGB{float64(r), float64(g), float64(b)}, nil
}

func mustRGB(hex string) RGB {
	c, err := HexToRGB(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBToHex clamps and rounds each channel and formats the colour as #rrggbb.
func RGBToHex(c RGB) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB255 returns the clamped, rounded channels.
func (c RGB) RGB255() (uint8, uint8, uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

// Colorful converts to a go-colorful colour.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255.0, G: c.G / 255.0, B: c.B / 255.0}.Clamped()
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// Interpolate blends linearly from c1 to c2. t is not clamped.
func Interpolate(c1 RGB, c2 RGB, t float64) RGB {
	return RGB{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
	}
}
