package types

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hue returns the fully saturated, half-lightness color for a hue in degrees
func Hue(deg int) Color {
	r, g, b := colorful.Hsl(float64(((deg%360)+360)%360), 1, 0.5).Clamped().RGB255()
	return RGB(r, g, b)
}

var (
	ColorBlack     = RGB(0, 0, 0)
	ColorGridLine  = RGB(0x18, 0x18, 0x25)
	ColorSnake     = RGB(144, 238, 144) // lightgreen
	ColorFood      = RGB(255, 0, 0)
	ColorGameOver  = RGB(0x4c, 0xff, 0xd7)
	ColorScoreText = RGB(255, 255, 255)
)
