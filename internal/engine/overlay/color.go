package overlay

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// HUD theme colors.
var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorPanelBg = Color{0.04, 0.04, 0.08, 0.8}
	ColorBorder  = Color{0.25, 0.25, 0.35, 1}
	ColorText    = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim = Color{0.55, 0.55, 0.65, 1}
	ColorAccent  = Color{0.35, 0.65, 0.95, 1}
	ColorWarning = Color{0.95, 0.65, 0.25, 1}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}
