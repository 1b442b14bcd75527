// Package palette holds the QuickCurrency brand colors shared by the icon
// and store-asset generators, plus the 8-bit interpolation used for
// gradient fills.
package palette

import "image/color"

// Brand colors. The blue trio matches the extension UI theme
// (tailwind blue-600/800/500).
var (
	Primary      = color.NRGBA{R: 37, G: 99, B: 235, A: 255}  // #2563eb
	PrimaryDark  = color.NRGBA{R: 30, G: 64, B: 175, A: 255}  // #1e40af
	PrimaryLight = color.NRGBA{R: 59, G: 130, B: 246, A: 255} // #3b82f6
	Accent       = color.NRGBA{R: 16, G: 185, B: 129, A: 255} // #10b981
	AccentDark   = color.NRGBA{R: 5, G: 150, B: 105, A: 255}  // #059669
	Violet       = color.NRGBA{R: 139, G: 92, B: 246, A: 255} // #8b5cf6
	VioletDark   = color.NRGBA{R: 109, G: 40, B: 217, A: 255} // #6d28d9

	White    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	TextDark = color.NRGBA{R: 15, G: 23, B: 42, A: 255}    // #0f172a
	Slate    = color.NRGBA{R: 100, G: 116, B: 139, A: 255} // #64748b
	Divider  = color.NRGBA{R: 226, G: 232, B: 240, A: 255} // #e2e8f0
	Field    = color.NRGBA{R: 248, G: 250, B: 252, A: 255} // #f8fafc
	FieldAlt = color.NRGBA{R: 241, G: 245, B: 249, A: 255} // #f1f5f9

	// Coin shading used only by the icons.
	CoinCore  = color.NRGBA{R: 35, G: 75, B: 190, A: 255}
	CoinGlyph = color.NRGBA{R: 220, G: 225, B: 240, A: 255}
)

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Lerp interpolates between a and b at ratio t, clamped to [0, 1].
// Each channel is computed as a + (b-a)*t and truncated to an integer,
// matching how the gradient rows are sampled in tests.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp(t)
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: 255,
	}
}

// Clamp limits t to the [0, 1] range.
func Clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
