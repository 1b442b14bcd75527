package store

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/palette"
)

// GradientRatio maps a row to its interpolation ratio. The +0.3/1.3 skew
// starts the gradient already warmed toward the end color at the top edge
// and saturates before the bottom; the store assets use it everywhere, so
// it is kept verbatim.
func GradientRatio(y, height int) float64 {
	return palette.Clamp((float64(y)/float64(height) + 0.3) / 1.3)
}

// GradientBackground returns a canvas filled with a top-to-bottom blend
// from start to end, one interpolated row at a time.
func GradientBackground(width, height int, start, end color.NRGBA) *gg.Context {
	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		dc.SetColor(palette.Lerp(start, end, GradientRatio(y, height)))
		dc.DrawRectangle(0, float64(y), float64(width), 1)
		dc.Fill()
	}
	return dc
}

// fillLinearGradient paints rows y0..y0+height-1 of dc between the two
// colors with an unskewed ratio. Used for the popup's result card.
func fillLinearGradient(dc *gg.Context, x, y0, width float64, height int, start, end color.NRGBA) {
	for i := 0; i < height; i++ {
		dc.SetColor(palette.Lerp(start, end, float64(i)/float64(height)))
		dc.DrawRectangle(x, y0+float64(i), width, 1)
		dc.Fill()
	}
}
