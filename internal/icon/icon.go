// Package icon renders the QuickCurrency extension icon: two overlapping
// coins with currency glyphs and, at larger sizes, a pair of exchange
// arrows between them.
package icon

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/fontkit"
	"github.com/quickcurrency/assetgen/internal/palette"
)

// Sizes are the pixel dimensions a Chromium extension manifest wants.
var Sizes = []int{16, 32, 48, 96, 128}

// Thresholds below which detail is dropped: dual glyphs need at least 32 px
// to stay legible, the exchange arrows need 48.
const (
	dualGlyphMin = 32
	arrowMin     = 48
)

// Generate draws the icon at the given size on a transparent canvas.
func Generate(size int) *gg.Context {
	dc := gg.NewContext(size, size)

	margin := int(float64(size) * 0.08)
	coin := int(float64(size) * 0.62)
	inset := max(1, int(float64(coin)*0.08))

	// Back coin sits bottom-right, front coin top-left.
	backX := size - margin - coin
	backY := size - margin - coin
	drawCoin(dc, backX, backY, coin, inset, palette.PrimaryDark, palette.CoinCore)
	drawCoin(dc, margin, margin, coin, inset, palette.Primary, palette.PrimaryLight)

	faceSize := float64(max(10, int(float64(coin)*0.45)))
	dc.SetFont(fontkit.Face(faceSize))
	nudge := float64(int(float64(size) * 0.02))

	frontC := float64(margin) + float64(coin)/2
	drawGlyph(dc, "$", frontC, frontC-nudge, faceSize, palette.White)

	if size >= dualGlyphMin {
		backC := float64(backX) + float64(coin)/2
		drawGlyph(dc, "€", backC, backC-nudge, faceSize, palette.CoinGlyph)
	}

	if size >= arrowMin {
		drawArrows(dc, size)
	}

	return dc
}

// drawCoin fills a coin circle with a slightly inset lighter core for a
// layered look.
func drawCoin(dc *gg.Context, x, y, d, inset int, rim, core color.NRGBA) {
	cx := float64(x) + float64(d)/2
	cy := float64(y) + float64(d)/2

	dc.SetColor(rim)
	dc.DrawCircle(cx, cy, float64(d)/2)
	dc.Fill()

	dc.SetColor(core)
	dc.DrawCircle(cx, cy, float64(d)/2-float64(inset))
	dc.Fill()
}

// drawGlyph centers a currency glyph on (cx, cy). Metrics fall back to an
// estimate from the face size, so placement degrades instead of aborting.
func drawGlyph(dc *gg.Context, s string, cx, cy, faceSize float64, col color.NRGBA) {
	w, h := fontkit.Measure(dc, s, faceSize)
	dc.SetColor(col)
	// Baseline sits below the optical center by roughly a third of the
	// line height.
	dc.DrawString(s, cx-w/2, cy+h*0.3)
}

// drawArrows draws the bidirectional exchange motif: a right-pointing arrow
// above center, a left-pointing one below.
func drawArrows(dc *gg.Context, size int) {
	thickness := float64(max(2, int(float64(size)*0.025)))
	half := float64(int(float64(size) * 0.10))
	head := float64(max(3, int(float64(size)*0.04)))
	cx := float64(size / 2)
	cy := float64(size / 2)
	offset := float64(int(float64(size) * 0.05))

	dc.SetColor(palette.Accent)
	dc.SetLineWidth(thickness)

	// Right arrow on top.
	yTop := cy - offset
	dc.DrawLine(cx-half, yTop, cx+half, yTop)
	dc.Stroke()
	drawHead(dc, cx+half, yTop, -head, head)

	// Left arrow below.
	yBot := cy + offset
	dc.DrawLine(cx+half, yBot, cx-half, yBot)
	dc.Stroke()
	drawHead(dc, cx-half, yBot, head, head)
}

// drawHead fills a triangular arrowhead with its tip at (tipX, y). back is
// signed: negative for a right-pointing head, positive for left-pointing.
func drawHead(dc *gg.Context, tipX, y, back, spread float64) {
	dc.MoveTo(tipX, y)
	dc.LineTo(tipX+back, y-spread)
	dc.LineTo(tipX+back, y+spread)
	dc.ClosePath()
	dc.Fill()
}
