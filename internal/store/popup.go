package store

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/fontkit"
	"github.com/quickcurrency/assetgen/internal/palette"
)

// pad is the popup's outer padding; every section insets by it.
const pad = 16.0

// MockPopup renders a facsimile of the extension popup at the requested
// size: header, amount input, currency selectors, a gradient result card,
// a call-to-action button, and quick-access chips. Layout is a vertical
// flow: each section takes the current cursor and returns it advanced by
// its own height plus spacing.
func MockPopup(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	w := float64(width)
	y := pad
	y = drawPopupHeader(dc, w, y)
	y = drawAmountSection(dc, w, y)
	y = drawSelectorRow(dc, w, y)
	y = drawResultCard(dc, w, y)
	y = drawSaveButton(dc, w, y)
	drawQuickAccess(dc, w, y)

	return dc
}

func drawPopupHeader(dc *gg.Context, w, y float64) float64 {
	dc.SetFont(fontkit.Face(16))
	drawTextTop(dc, "QuickCurrency", pad, y, 16, palette.TextDark)
	y += 40

	dc.SetColor(palette.Divider)
	dc.SetLineWidth(1)
	dc.DrawLine(pad, y, w-pad, y)
	dc.Stroke()
	return y + 20
}

func drawAmountSection(dc *gg.Context, w, y float64) float64 {
	dc.SetFont(fontkit.Face(12))
	drawTextTop(dc, "AMOUNT", pad, y, 12, palette.Slate)
	y += 20

	roundedRect(dc, pad, y, w-2*pad, 44, 8, palette.Field)
	// Currency-prefix cell inset one pixel inside the field.
	dc.SetColor(palette.FieldAlt)
	dc.DrawRectangle(pad+1, y+1, 39, 42)
	dc.Fill()

	dc.SetFont(fontkit.Face(14))
	drawTextTop(dc, "$", pad+12, y+12, 14, palette.Slate)
	dc.SetFont(fontkit.Face(16))
	drawTextTop(dc, "1,000.00", pad+52, y+8, 16, palette.TextDark)
	return y + 60
}

func drawSelectorRow(dc *gg.Context, w, y float64) float64 {
	dc.SetFont(fontkit.Face(12))
	drawTextTop(dc, "FROM", pad, y, 12, palette.Slate)
	drawTextTop(dc, "TO", w/2+10, y, 12, palette.Slate)
	y += 20

	dc.SetFont(fontkit.Face(14))

	roundedRect(dc, pad, y, w/2-25-pad, 40, 8, palette.Field)
	drawTextTop(dc, "USD - US Dollar", pad+12, y+10, 14, palette.TextDark)

	swapX := w/2 - 15
	roundedRect(dc, swapX, y, 30, 40, 8, palette.Field)
	drawTextTop(dc, "<>", swapX+8, y+10, 14, palette.Slate)

	roundedRect(dc, w/2+25, y, w/2-25-pad, 40, 8, palette.Field)
	drawTextTop(dc, "EUR - Euro", w/2+37, y+10, 14, palette.TextDark)
	return y + 60
}

func drawResultCard(dc *gg.Context, w, y float64) float64 {
	const cardHeight = 100
	fillLinearGradient(dc, pad, y, w-2*pad, cardHeight, palette.Primary, palette.PrimaryDark)

	dc.SetFont(fontkit.Face(12))
	drawTextTop(dc, "1,000.00 USD =", pad+16, y+12, 12, palette.WithAlpha(palette.White, 0xcc))
	dc.SetFont(fontkit.Face(32))
	drawTextTop(dc, "920.45", pad+16, y+35, 32, palette.White)
	dc.SetFont(fontkit.Face(14))
	drawTextTop(dc, "EUR", pad+120, y+45, 14, palette.WithAlpha(palette.White, 0xaa))
	dc.SetFont(fontkit.Face(12))
	drawTextTop(dc, "1 USD = 0.92045 EUR", pad+16, y+75, 12, palette.WithAlpha(palette.White, 0x99))

	return y + cardHeight + 16
}

func drawSaveButton(dc *gg.Context, w, y float64) float64 {
	roundedRect(dc, pad, y, w-2*pad, 40, 8, palette.Primary)

	const label = "Save to History"
	dc.SetFont(fontkit.Face(14))
	tw, _ := fontkit.Measure(dc, label, 14)
	drawTextTop(dc, label, (w-tw)/2, y+11, 14, palette.White)
	return y + 56
}

func drawQuickAccess(dc *gg.Context, w, y float64) float64 {
	dc.SetFont(fontkit.Face(12))
	drawTextTop(dc, "QUICK ACCESS", pad, y, 12, palette.Slate)
	y += 22

	x := pad
	for i, code := range []string{"USD", "EUR", "GBP", "JPY", "CAD"} {
		const chipWidth = 50.0
		fill, col := palette.Field, palette.Slate
		if i == 1 {
			fill, col = palette.Primary, palette.White
		}
		roundedRect(dc, x, y, chipWidth, 28, 14, fill)
		drawTextTop(dc, code, x+12, y+6, 12, col)
		x += chipWidth + 8
	}
	return y + 28
}

// roundedRect fills a rounded rectangle in one call.
func roundedRect(dc *gg.Context, x, y, w, h, r float64, fill color.NRGBA) {
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, w, h, r)
	dc.Fill()
}

// drawTextTop draws s with its top edge at y, converting from the
// top-anchored coordinates the layouts are written in to gg's baseline.
// Falls back to estimated metrics when the face cannot measure s.
func drawTextTop(dc *gg.Context, s string, x, y, faceSize float64, col color.NRGBA) {
	_, h := fontkit.Measure(dc, s, faceSize)
	dc.SetColor(col)
	dc.DrawString(s, x, y+h*0.8)
}
