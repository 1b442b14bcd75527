package store

import (
	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/fontkit"
	"github.com/quickcurrency/assetgen/internal/palette"
)

// Display type scale shared by the screenshots.
const (
	titleSize    = 56.0
	subtitleSize = 28.0
)

// Screenshot1 shows the converter itself: title copy on the left, the mock
// popup floating over a soft drop shadow on the right.
func Screenshot1() *gg.Context {
	dc := GradientBackground(ScreenshotWidth, ScreenshotHeight, palette.Primary, palette.PrimaryDark)

	dc.SetFont(fontkit.Face(titleSize))
	drawTextTop(dc, "Fast Currency", 80, 280, titleSize, palette.White)
	drawTextTop(dc, "Conversion", 80, 350, titleSize, palette.White)
	dc.SetFont(fontkit.Face(subtitleSize))
	drawTextTop(dc, "200+ currencies including crypto", 80, 440, subtitleSize,
		palette.WithAlpha(palette.White, 0xcc))

	const popupX, popupY = 780.0, 180.0
	popup := MockPopup(360, 420)

	// Shadow: a translucent rounded rectangle on its own layer, blurred,
	// composited 10 px outside the popup on every side.
	shadow := gg.NewContext(380, 440)
	shadow.SetRGBA(0, 0, 0, 80.0/255)
	shadow.DrawRoundedRectangle(10, 10, 360, 420, 16)
	shadow.Fill()
	blurred := imaging.Blur(shadow.Image(), 15)

	dc.DrawImage(gg.ImageBufFromImage(blurred), popupX-10, popupY-10)
	dc.DrawImage(gg.ImageBufFromImage(popup.Image()), popupX, popupY)

	return dc
}

// Screenshot2 advertises currency coverage with a grid of symbol cards on a
// green gradient.
func Screenshot2() *gg.Context {
	dc := GradientBackground(ScreenshotWidth, ScreenshotHeight, palette.Accent, palette.AccentDark)

	dc.SetFont(fontkit.Face(titleSize))
	drawTextTop(dc, "200+ Currencies", 80, 280, titleSize, palette.White)
	drawTextTop(dc, "Including Crypto", 80, 360, titleSize, palette.White)
	dc.SetFont(fontkit.Face(subtitleSize))
	drawTextTop(dc, "Bitcoin, Ethereum, and more", 80, 450, subtitleSize,
		palette.WithAlpha(palette.White, 0xcc))

	currencies := []struct {
		code, symbol string
	}{
		{"USD", "$"}, {"EUR", "€"}, {"GBP", "£"}, {"JPY", "¥"},
		{"BTC", "₿"}, {"ETH", "Ξ"}, {"CAD", "C$"}, {"AUD", "A$"},
		{"CHF", "Fr"}, {"CNY", "¥"}, {"INR", "₹"}, {"KRW", "₩"},
	}

	const (
		gridX      = 720.0
		gridY      = 180.0
		cardWidth  = 120.0
		cardHeight = 80.0
		gap        = 16.0
	)

	for i, c := range currencies {
		x := gridX + float64(i%4)*(cardWidth+gap)
		y := gridY + float64(i/4)*(cardHeight+gap)

		roundedRect(dc, x, y, cardWidth, cardHeight, 12, palette.WithAlpha(palette.White, 0x20))
		dc.SetFont(fontkit.Face(titleSize))
		drawTextTop(dc, c.symbol, x+15, y+15, titleSize, palette.White)
		dc.SetFont(fontkit.Face(24))
		drawTextTop(dc, c.code, x+15, y+55, 24, palette.WithAlpha(palette.White, 0xaa))
	}

	return dc
}

// Screenshot3 pitches live rates: title copy beside a clock face built from
// primitive strokes.
func Screenshot3() *gg.Context {
	dc := GradientBackground(ScreenshotWidth, ScreenshotHeight, palette.Violet, palette.VioletDark)

	dc.SetFont(fontkit.Face(titleSize))
	drawTextTop(dc, "Real-time Rates", 80, 300, titleSize, palette.White)
	drawTextTop(dc, "Always Up to Date", 80, 380, titleSize, palette.White)
	dc.SetFont(fontkit.Face(subtitleSize))
	drawTextTop(dc, "Free, no signup required", 80, 470, subtitleSize,
		palette.WithAlpha(palette.White, 0xcc))

	const cx, cy, radius = 900.0, 400.0, 150.0
	dc.SetColor(palette.White)

	dc.SetLineWidth(8)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	dc.SetLineWidth(6)
	dc.DrawLine(cx, cy, cx, cy-80)
	dc.Stroke()
	dc.DrawLine(cx, cy, cx+60, cy+40)
	dc.Stroke()

	dc.DrawCircle(cx, cy, 10)
	dc.Fill()

	return dc
}

// PromoTile is the condensed 440x280 store tile: currency lockup, product
// name, two lines of copy.
func PromoTile() *gg.Context {
	dc := GradientBackground(PromoTileWidth, PromoTileHeight, palette.Primary, palette.PrimaryDark)

	dc.SetFont(fontkit.Face(48))
	drawTextTop(dc, "$", 40, 60, 48, palette.White)
	drawTextTop(dc, "€", 150, 60, 48, palette.White)
	dc.SetFont(fontkit.Face(32))
	drawTextTop(dc, "<>", 90, 70, 32, palette.Accent)

	drawTextTop(dc, "QuickCurrency", 40, 140, 32, palette.White)
	dc.SetFont(fontkit.Face(18))
	drawTextTop(dc, "Fast currency converter", 40, 185, 18,
		palette.WithAlpha(palette.White, 0xcc))
	drawTextTop(dc, "200+ currencies", 40, 215, 18,
		palette.WithAlpha(palette.White, 0xaa))

	return dc
}
