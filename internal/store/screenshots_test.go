package store

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestAssetDimensions(t *testing.T) {
	tests := []struct {
		name   string
		render func() *gg.Context
		w, h   int
	}{
		{"screenshot 1", Screenshot1, ScreenshotWidth, ScreenshotHeight},
		{"screenshot 2", Screenshot2, ScreenshotWidth, ScreenshotHeight},
		{"screenshot 3", Screenshot3, ScreenshotWidth, ScreenshotHeight},
		{"promo tile", PromoTile, PromoTileWidth, PromoTileHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := tt.render()
			if dc.Width() != tt.w || dc.Height() != tt.h {
				t.Errorf("canvas is %dx%d, want %dx%d", dc.Width(), dc.Height(), tt.w, tt.h)
			}
		})
	}
}

func TestScreenshot1PopupComposited(t *testing.T) {
	img := Screenshot1().Image()

	// Inside the popup the background is white; outside it the gradient
	// blue shows through. Failing either means compositing broke.
	inside := nrgbaAt(img, 1120, 200)
	if inside.R < 240 || inside.G < 240 || inside.B < 240 {
		t.Errorf("popup interior = %v, want white", inside)
	}
	outside := nrgbaAt(img, 400, 700)
	if outside.B < 120 || outside.R > 100 {
		t.Errorf("background = %v, want gradient blue", outside)
	}
}

func TestScreenshot1ShadowPresent(t *testing.T) {
	img := Screenshot1().Image()

	// Just outside the popup's left edge the blurred shadow darkens the
	// gradient compared to the same row far from the popup.
	shadowed := nrgbaAt(img, 775, 400)
	clear := nrgbaAt(img, 400, 400)
	if !(int(shadowed.R)+int(shadowed.G)+int(shadowed.B) <
		int(clear.R)+int(clear.G)+int(clear.B)) {
		t.Errorf("no shadow darkening: near=%v far=%v", shadowed, clear)
	}
}

func TestScreenshot2CardGrid(t *testing.T) {
	img := Screenshot2().Image()

	// Card fill is translucent white over the green gradient, so a pixel
	// inside a card is strictly lighter than the background on its row.
	inside := nrgbaAt(img, 740, 250)
	outside := nrgbaAt(img, 600, 250)
	if inside.R <= outside.R {
		t.Errorf("card pixel %v not lighter than background %v", inside, outside)
	}
}

func TestScreenshot3ClockFace(t *testing.T) {
	img := Screenshot3().Image()

	// Ring stroke at the 3 o'clock point and the center dot are white.
	for _, p := range [][2]int{{1050, 400}, {900, 400}} {
		c := nrgbaAt(img, p[0], p[1])
		if c.R < 200 || c.G < 200 || c.B < 200 {
			t.Errorf("clock pixel (%d,%d) = %v, want white", p[0], p[1], c)
		}
	}

	// Well inside the ring, off the hands, the gradient shows.
	c := nrgbaAt(img, 820, 330)
	if c.R > 220 && c.G > 220 && c.B > 220 {
		t.Errorf("ring interior unexpectedly white: %v", c)
	}
}

func TestPromoTileLockup(t *testing.T) {
	img := PromoTile().Image()

	// Gradient background in the lower-right clear area.
	c := nrgbaAt(img, 400, 250)
	if c.B < 120 {
		t.Errorf("promo tile background = %v, want gradient blue", c)
	}
}
