// Package store renders the browser-store marketing assets for
// QuickCurrency: three 1280x800 screenshots and a small promo tile, each a
// layered composition of gradient background, mock UI, and display text.
package store

// Chrome Web Store asset dimensions. The marquee format is defined by the
// store but not part of the generated set.
const (
	ScreenshotWidth  = 1280
	ScreenshotHeight = 800

	PromoTileWidth  = 440
	PromoTileHeight = 280

	MarqueeWidth  = 1400
	MarqueeHeight = 560
)
