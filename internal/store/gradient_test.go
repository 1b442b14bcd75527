package store

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/quickcurrency/assetgen/internal/palette"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func channelsWithin(a, b color.NRGBA, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol && diff(a.B, b.B) <= tol
}

func TestGradientRatio(t *testing.T) {
	tests := []struct {
		name string
		y, h int
		want float64
	}{
		{"top row", 0, 100, 0.3 / 1.3},
		{"mid row", 50, 100, (0.5 + 0.3) / 1.3},
		{"near bottom", 95, 100, (0.95 + 0.3) / 1.3},
		{"bottom", 100, 100, 1},
		{"past saturation", 135, 100, 1}, // 1.35+0.3 > 1.3, clamped
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradientRatio(tt.y, tt.h)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("GradientRatio(%d, %d) = %v, want %v", tt.y, tt.h, got, tt.want)
			}
		})
	}
}

func TestGradientRatioMonotonic(t *testing.T) {
	prev := GradientRatio(0, 800)
	for y := 1; y < 800; y++ {
		cur := GradientRatio(y, 800)
		if cur < prev {
			t.Fatalf("ratio decreased at y=%d: %v -> %v", y, prev, cur)
		}
		prev = cur
	}
}

func TestGradientBackgroundTopRowIsSkewed(t *testing.T) {
	img := GradientBackground(64, 100, palette.Primary, palette.PrimaryDark).Image()

	// The skew means the first row is already blended, not the raw start
	// color.
	want := palette.Lerp(palette.Primary, palette.PrimaryDark, 0.3/1.3)
	got := nrgbaAt(img, 5, 0)
	if !channelsWithin(got, want, 1) {
		t.Errorf("top row = %v, want %v (lerp at 0.3/1.3)", got, want)
	}
	if channelsWithin(got, palette.Primary, 1) {
		t.Error("top row equals raw start color; skew missing")
	}
}

func TestGradientBackgroundBottomRowNearEnd(t *testing.T) {
	img := GradientBackground(64, 100, palette.Primary, palette.PrimaryDark).Image()
	got := nrgbaAt(img, 5, 99)
	if !channelsWithin(got, palette.PrimaryDark, 2) {
		t.Errorf("bottom row = %v, want ~%v", got, palette.PrimaryDark)
	}
}

func TestGradientBackgroundBounded(t *testing.T) {
	// Every sampled row stays inside the [end, start] channel interval
	// (all end channels are below start's for the brand blues).
	img := GradientBackground(32, 200, palette.Primary, palette.PrimaryDark).Image()
	for y := 0; y < 200; y += 7 {
		c := nrgbaAt(img, 16, y)
		if c.R > palette.Primary.R+1 || c.R+1 < palette.PrimaryDark.R ||
			c.G > palette.Primary.G+1 || c.G+1 < palette.PrimaryDark.G ||
			c.B > palette.Primary.B+1 || c.B+1 < palette.PrimaryDark.B {
			t.Fatalf("row %d out of gradient bounds: %v", y, c)
		}
	}
}

func TestGradientBackgroundMonotonic(t *testing.T) {
	img := GradientBackground(32, 200, palette.Primary, palette.PrimaryDark).Image()
	prev := nrgbaAt(img, 16, 0)
	for y := 1; y < 200; y++ {
		cur := nrgbaAt(img, 16, y)
		// Channels may only move toward the end color, modulo one count
		// of rasterization rounding.
		if cur.R > prev.R+1 || cur.G > prev.G+1 || cur.B > prev.B+1 {
			t.Fatalf("row %d moved away from end color: %v -> %v", y, prev, cur)
		}
		prev = cur
	}
}
