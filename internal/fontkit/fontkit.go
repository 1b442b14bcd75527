// Package fontkit resolves a usable scalable font exactly once per process.
// It walks an ordered list of common system font files and, when none of
// them loads, falls back to the embedded Go Regular face. Callers therefore
// always get a working face; only the glyph coverage varies by machine.
package fontkit

import (
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// MinFaceSize is the smallest face ever handed out. Below this, glyphs
// rasterize to mush at icon scale.
const MinFaceSize = 8

// Only TTF files work here; TTC collections are not supported by the parser.
var candidates = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Monaco.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
}

var (
	once   sync.Once
	source *text.FontSource
)

// Source returns the process-wide font source. The first call resolves the
// fallback chain; later calls return the cached source.
func Source() *text.FontSource {
	once.Do(func() {
		for _, path := range candidates {
			src, err := text.NewFontSourceFromFile(path)
			if err != nil {
				continue
			}
			slog.Debug("font resolved", "path", path, "name", src.Name())
			source = src
			return
		}
		// Embedded fallback cannot fail: goregular.TTF is a valid font
		// compiled into the binary.
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			panic("fontkit: embedded Go Regular failed to parse: " + err.Error())
		}
		slog.Debug("font resolved", "path", "embedded", "name", src.Name())
		source = src
	})
	return source
}

// Face returns a face at the given size, clamped to MinFaceSize.
func Face(size float64) text.Face {
	if size < MinFaceSize {
		size = MinFaceSize
	}
	return Source().Face(size)
}

// Measure returns the rendered size of s for the context's current face.
// When metrics are unavailable (no face set, or the face reports zero for
// the string) it estimates from the face size instead, so layout can always
// proceed: width size/2 per the narrow-glyph rule of thumb, height size.
func Measure(dc *gg.Context, s string, size float64) (w, h float64) {
	w, h = dc.MeasureString(s)
	if w > 0 && h > 0 {
		return w, h
	}
	return size / 2, size
}
