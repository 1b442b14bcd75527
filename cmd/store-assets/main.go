// Command store-assets renders the Chrome Web Store marketing set for
// QuickCurrency: three screenshots and the small promo tile.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/store"
)

// assets maps each required store file to its renderer, in upload order.
var assets = []struct {
	name   string
	render func() *gg.Context
}{
	{"screenshot-1-converter.png", store.Screenshot1},
	{"screenshot-2-currencies.png", store.Screenshot2},
	{"screenshot-3-realtime.png", store.Screenshot3},
	{"promo-tile-440x280.png", store.PromoTile},
}

func main() {
	out := flag.String("out", "store-assets", "output directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	if err := run(*out); err != nil {
		slog.Error("store asset generation failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, a := range assets {
		dc := a.render()
		path := filepath.Join(outDir, a.name)
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		slog.Info("asset written", "path", path, "kb", fmt.Sprintf("%.1f", float64(info.Size())/1024))
	}
	return nil
}
