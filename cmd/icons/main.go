// Command icons renders the QuickCurrency extension icon set, one PNG per
// manifest size, into the extension's public icon directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/quickcurrency/assetgen/internal/icon"
)

func main() {
	out := flag.String("out", filepath.Join("public", "icon"), "output directory")
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
		slog.Error("icon generation failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, size := range icon.Sizes {
		dc := icon.Generate(size)
		path := filepath.Join(outDir, fmt.Sprintf("%d.png", size))
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		slog.Info("icon written", "path", path, "px", size)
	}
	return nil
}
