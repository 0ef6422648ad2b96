// Command aafill renders a YAML scene of filled paths to a PNG file with
// the analytic anti-aliasing filler.
//
// Usage:
//
//	aafill -scene scene.yaml -o out.png [-force-rle] [-no-fallback] [-bands 8] [-zoom 4] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/aafill"
	"github.com/gogpu/aafill/internal/parallel"
	"github.com/gogpu/aafill/internal/scene"
)

type config struct {
	scene      string
	output     string
	forceRLE   bool
	noFallback bool
	bands      int
	zoom       int
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scene, "scene", "", "scene file (YAML)")
	flag.StringVar(&cfg.output, "o", "out.png", "output PNG file")
	flag.BoolVar(&cfg.forceRLE, "force-rle", false, "always use run-length encoded coverage")
	flag.BoolVar(&cfg.noFallback, "no-fallback", false, "fail on paths the analytic filler cannot draw")
	flag.IntVar(&cfg.bands, "bands", 1, "render in this many row bands in parallel")
	flag.IntVar(&cfg.zoom, "zoom", 1, "integer magnification of the output")
	flag.BoolVar(&cfg.verbose, "v", false, "log routing decisions")
	flag.Parse()

	if err := run(context.Background(), cfg, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "aafill:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, stderr io.Writer) error {
	if cfg.scene == "" {
		return errors.New("missing -scene")
	}
	if cfg.zoom < 1 {
		return fmt.Errorf("invalid -zoom %d", cfg.zoom)
	}
	doc, err := scene.Load(cfg.scene)
	if err != nil {
		return err
	}
	if cfg.forceRLE {
		doc.Options.ForceRLE = true
	}
	if cfg.noFallback {
		doc.Options.Fallback = false
	}

	logger, closeLog := newLogger(doc.Log, cfg.verbose, stderr)
	defer closeLog()
	aafill.SetLogger(logger)
	defer aafill.SetLogger(nil)

	var img *image.RGBA
	if cfg.bands > 1 {
		pool := parallel.NewWorkerPool(0)
		img, err = doc.RenderParallel(ctx, pool, cfg.bands, logger)
		pool.Close()
	} else {
		img, err = doc.Render(ctx, aafill.NewFiller(), logger)
	}
	if err != nil {
		return err
	}

	var out image.Image = img
	if cfg.zoom > 1 {
		b := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*cfg.zoom, b.Dy()*cfg.zoom))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, b, draw.Src, nil)
		out = big
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", cfg.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote image", "file", cfg.output, "shapes", len(doc.Shapes), "bounds", out.Bounds())
	return nil
}

// newLogger writes JSON to a rotating file when the scene names one and
// text to stderr otherwise. -v forces debug level.
func newLogger(lc scene.LogConfig, verbose bool, stderr io.Writer) (*slog.Logger, func()) {
	level := parseLevel(lc.Level)
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if file := strings.TrimSpace(lc.File); file != "" {
		w := &lumberjack.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		return slog.New(slog.NewJSONHandler(w, opts)), func() { _ = w.Close() }
	}
	return slog.New(slog.NewTextHandler(stderr, opts)), func() {}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
