package main

import (
	"fmt"
	"image/color"
	"os"

	"point-visualizer/internal/asset"
	"point-visualizer/internal/config"
	"point-visualizer/internal/debug"
	"point-visualizer/internal/graphics"
	"point-visualizer/internal/logger"
	"point-visualizer/internal/primitives"
	"point-visualizer/internal/scene"
	"point-visualizer/internal/viewer"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic", zap.Any("value", r), zap.Stack("stack"))
			_ = log.Sync()
			panic(r)
		}
		_ = log.Sync()
	}()

	loader := asset.NewLoader(os.DirFS(cfg.AssetDir), log.Named("asset"))
	vc := viewer.NewContext(loader)

	reg := primitives.NewRegistry(cfg.Render.CircleSegments)
	scn := scene.New(cfg.Camera.Fovy, reg)
	viewer.Setup(vc, cfg.Setup(), scn, log.Named("viewer"))
	renderer := viewer.NewRenderer(vc, reg, cfg.RenderOptions(), log.Named("viewer"))

	overlay := debug.New(cfg.Debug.ShowFPS)
	overlay.Status = func() string {
		if renderer.Failed() {
			return "failed to load " + cfg.Dataset
		}
		if vc.State() == viewer.StateLoading {
			return "loading"
		}
		return ""
	}

	bg := cfg.Window.ClearColor
	window := graphics.Window{
		Width:      int32(cfg.Window.Width),
		Height:     int32(cfg.Window.Height),
		Title:      cfg.Window.Title,
		VSync:      cfg.Window.VSync,
		EscClose:   cfg.Window.EscClose,
		ClearColor: color.RGBA{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: 255},
	}
	draw := func() {
		scn.Draw(renderer.Frame)
		overlay.Draw()
	}
	log.Info("starting viewer",
		zap.String("asset_dir", cfg.AssetDir),
		zap.String("dataset", cfg.Dataset),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	graphics.Run(window, scn.Update, draw)

	// The loader goroutine may still be reading if the window closed early.
	if err := loader.Wait(); err != nil {
		log.Warn("loader shutdown", zap.Error(err))
	}
	log.Info("viewer closed", zap.Int("primitives", renderer.Primitives()))
}
