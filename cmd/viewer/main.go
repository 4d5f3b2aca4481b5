package main

import (
	"fmt"
	"os"
	"time"

	"bin-viewer/internal/commands"
	"bin-viewer/internal/debug"
	"bin-viewer/internal/engineconfig"
	"bin-viewer/internal/graphics"
	"bin-viewer/internal/layout"
	"bin-viewer/internal/logger"
	"bin-viewer/internal/scene"
	"bin-viewer/internal/terminal"
	"bin-viewer/internal/ui"
	"bin-viewer/internal/viewer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bin-viewer:", err)
		os.Exit(1)
	}
}

func run() error {
	prefs, err := engineconfig.LoadWithDotEnv(engineconfig.DefaultPath, engineconfig.DotEnvPath)
	if err != nil {
		return err
	}
	log := logger.New(prefs.LogPath)
	defer log.Close()
	log.Info("prefs loaded", "path", engineconfig.DefaultPath, "window", fmt.Sprintf("%dx%d", prefs.WindowWidth, prefs.WindowHeight))

	file, err := loadLayout(prefs.LayoutPath)
	if err != nil {
		log.Error("layout", "err", err)
		return err
	}
	built, err := layout.Build(file)
	if err != nil {
		log.Error("layout", "err", err)
		return err
	}
	app, err := viewer.New(built, viewer.Options{
		Width:    prefs.WindowWidth,
		Height:   prefs.WindowHeight,
		GateName: prefs.GateName,
		Logger:   log.Logger,
	})
	if err != nil {
		log.Error("viewer", "err", err)
		return err
	}

	overlay := ui.New()
	if prefs.StylePath != "" {
		if err := overlay.LoadCSS(prefs.StylePath); err != nil {
			log.Warn("stylesheet not loaded, using built-in", "err", err)
		}
	}
	dbg := debug.New(prefs.ShowFPS, prefs.ShowMemAlloc)
	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)

	var now time.Duration
	store, err := engineconfig.OpenStore(engineconfig.DefaultPath)
	if err != nil {
		return err
	}
	reg := commands.NewRegistry()
	viewer.RegisterCommands(reg, app, func() time.Duration { return now }, viewer.Toggles{
		SetFPS: func(on bool) error {
			dbg.SetShowFPS(on)
			return store.Update(func(p *engineconfig.Prefs) { p.ShowFPS = on })
		},
		SetGrid: func(on bool) error {
			scn.SetGridVisible(on)
			return store.Update(func(p *engineconfig.Prefs) { p.GridVisible = on })
		},
	})
	term := terminal.New(log, reg)

	var pointer graphics.Pointer
	update := func(f graphics.Frame) {
		now = f.Now
		if vp := app.Viewport(); f.Resized || int(vp.Width) != f.Width || int(vp.Height) != f.Height {
			app.Resize(f.Width, f.Height)
		}
		term.Update()
		graphics.Orbit(app.Camera())
		for _, ev := range pointer.Poll(f.Now) {
			app.HandleEvent(ev)
		}
		app.Update(f.Now)
	}
	draw := func(f graphics.Frame) {
		scn.Sync(app.Camera())
		scn.Draw(app.Graph())
		scn.DrawLabels(app.Graph())
		scene.DrawNodes(overlay.InfoPanel().Layout(app.State(), int32(f.Width), int32(f.Height), scene.MeasureText))
		term.Draw()
		dbg.Draw()
	}
	graphics.Run(graphics.WindowOptions{
		Title:      "Smart Waste Bin",
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
	}, update, draw)
	log.Info("window closed")
	return nil
}

// loadLayout reads the layout override at path, or the embedded bin layout when path is empty.
func loadLayout(path string) (layout.File, error) {
	if path == "" {
		return layout.Default()
	}
	return layout.LoadFile(path)
}
