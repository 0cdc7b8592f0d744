package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"msd/internal/assets"
	"msd/internal/host"
	"msd/internal/logging"
	"msd/internal/overlay"
	"msd/internal/platform"
	"msd/internal/settings"
)

// Window used when the monitor size is unknown
const (
	FallbackWidth  = 1280
	FallbackHeight = 720
	WindowTitle    = "MSD Overlay"
)

func main() {
	log := logging.New(os.Stderr, zerolog.InfoLevel)

	// 1. Environment
	if err := platform.Default().Setup(); err != nil {
		log.Warn().Err(err).Msg("environment setup failed")
	}

	// 2. Window Setup: borderless, always on top, covering the monitor
	w, h := FallbackWidth, FallbackHeight
	if m := ebiten.Monitor(); m != nil {
		w, h = m.Size()
	}
	if w <= 0 || h <= 0 {
		w, h = FallbackWidth, FallbackHeight
	}
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowMousePassthrough(true)
	log.Info().Int("width", w).Int("height", h).Msg("starting overlay")

	// 3. Initialize Overlay
	o := overlay.New(settings.Default(), logging.Component(log, "overlay"))
	game := NewGame(o, host.Input{}, assets.UIFace())

	// 4. Run Loop
	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(game, op); err != nil {
		log.Fatal().Err(err).Msg("overlay stopped")
	}
}
