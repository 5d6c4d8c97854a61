//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"letter-grid/internal/app"
	"letter-grid/internal/core"
	"letter-grid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(*cfg, core.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	faces, err := render.NewFaces()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("letters")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	game := app.New(session, faces)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
