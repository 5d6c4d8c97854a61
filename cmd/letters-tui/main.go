package main

import (
	"flag"
	"log"

	"letter-grid/internal/app"
	"letter-grid/internal/core"
	"letter-grid/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.CellSize = 12
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(*cfg, core.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	runErr := term.New(screen, session).Run()
	screen.Fini()
	session.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
