package main

import (
	"flag"
	"log"
	"os"

	"github.com/Garsondee/Zone-Royale/internal/config"
	"github.com/Garsondee/Zone-Royale/internal/game"
	"github.com/Garsondee/Zone-Royale/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfgPath := flag.String("config", "zoneroyale.json", "path to JSON settings file")
	flag.Parse()

	settings, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(os.Stdout, settings.LogLevel, false)

	g := game.New(game.Options{
		Tuning: settings.Tuning(),
		Seed:   settings.Seed,
		Logger: logger,
	})
	ebiten.SetWindowTitle("Zone Royale")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
