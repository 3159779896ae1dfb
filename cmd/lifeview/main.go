//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"lifeview/internal/app"
	"lifeview/internal/core"
	_ "lifeview/internal/sims/briansbrain"
	_ "lifeview/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfgPath := flag.String("config", "", "optional YAML config file (overrides flags)")
	flag.Parse()

	if *cfgPath != "" {
		if err := cfg.LoadFile(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	auto := factory(map[string]string{
		"width":  strconv.Itoa(cfg.Width),
		"height": strconv.Itoa(cfg.Height),
	})
	auto.Reset(cfg.Seed)

	game := app.New(auto, cfg)
	size := auto.Size()

	ebiten.SetWindowTitle("lifeview — " + auto.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)
	// One Update per rendered frame: the display's refresh drives the
	// scheduler's timestamp stream.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
