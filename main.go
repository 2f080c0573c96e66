package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/engine/terminal"
	"lanternmaze/pkg/game/audio"
	"lanternmaze/pkg/game/gameplay"
	"lanternmaze/pkg/game/generator"
	"lanternmaze/pkg/game/renderer"
	ebitenRenderer "lanternmaze/pkg/game/renderer/ebiten"
	"lanternmaze/pkg/game/renderer/tui"
)

func initGettext() {
	gotext.Configure("locales", "en_GB", "default")
}

// gameLoop draws, waits for input and applies it until the player quits
func gameLoop(r renderer.Renderer, session *gameplay.Session, radius int) {
	for !session.Quit {
		r.Clear()
		r.RenderFrame(session.Frame(radius))
		session.ProcessIntent(r.GetInput())
	}
	r.RenderFrame(session.Frame(radius))
}

func main() {
	rendererName := flag.String("renderer", "tui", "front-end to play with: tui or ebiten")
	seed := flag.Int64("seed", 0, "maze seed (0 picks one from the clock)")
	radius := flag.Int("radius", 3, "visibility radius in cells")
	sound := flag.Bool("sound", false, "play chimes on pickup and win")
	retries := flag.Int("retries", 5, "how many times to retry building a maze")
	verbose := flag.Bool("v", false, "log generator details")
	flag.Parse()

	initGettext()

	// The TUI owns stdout, so logs go to stderr and stay quiet unless asked for
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("Starting")

	factory, err := gameplay.SeededFactory(generator.DefaultConfig(), *seed, log.StandardLogger())
	if err != nil {
		log.WithError(err).Fatal("Cannot create generator")
	}

	var opts []gameplay.Option
	if *sound {
		player := audio.NewPlayer(0.3)
		if err := player.Init(); err != nil {
			log.WithError(err).Warn("Sound disabled")
		} else {
			defer player.Close()
			opts = append(opts, gameplay.WithChimes(player))
		}
	}

	session, err := gameplay.NewSession(factory, *retries, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, gotext.Get("NEW_GAME_FAILED")+"\n", err)
		os.Exit(1)
	}

	switch *rendererName {
	case "ebiten":
		r := ebitenRenderer.New(*radius)
		r.Init()
		if err := r.Run(func() { gameLoop(r, session, *radius) }); err != nil {
			log.WithError(err).Fatal("Window closed with error")
		}

	case "tui":
		width, height := terminal.GetSize()
		fitted := terminal.FitRadius(*radius, width, height)
		if fitted != *radius {
			log.WithFields(log.Fields{"radius": *radius, "fitted": fitted}).Info("Shrinking view to fit the terminal")
		}
		r := tui.New()
		r.Init()
		gameLoop(r, session, fitted)

	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q, want tui or ebiten\n", *rendererName)
		os.Exit(2)
	}
}
