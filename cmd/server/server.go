package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/game/gameplay"
	"lanternmaze/pkg/game/generator"
	"lanternmaze/pkg/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	seed := flag.Int64("seed", 0, "base maze seed; connection n plays seed+n (0 picks one from the clock)")
	radius := flag.Int("radius", server.DefaultConfig().Radius, "visibility radius in cells")
	retries := flag.Int("retries", server.DefaultConfig().Retries, "how many times to retry building a maze")
	locales := flag.String("locales", "locales", "directory holding the translation files")
	flag.Parse()

	gotext.Configure(*locales, "en_GB", "default")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("Base seed")

	maker := func(conn int64) (gameplay.Factory, error) {
		return gameplay.SeededFactory(generator.DefaultConfig(), *seed+conn, log.WithField("conn", conn))
	}

	s := Server{
		GameServer: server.NewGameServer(maker, server.Config{Radius: *radius, Retries: *retries}),
	}
	s.routes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
