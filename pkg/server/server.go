// Package server plays maze sessions over websockets, one game per connection.
package server

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/game/gameplay"
)

// FactoryMaker returns the game factory for a new connection. Generators are
// not safe for concurrent use, so each connection gets its own.
type FactoryMaker func(conn int64) (gameplay.Factory, error)

// Config holds the per-session settings
type Config struct {
	Radius  int
	Retries int
}

// DefaultConfig returns the settings the browser client expects
func DefaultConfig() Config {
	return Config{Radius: 3, Retries: 5}
}

// GameServer accepts websocket connections and runs a session on each
type GameServer struct {
	Upgrader *websocket.Upgrader

	maker   FactoryMaker
	cfg     Config
	log     log.FieldLogger
	nextID  atomic.Int64
	clients atomic.Int64
}

// Option configures a GameServer
type Option func(*GameServer)

// WithLogger sets the logger used for connection lifecycle events
func WithLogger(l log.FieldLogger) Option {
	return func(s *GameServer) {
		s.log = l
	}
}

// NewGameServer creates a server that builds games with maker
func NewGameServer(maker FactoryMaker, cfg Config, opts ...Option) *GameServer {
	if cfg.Radius < 0 {
		cfg.Radius = 0
	}
	s := &GameServer{
		Upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		maker: maker,
		cfg:   cfg,
		log:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clients returns the number of open connections
func (s *GameServer) Clients() int64 {
	return s.clients.Load()
}

// HandleHttpCall builds a session, upgrades the request and plays until the
// connection closes.
func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := s.nextID.Add(1)
		logger := s.log.WithFields(log.Fields{"conn": id, "remote": r.RemoteAddr})
		logger.Info("Connection received")

		session, err := s.newSession(id, logger)
		if err != nil {
			logger.WithError(err).Error("Cannot start game")
			http.Error(w, "cannot start game", http.StatusServiceUnavailable)
			return
		}

		conn, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the HTTP error
			logger.WithError(err).Warn("Websocket upgrade failed")
			return
		}

		s.clients.Add(1)
		defer s.clients.Add(-1)

		c := newClient(conn, session, s.cfg.Radius, logger)
		c.run()
		logger.Info("Connection closed")
	}
}

// HandleHealth reports that the server is up
func (s *GameServer) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func (s *GameServer) newSession(id int64, logger log.FieldLogger) (*gameplay.Session, error) {
	factory, err := s.maker(id)
	if err != nil {
		return nil, err
	}
	return gameplay.NewSession(factory, s.cfg.Retries, gameplay.WithLogger(logger))
}
