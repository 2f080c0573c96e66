package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/gameplay"
)

const (
	maxFrameSize = 1024
	sendBuffer   = 16
)

// client is one websocket connection and the game played on it.
// Only readPump touches the session.
type client struct {
	conn    *websocket.Conn
	session *gameplay.Session
	radius  int
	send    chan []byte
	log     log.FieldLogger
}

func newClient(conn *websocket.Conn, session *gameplay.Session, radius int, logger log.FieldLogger) *client {
	return &client{
		conn:    conn,
		session: session,
		radius:  radius,
		send:    make(chan []byte, sendBuffer),
		log:     logger,
	}
}

// run sends the opening snapshot and pumps frames until the peer goes away
func (c *client) run() {
	done := make(chan struct{})
	go func() {
		c.writePump()
		close(done)
	}()

	c.sendJSON(NewSnapshot(c.session, c.radius, gameplay.Outcome{}))
	c.readPump()

	close(c.send)
	<-done
	c.conn.Close()
}

func (c *client) readPump() {
	c.conn.SetReadLimit(maxFrameSize)
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("Read failed")
			}
			return
		}
		c.sendJSON(c.handle(message))
	}
}

func (c *client) writePump() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.log.WithError(err).Warn("Write failed")
			// Drain so readPump never blocks on a dead connection
			for range c.send {
			}
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// handle applies one client frame and returns the reply
func (c *client) handle(message []byte) any {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return ErrorFrame{Error: fmt.Sprintf("malformed frame: %v", err)}
	}

	switch msg.Type {
	case TypeMove:
		dir, ok := world.ParseDirection(msg.Dir)
		if !ok {
			return ErrorFrame{Error: fmt.Sprintf("unknown direction %q", msg.Dir)}
		}
		out := c.session.Move(dir)
		if out.HasCollected {
			c.log.WithField("item", out.Collected).Debug("Item collected")
		}
		if out.Won && out.HasCollected {
			c.log.Info("Maze won")
		}
		return NewSnapshot(c.session, c.radius, out)

	case TypeReset:
		if err := c.session.NewGame(); err != nil {
			c.log.WithError(err).Error("Reset failed")
			return ErrorFrame{Error: err.Error()}
		}
		return NewSnapshot(c.session, c.radius, gameplay.Outcome{Reset: true})
	}

	return ErrorFrame{Error: fmt.Sprintf("unknown frame type %q", msg.Type)}
}

func (c *client) sendJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.WithError(err).Error("Cannot encode frame")
		return
	}
	c.send <- b
}
