package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/sibyl/engine"
	"github.com/minaorangina/sibyl/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS attaches a websocket renderer to an existing session
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorRes{"missing session ID"})
		return
	}

	session := g.store.FindSession(sessionID)
	if session == nil {
		writeJSON(w, http.StatusNotFound, ErrorRes{unknownSessionIDMsg(sessionID)})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("websocket upgrade failed", "session", sessionID, "error", err)
		return
	}

	c := newWSClient(conn, session, g.logger.With("session", sessionID))
	c.unsubscribe = session.Subscribe(func(snap protocol.Snapshot) {
		c.push(protocol.OutboundMessage{Command: protocol.State, Snapshot: &snap})
	})

	go c.writePump()
	go c.readPump()

	snap := session.Snapshot()
	c.push(protocol.OutboundMessage{Command: protocol.State, Snapshot: &snap})
}

type wsClient struct {
	conn        *websocket.Conn
	session     *engine.Session
	unsubscribe func()
	logger      *slog.Logger
	send        chan []byte
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

func newWSClient(conn *websocket.Conn, session *engine.Session, logger *slog.Logger) *wsClient {
	ctx, cancel := context.WithCancel(context.Background())
	return &wsClient{
		conn:    conn,
		session: session,
		logger:  logger,
		send:    make(chan []byte, 16),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c *wsClient) push(msg protocol.OutboundMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("could not encode message", "command", msg.Command, "error", err)
		return
	}

	select {
	case c.send <- data:
	case <-c.done:
	}
}

func (c *wsClient) handle(msg protocol.InboundMessage) {
	if msg.Command == protocol.State {
		snap := c.session.Snapshot()
		c.push(protocol.OutboundMessage{Command: protocol.State, Snapshot: &snap})
		return
	}

	if err := dispatch(c.ctx, c.session, msg); err != nil {
		c.logger.Debug("command refused", "command", msg.Command, "error", err)
		c.push(protocol.OutboundMessage{Command: protocol.Error, Error: err.Error()})
	}
}

func (c *wsClient) readPump() {
	defer func() {
		c.unsubscribe()
		c.cancel()
		close(c.done)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg protocol.InboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket closed", "error", err)
			}
			return
		}
		go c.handle(msg)
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
