// Package web serves the browser client and bridges its websocket to a
// per-connection game session.
package web

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/loop/server"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingInterval     = 25 * time.Second
	snapshotInterval = time.Second / 30
	maxMessageSize   = 1 << 12
	maxNameLength    = 16
)

// Handler upgrades requests to websockets and plays one session per
// connection.
type Handler struct {
	hub      *server.Hub
	log      *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler backed by hub.
func NewHandler(hub *server.Hub, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		hub: hub,
		log: logger,
		upgrader: websocket.Upgrader{
			// The page is served from the same origin; other origins are
			// accepted so the client can be embedded elsewhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	sess := h.hub.Open(playerName(r.URL.Query().Get("name")))
	defer h.hub.Close(sess)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writePump(ctx, conn, sess)
	}()

	h.readPump(conn, sess)
	cancel()
	<-done
}

// readPump feeds client messages to the session until the socket fails.
func (h *Handler) readPump(conn *websocket.Conn, sess *server.Session) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("websocket read failed", "session", sess.ID, "err", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		env, err := DecodeEnvelope(msg)
		if err != nil {
			h.log.Debug("bad message", "session", sess.ID, "err", err)
			continue
		}
		cmd, err := CommandFor(env)
		if err != nil {
			h.log.Debug("bad message", "session", sess.ID, "err", err)
			continue
		}
		if !sess.Send(cmd) {
			h.log.Debug("command dropped", "session", sess.ID, "type", env.T)
		}
	}
}

// writePump is the only writer on conn. It forwards session events as they
// happen and snapshots at a fixed rate, and keeps the connection alive.
func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, sess *server.Session) {
	// A failed write must also stop the read side.
	defer conn.Close()

	snapshots := time.NewTicker(snapshotInterval)
	defer snapshots.Stop()
	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	events := sess.Events()
	var last *game.Snapshot

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := h.send(conn, MsgEvent, eventFor(ev)); err != nil {
				h.log.Warn("websocket write failed", "session", sess.ID, "err", err)
				return
			}
		case <-snapshots.C:
			s := sess.Snapshot()
			if s == last {
				continue
			}
			last = s
			if err := h.send(conn, MsgSnapshot, snapshotFor(s)); err != nil {
				h.log.Warn("websocket write failed", "session", sess.ID, "err", err)
				return
			}
		case <-pings.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, t string, payload any) error {
	b, err := Encode(t, payload)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}

// playerName keeps printable runes of the requested name, capped in length.
func playerName(raw string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return r
		}
		return -1
	}, raw)
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}
	if name == "" {
		return "guest"
	}
	return name
}
