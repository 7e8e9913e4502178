package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/loop/server"
)

func newTestServer(t *testing.T) (*httptest.Server, *server.Hub) {
	t.Helper()
	logger := log.New(io.Discard)
	hub := server.NewHub(config.Arcade(), logger)
	srv := httptest.NewServer(NewMux(hub, logger, "nuggets.example"))
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?name=tester"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

// nextSnapshot reads until a snapshot satisfying ok arrives.
func nextSnapshot(t *testing.T, conn *websocket.Conn, ok func(Snapshot) bool) Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		env, err := DecodeEnvelope(msg)
		require.NoError(t, err)
		if env.T != MsgSnapshot {
			continue
		}
		s, err := DecodePayload[Snapshot](env)
		require.NoError(t, err)
		if ok(s) {
			return s
		}
	}
}

func sendMsg(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	b, err := Encode(typ, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, b))
}

func TestSocketPlaysASession(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)

	first := nextSnapshot(t, conn, func(Snapshot) bool { return true })
	assert.Equal(t, "START", first.Phase)
	assert.Equal(t, 1, hub.Players())

	sendMsg(t, conn, MsgResize, Resize{W: 640, H: 480})
	sendMsg(t, conn, MsgStart, nil)

	playing := nextSnapshot(t, conn, func(s Snapshot) bool { return s.Phase == "PLAYING" && s.W == 640 })
	assert.Equal(t, 480, playing.H)

	// Fire sideways, under the nugget bounce line, so nothing intercepts the shot.
	sendMsg(t, conn, MsgAim, Aim{X: 640, Y: 430})
	sendMsg(t, conn, MsgFire, nil)
	fired := nextSnapshot(t, conn, func(s Snapshot) bool { return len(s.Projectiles) > 0 })
	assert.Equal(t, "APPLE", fired.Projectiles[0].Ammo)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Players() == 0 }, 3*time.Second, 20*time.Millisecond)
}

func TestSocketIgnoresGarbage(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	sendMsg(t, conn, "teleport", nil)
	sendMsg(t, conn, MsgStart, nil)

	s := nextSnapshot(t, conn, func(s Snapshot) bool { return s.Phase == "PLAYING" })
	assert.Equal(t, "PLAYING", s.Phase)
}

func TestShutdownReachesBrowser(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)
	defer conn.Close()

	nextSnapshot(t, conn, func(Snapshot) bool { return true })
	go hub.Shutdown(100 * time.Millisecond)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		env, err := DecodeEnvelope(msg)
		require.NoError(t, err)
		if env.T != MsgEvent {
			continue
		}
		ev, err := DecodePayload[Event](env)
		require.NoError(t, err)
		if ev.Kind == "shutdown" {
			return
		}
	}
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ssh -p 2222 nuggets.example")
	assert.NotContains(t, string(body), "{{.SSHHost}}")

	resp, err = http.Get(srv.URL + "/static/client.js")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
