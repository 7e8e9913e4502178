package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nuggethunt/internal/loop/server"
)

//go:embed static
var staticFiles embed.FS

// NewMux routes the page, its assets and the websocket endpoint.
// sshHost is shown on the page as the terminal alternative.
func NewMux(hub *server.Hub, logger *log.Logger, sshHost string) *http.ServeMux {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	page, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		panic(err)
	}
	index := strings.ReplaceAll(string(page), "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.Handle("/ws", NewHandler(hub, logger))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(index))
	})
	return mux
}
