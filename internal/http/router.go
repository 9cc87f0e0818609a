package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/mlb-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/http/requestutil"
	"github.com/preston-bernstein/mlb-scoreboard/internal/render"
)

// NewRouter registers the scoreboard routes and wraps them with CORS for embedding hosts.
// An empty origin list allows any origin.
func NewRouter(handler *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/scoreboard", handler.Scoreboard).Methods(nethttp.MethodGet)
	r.HandleFunc("/scoreboard/refresh", handler.RefreshScoreboard).Methods(nethttp.MethodPost)
	r.HandleFunc("/scoreboard/events", handler.Events).Methods(nethttp.MethodGet)
	r.HandleFunc("/panel", handler.Panel).Methods(nethttp.MethodGet)
	r.HandleFunc(render.ReloadPath, handler.ReloadPanel).Methods(nethttp.MethodPost)
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
	})
	return c.Handler(r)
}
