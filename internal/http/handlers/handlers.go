package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/poller"
	"github.com/preston-bernstein/mlb-scoreboard/internal/render"
	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
	"github.com/preston-bernstein/mlb-scoreboard/internal/sse"
)

const defaultHeartbeat = 30 * time.Second

// Surface is a scoreboard as seen by the HTTP layer.
type Surface interface {
	Refresh(ctx context.Context) error
	Snapshot() scoreboard.Snapshot
}

// Handler wires HTTP routes to the list and document scoreboards.
type Handler struct {
	tree      Surface
	panel     Surface
	events    *sse.Broadcaster
	logger    *slog.Logger
	statusFn  func() poller.Status
	heartbeat time.Duration
}

// NewHandler constructs a Handler. tree backs the list routes and panel the HTML document.
func NewHandler(tree, panel Surface, events *sse.Broadcaster, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		tree:      tree,
		panel:     panel,
		events:    events,
		logger:    logger,
		statusFn:  statusFn,
		heartbeat: defaultHeartbeat,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic once the list has loaded at least once.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Scoreboard returns the list surface's current snapshot.
func (h *Handler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tree.Snapshot(), h.logger)
}

// RefreshScoreboard triggers a list refresh and returns the resulting snapshot.
// A failed refresh still answers 200; the failure is carried in the snapshot.
func (h *Handler) RefreshScoreboard(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.tree.Refresh(detach(r)); err != nil {
		logging.Debug(logger, "manual refresh finished with error", slog.String(logging.FieldSurface, "tree"))
	}
	writeJSON(w, http.StatusOK, h.tree.Snapshot(), h.logger)
}

// Panel renders the document surface, loading it first if it has never been refreshed.
func (h *Handler) Panel(w http.ResponseWriter, r *http.Request) {
	if h.panel.Snapshot().State == scoreboard.StateIdle {
		_ = h.panel.Refresh(detach(r))
	}
	h.renderPanel(w, r)
}

// ReloadPanel refreshes the document surface and renders the result.
func (h *Handler) ReloadPanel(w http.ResponseWriter, r *http.Request) {
	_ = h.panel.Refresh(detach(r))
	h.renderPanel(w, r)
}

func (h *Handler) renderPanel(w http.ResponseWriter, r *http.Request) {
	body, err := render.Panel(h.panel.Snapshot())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "render panel", err)
		writeError(w, r, http.StatusInternalServerError, "render failed", h.logger)
		return
	}
	writeHTML(w, http.StatusOK, body, h.logger)
}

// Events streams a scoreboard event after every list refresh, starting with the current snapshot.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok || h.events == nil {
		writeError(w, r, http.StatusInternalServerError, "streaming unsupported", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	// Streams outlive the server's write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := h.events.AddClient()
	defer h.events.RemoveClient(client)

	initial, err := sse.SnapshotMessage(h.tree.Snapshot())
	if err != nil {
		logging.Error(logger, "encode initial snapshot", err)
		return
	}
	if _, err := initial.WriteTo(w); err != nil {
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client:
			if !ok {
				logging.Debug(logger, "sse client dropped for falling behind")
				return
			}
			if _, err := msg.WriteTo(w); err != nil {
				logging.Debug(logger, "sse write failed", slog.String("error", err.Error()))
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// detach keeps the request's values but not its cancellation, so a client hanging up
// does not turn an in-flight refresh into a failure.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
