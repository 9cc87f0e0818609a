package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
	httpserver "github.com/preston-bernstein/mlb-scoreboard/internal/http"
	"github.com/preston-bernstein/mlb-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/http/middleware"
	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
	"github.com/preston-bernstein/mlb-scoreboard/internal/poller"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
	"github.com/preston-bernstein/mlb-scoreboard/internal/sse"
)

// Surface names.
const (
	SurfaceTree  = "tree"
	SurfacePanel = "panel"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           *config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	tree          *scoreboard.Scoreboard
	panel         *scoreboard.Scoreboard
	events        *sse.Broadcaster
	readiness     *poller.Tracker
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	watcher       configWatcher
	metricsStop   func(context.Context) error

	dateMu   sync.Mutex
	gameDate string
}

// New constructs a server from configuration. A non-empty configPath is watched for game_date changes.
func New(cfg *config.Config, logger *slog.Logger, configPath string) *Server {
	srv := newServerWithMetrics(cfg, logger, nil, nil)
	if configPath != "" {
		srv.watcher = config.NewWatcher(configPath, logger, func(next *config.Config) {
			srv.applyConfig(context.Background(), next)
		})
	}
	return srv
}

func newServerWithProvider(cfg *config.Config, logger *slog.Logger, provider providers.ScheduleProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg *config.Config, logger *slog.Logger, provider providers.ScheduleProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(provider, cfg.Provider)
	}

	tree := newScoreboard(cfg, SurfaceTree, provider, logger, recorder)
	panel := newScoreboard(cfg, SurfacePanel, provider, logger, recorder)

	events := sse.NewBroadcaster(logger)
	readiness := &poller.Tracker{}
	tree.Subscribe(events.Observer())
	tree.Subscribe(readiness.Observe)

	var plr Poller
	if cfg.RefreshInterval > 0 {
		plr = poller.New([]poller.Refresher{tree, openedRefresher{sb: panel}}, logger, recorder, cfg.RefreshInterval)
	}

	handler := handlers.NewHandler(tree, panel, events, logger, readiness.Status)
	httpSrv := buildHTTPServer(cfg, handler, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		tree:          tree,
		panel:         panel,
		events:        events,
		readiness:     readiness,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		gameDate:      cfg.GameDate,
	}
}

func newScoreboard(cfg *config.Config, surface string, provider providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) *scoreboard.Scoreboard {
	return scoreboard.New(scoreboard.Config{
		Surface:  surface,
		Location: cfg.Location(),
		Date:     cfg.GameDate,
	}, provider, logger, recorder)
}

func buildHTTPServer(cfg *config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler, cfg.CORS.AllowedOrigins)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the servers, loads the list surface once, starts the poller and config watcher,
// then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startWatcher()

	// The list surface loads at startup; the document surface loads when first opened.
	_ = s.tree.Refresh(ctx)

	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) startWatcher() {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Start(); err != nil {
		logging.Warn(s.logger, "config watch unavailable, date changes need a restart", "error", err)
		s.watcher = nil
	}
}

// applyConfig reacts to a reloaded config. Only a game_date change matters at runtime:
// both scoreboards take the new date and refresh, except a document surface never opened.
func (s *Server) applyConfig(ctx context.Context, cfg *config.Config) {
	s.dateMu.Lock()
	changed := cfg.GameDate != s.gameDate
	s.gameDate = cfg.GameDate
	s.dateMu.Unlock()
	if !changed {
		return
	}

	logging.Info(s.logger, "game date changed", slog.String(logging.FieldDate, cfg.GameDate))
	for _, sb := range []*scoreboard.Scoreboard{s.tree, s.panel} {
		if err := sb.SetDate(cfg.GameDate); err != nil {
			logging.Warn(s.logger, "rejected game date", slog.String(logging.FieldSurface, sb.Surface()), "error", err)
			return
		}
	}
	_ = s.tree.Refresh(ctx)
	_ = refreshIfOpened(ctx, s.panel)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			logging.Warn(s.logger, "config watcher stop failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
