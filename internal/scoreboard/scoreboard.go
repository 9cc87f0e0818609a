package scoreboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

const failurePrefix = "Failed to load MLB scores: "

// ErrInvalidDate is returned when a date override is not MM/DD/YYYY.
var ErrInvalidDate = errors.New("invalid date (expected MM/DD/YYYY)")

// Config names the surface and anchors "today" for a scoreboard.
type Config struct {
	Surface  string
	Location *time.Location
	Date     string
}

// Scoreboard owns the game list for one display surface.
// Refreshes are serialized: a trigger that arrives while one is in flight waits its turn.
// Observers run outside the refresh lock, in refresh order.
type Scoreboard struct {
	surface  string
	provider providers.ScheduleProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	loc      *time.Location
	now      func() time.Time

	refreshMu sync.Mutex
	notifyMu  sync.Mutex

	mu        sync.RWMutex
	state     State
	date      string
	shownDate string
	items     []games.DisplaySummary
	errMsg    string
	updatedAt time.Time

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObs   int
}

// New constructs an idle Scoreboard. An invalid Config.Date is dropped in favor of today.
func New(cfg Config, provider providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) *Scoreboard {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	date := cfg.Date
	if date != "" && !timeutil.IsDate(date) {
		logging.Warn(logger, "ignoring invalid date override", slog.String(logging.FieldSurface, cfg.Surface), slog.String(logging.FieldDate, date))
		date = ""
	}
	return &Scoreboard{
		surface:   cfg.Surface,
		provider:  provider,
		logger:    logger,
		metrics:   recorder,
		loc:       loc,
		now:       time.Now,
		state:     StateIdle,
		date:      date,
		items:     []games.DisplaySummary{},
		observers: make(map[int]Observer),
	}
}

// Surface names the display surface this scoreboard feeds.
func (s *Scoreboard) Surface() string {
	return s.surface
}

// SetDate replaces the date override; an empty date means today. It does not refresh.
func (s *Scoreboard) SetDate(date string) error {
	if date != "" && !timeutil.IsDate(date) {
		return ErrInvalidDate
	}
	s.mu.Lock()
	s.date = date
	s.mu.Unlock()
	return nil
}

// Refresh fetches the games for the configured date. On success the list is replaced;
// on failure it is cleared and the error message recorded. Observers are notified either way.
func (s *Scoreboard) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	snap, err := s.load(ctx)
	// notifyMu is taken before refreshMu is released so observers see refreshes in order.
	s.notifyMu.Lock()
	s.refreshMu.Unlock()
	defer s.notifyMu.Unlock()

	s.notify(snap)
	return err
}

func (s *Scoreboard) load(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	s.mu.Lock()
	s.state = StateLoading
	date := s.resolveDateLocked()
	s.shownDate = date
	s.mu.Unlock()

	logger := logging.FromContext(ctx, s.logger)
	records, err := s.provider.FetchGames(ctx, date)
	s.metrics.RecordRefresh(s.surface, time.Since(start), err)

	s.mu.Lock()
	if err != nil {
		s.state = StateFailed
		s.items = []games.DisplaySummary{}
		s.errMsg = failurePrefix + err.Error()
	} else {
		s.state = StateLoaded
		s.items = SummarizeAll(records)
		s.errMsg = ""
	}
	s.updatedAt = s.now()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		logging.Error(logger, "scoreboard refresh failed", err,
			slog.String(logging.FieldSurface, s.surface),
			slog.String(logging.FieldDate, date),
		)
	} else {
		logging.Info(logger, "scoreboard refreshed",
			slog.String(logging.FieldSurface, s.surface),
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(snap.Items)),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}
	return snap, err
}

// Snapshot returns a copy of the current state. Date is the day the items were
// fetched for; an idle scoreboard reports the day its first refresh would use.
func (s *Scoreboard) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Scoreboard) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *Scoreboard) notify(snap Snapshot) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func (s *Scoreboard) resolveDateLocked() string {
	if s.date != "" {
		return s.date
	}
	return timeutil.Today(s.now(), s.loc)
}

func (s *Scoreboard) snapshotLocked() Snapshot {
	date := s.shownDate
	if s.state == StateIdle {
		date = s.resolveDateLocked()
	}
	items := make([]games.DisplaySummary, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Surface:   s.surface,
		State:     s.state,
		Date:      date,
		Items:     items,
		Error:     s.errMsg,
		UpdatedAt: s.updatedAt,
	}
}
