package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// QueryStats holds statement execution statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowQueries is the count of statements exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of statement errors.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *QueryStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalExecs.Store(0)
	s.TotalDuration.Store(0)
	s.SlowQueries.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of execution statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgDuration returns the average statement duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgDuration(),
		s.SlowQueries, s.Errors,
	)
}

// SlowQueryHook is a function called when a slow statement is detected.
type SlowQueryHook func(ctx context.Context, query string, duration time.Duration)

// StatsDriver wraps a Driver with statement statistics collection. All
// statement helpers on the embedded Driver are instrumented, transactions
// included.
type StatsDriver struct {
	*Driver
	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook
	mu            sync.RWMutex
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the threshold for slow statement detection.
// Statements taking longer than this duration are counted as slow.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback invoked whenever a statement exceeds
// the slow threshold.
func WithSlowQueryHook(hook SlowQueryHook) StatsOption {
	return func(s *StatsDriver) {
		s.slowHook = hook
	}
}

// WithSlowQueryLog logs slow statements with slog. It is a convenience
// wrapper around WithSlowQueryHook.
func WithSlowQueryLog() StatsOption {
	return WithSlowQueryHook(func(_ context.Context, query string, duration time.Duration) {
		slog.Warn("slow statement detected", "duration", duration, "query", query)
	})
}

// NewStatsDriver wraps a Driver with statistics collection.
//
//	drv := sqlite.OpenDB(db)
//	sdrv := sqlite.NewStatsDriver(drv, sqlite.WithSlowQueryLog())
//	...
//	slog.Info("db stats", "stats", sdrv.Stats())
func NewStatsDriver(drv *Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Driver = &Driver{Conn: Conn{ExecQuerier: &statsExecQuerier{next: drv.ExecQuerier, s: s}}}
	return s
}

// Stats returns a snapshot of the collected statistics.
func (s *StatsDriver) Stats() StatsSnapshot {
	return s.stats.Stats()
}

// Reset resets the collected statistics.
func (s *StatsDriver) Reset() {
	s.stats.Reset()
}

// DB returns the underlying *sql.DB instance.
func (s *StatsDriver) DB() *sql.DB {
	return s.Driver.ExecQuerier.(*statsExecQuerier).next.(*sql.DB)
}

// Close closes the underlying connection pool.
func (s *StatsDriver) Close() error {
	return s.DB().Close()
}

// Tx starts an instrumented transaction.
func (s *StatsDriver) Tx(ctx context.Context) (*Tx, error) {
	tx, err := s.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin: %w", err)
	}
	return &Tx{Conn: Conn{ExecQuerier: &statsExecQuerier{next: tx, s: s}}, tx: tx}, nil
}

func (s *StatsDriver) observe(ctx context.Context, exec bool, query string, d time.Duration, err error) {
	if exec {
		s.stats.TotalExecs.Add(1)
	} else {
		s.stats.TotalQueries.Add(1)
	}
	s.stats.TotalDuration.Add(int64(d))
	if err != nil {
		s.stats.Errors.Add(1)
	}
	s.mu.RLock()
	threshold, hook := s.slowThreshold, s.slowHook
	s.mu.RUnlock()
	if d >= threshold {
		s.stats.SlowQueries.Add(1)
		if hook != nil {
			hook(ctx, query, d)
		}
	}
}

// statsExecQuerier intercepts every statement passing through the driver.
type statsExecQuerier struct {
	next ExecQuerier
	s    *StatsDriver
}

func (q *statsExecQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := q.next.ExecContext(ctx, query, args...)
	q.s.observe(ctx, true, query, time.Since(start), err)
	return res, err
}

func (q *statsExecQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := q.next.QueryContext(ctx, query, args...)
	q.s.observe(ctx, false, query, time.Since(start), err)
	return rows, err
}
