package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
	poolWaitMessage     = "PostgreSQL pool wait"
	poolWaitSlowMessage = "PostgreSQL pool wait is slow"
)

type statsSource interface {
	Stats() sql.DBStats
}

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger   *slog.Logger
	source   statsSource
	interval time.Duration
	prev     sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, source statsSource) *poolMonitor {
	return &poolMonitor{
		logger:   logger,
		source:   source,
		interval: poolMonitorInterval,
	}
}

// Run samples the pool until ctx is cancelled.
func (m *poolMonitor) Run(ctx context.Context) {
	if m.logger == nil || m.source == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.prev = m.source.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx, m.source.Stats())
		}
	}
}

// sample logs when requests had to wait for a connection since the previous sample.
func (m *poolMonitor) sample(ctx context.Context, cur sql.DBStats) {
	waited := cur.WaitCount - m.prev.WaitCount
	waitedFor := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waited <= 0 {
		return
	}

	level, msg := slog.LevelDebug, poolWaitMessage
	if waitedFor >= poolWaitWarnAfter {
		level, msg = slog.LevelWarn, poolWaitSlowMessage
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waited),
		slog.Duration("waited", waitedFor),
		slog.Duration("avgWait", waitedFor/time.Duration(waited)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
