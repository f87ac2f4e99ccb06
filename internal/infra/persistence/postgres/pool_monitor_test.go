package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedStats struct{ stats sql.DBStats }

func (f fixedStats) Stats() sql.DBStats { return f.stats }

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	m := newPoolMonitor(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), nil)

	m.sample(context.Background(), sql.DBStats{OpenConnections: 2})
	assert.Empty(t, buf.String())

	m.sample(context.Background(), sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	buf.Reset()

	m.sample(context.Background(), sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), poolWaitSlowMessage)
	assert.Contains(t, buf.String(), "avgWait=100ms")
}

func TestPoolMonitor_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		newPoolMonitor(slog.New(slog.DiscardHandler), fixedStats{}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
