// Package keepalive pings the service's own URL on an interval for a bounded
// period, keeping free-tier hosts from idling the process.
package keepalive

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pingTimeout = 30 * time.Second

// Params defines the dependencies of the Scheduler.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Scheduler runs at most one ping job at a time.
type Scheduler struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *slog.Logger

	mu        sync.Mutex
	job       uint64
	cancel    context.CancelFunc
	remaining time.Duration
}

// New creates the Scheduler and stops any running job on shutdown.
func New(params Params) *Scheduler {
	s := newScheduler(params.Config.KeepAlive.URL, params.Config.KeepAlive.Interval, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.Stop()

			return nil
		},
	})

	return s
}

func newScheduler(url string, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: pingTimeout},
		logger:   logger,
	}
}

// Start replaces any running job with one that pings every interval until
// duration has elapsed. The job is detached from ctx cancellation but keeps its values.
func (s *Scheduler) Start(ctx context.Context, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), duration)
	s.job++
	s.cancel = cancel
	s.remaining = duration

	go s.run(jobCtx, s.job)
}

// Stop cancels the running job, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

// Remaining reports how much of the current job's budget is left.
func (s *Scheduler) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remaining
}

// Running reports whether a job is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancel != nil
}

func (s *Scheduler) stopLocked() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.cancel = nil
	s.remaining = 0
}

func (s *Scheduler) run(ctx context.Context, job uint64) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.finish(job)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Info("Stopped keep-alive job after its duration elapsed")
			}

			return
		case <-ticker.C:
			if err := s.ping(ctx); err != nil {
				logger.Warn("Keep-alive ping failed", slog.Any("error", err))

				continue
			}

			logger.Info("Pinged the server", slog.Duration("remaining", s.consume(job)))
		}
	}
}

// consume charges one interval against the job's budget, unless the job was replaced.
func (s *Scheduler) consume(job uint64) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != job || s.cancel == nil {
		return 0
	}

	s.remaining -= s.interval

	return s.remaining
}

// finish clears the scheduler state if it still belongs to the ending job.
func (s *Scheduler) finish(job uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job == job {
		s.stopLocked()
	}
}

func (s *Scheduler) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Errorf("keep-alive target returned status %d", resp.StatusCode)
	}

	return nil
}
