package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger sends gorm's output to the request-scoped slog logger,
// so statements carry the request_id of the call that issued them.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		logger:        base,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in Info mode every statement.
// Missing rows are normal lookups and duplicate keys are answered as conflicts, so
// neither is reported as an error.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := l.loggerFor(ctx)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && isUniqueConstraintViolation(err):
		if l.level >= gormlogger.Warn {
			logger.LogAttrs(ctx, slog.LevelWarn, "SQL unique violation", l.statementAttrs(sqlAndRowsFn, elapsed, err)...)
		}
	case err != nil:
		if l.level >= gormlogger.Error {
			logger.LogAttrs(ctx, slog.LevelError, "SQL failed", l.statementAttrs(sqlAndRowsFn, elapsed, err)...)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed, nil), slog.Duration("slowThreshold", l.slowThreshold))
		logger.LogAttrs(ctx, slog.LevelWarn, "Slow SQL", attrs...)
	case l.level >= gormlogger.Info:
		logger.LogAttrs(ctx, slog.LevelDebug, "SQL", l.statementAttrs(sqlAndRowsFn, elapsed, nil)...)
	}
}

func (l *gormSlogLogger) statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration, err error) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	return attrs
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
