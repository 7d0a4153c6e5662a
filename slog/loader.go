package slog

import (
	"context"
	"log/slog"
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// Ensure LoggingLoader implements travel.DatasetLoader.
var _ travel.DatasetLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DatasetLoader with operational logging.
type LoggingLoader struct {
	next   travel.DatasetLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next travel.DatasetLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context) (ds *travel.Dataset, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if ds != nil {
			attrs = append(attrs,
				"countries", len(ds.Countries),
				"beaches", len(ds.Beaches),
				"temples", len(ds.Temples),
				"fingerprint", ds.Fingerprint(),
			)
		}
		l.logger.Info("dataset load", attrs...)
	}(time.Now())
	return l.next.Load(ctx)
}
