// Package report contains fault reporter implementations. A fault reporter
// receives the unexpected errors that the use case layer hides from callers.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"lectern/internal/domain/service"
)

// slogReporter forwards faults to the structured logger.
type slogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter is the constructor for slogReporter.
func NewSlogReporter(logger *slog.Logger) service.FaultReporter {
	return &slogReporter{logger: logger}
}

// Report logs the full error chain at error level. The caller has already
// replaced the error with an opaque one, so this is the only place the
// original detail surfaces.
func (r *slogReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	r.logger.LogAttrs(ctx, slog.LevelError, "unexpected fault",
		slog.String("error", err.Error()),
		slog.String("detail", fmt.Sprintf("%+v", err)),
	)
}
