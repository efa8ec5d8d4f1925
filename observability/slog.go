package observability

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// SlogObserver emits events to a slog.Logger. The event type becomes the log
// message and Data keys are flattened into top-level attributes in sorted
// order, after source.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver that emits to the given logger. A nil
// logger resolves slog.Default at emit time, so a later slog.SetDefault is
// honoured.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for _, k := range slices.Sorted(maps.Keys(event.Data)) {
		attrs = append(attrs, slog.Any(k, event.Data[k]))
	}

	logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
