package debug

// Memory periodic logger enabled in debug mode. Logs resident set size next
// to Go heap stats and caller-supplied attributes (camera stats) so native
// growth from the camera or OCR libraries can be told apart from heap growth.

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// AttrsFunc supplies extra attributes for each log line.
type AttrsFunc func() []slog.Attr

// StartMemLogger logs memory stats plus extra attributes until ctx is done.
// Resident set size is reported where the platform exposes it.
func StartMemLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, extra AttrsFunc) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := residentSetSize()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			attrs := []slog.Attr{
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			if extra != nil {
				attrs = append(attrs, extra()...)
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "memstats", attrs...)
		}
	}()
}
