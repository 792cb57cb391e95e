package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/soocke/camocr/domain/snapshot"
)

// Result is the outcome of one recognition pass. When Failed is true Text
// holds the adapter's placeholder message.
type Result struct {
	Text   string
	Failed bool
}

// Options configure an Adapter.
type Options struct {
	Language    string
	PageSegMode int
	FailureText string
	FoldWidth   bool
}

// Adapter turns a CapturedImage into cleaned text with a fixed fallback on
// failure. It holds no per-call state and does not serialize callers.
type Adapter struct {
	engine Engine
	opts   Options
	logger *slog.Logger
}

func NewAdapter(engine Engine, opts Options, logger *slog.Logger) *Adapter {
	return &Adapter{engine: engine, opts: opts, logger: logger}
}

// Recognize performs a single pass over img. Errors and panics from the
// engine are replaced by the failure text.
func (a *Adapter) Recognize(ctx context.Context, img snapshot.CapturedImage) Result {
	start := time.Now()
	raw, err := a.run(ctx, img)
	if err != nil {
		if a.logger != nil {
			a.logger.Error("recognition failed", "id", img.ID, "error", err, "elapsed", time.Since(start))
		}
		return Result{Text: a.opts.FailureText, Failed: true}
	}
	if a.opts.FoldWidth {
		raw = FoldWidth(raw)
	}
	text := StripWhitespace(raw)
	if a.logger != nil {
		a.logger.Info("recognition done", "id", img.ID, "engine", a.engine.Name(), "runes", len([]rune(text)), "elapsed", time.Since(start))
	}
	return Result{Text: text}
}

func (a *Adapter) run(ctx context.Context, img snapshot.CapturedImage) (text string, err error) {
	if a.engine == nil {
		return "", ErrNoEngine
	}
	if img.Empty() {
		return "", fmt.Errorf("recognition: empty image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("recognition panic", "error", r, "stack", string(debug.Stack()))
			}
			err = fmt.Errorf("recognition: engine panic: %v", r)
		}
	}()
	return a.engine.Recognize(ctx, Input{
		ID:          img.ID,
		Image:       img.PNG,
		Language:    a.opts.Language,
		PageSegMode: a.opts.PageSegMode,
	})
}
