package recognition

import (
	"context"
	"errors"
)

// ErrNoEngine is returned when an adapter has no engine configured.
var ErrNoEngine = errors.New("recognition: no engine configured")

// Input is a single encoded image submitted to an engine.
type Input struct {
	// ID is echoed into log lines for correlation.
	ID string
	// Image is the encoded payload (PNG).
	Image []byte
	// Language selects the trained model (e.g. "jpn").
	Language string
	// PageSegMode is passed through to engines that support it; zero keeps
	// the engine default.
	PageSegMode int
}

// Engine is the OCR provider contract: one image in, one text out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (string, error)
}
