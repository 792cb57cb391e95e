package screencam

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/vova616/screenshot"

	"github.com/soocke/camocr/domain/camera"
)

// Opener implements camera.Opener over the primary screen. It ignores the
// ideal size and facing hints; frames have the native screen resolution.
type Opener struct{}

func (Opener) Open(ctx context.Context, _ camera.Constraints) (camera.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rect, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("screen rect: %w", err)
	}
	if rect.Empty() {
		return nil, errors.New("screen has no area")
	}
	return &screenStream{rect: rect}, nil
}

type screenStream struct {
	rect   image.Rectangle
	closed bool
}

func (s *screenStream) ReadFrame() (*image.RGBA, error) {
	if s.closed {
		return nil, errors.New("screen stream closed")
	}
	return screenshot.CaptureRect(s.rect)
}

func (s *screenStream) Close() error {
	s.closed = true
	return nil
}
