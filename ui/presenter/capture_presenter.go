package presenter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/recognition"
	"github.com/soocke/camocr/domain/snapshot"
)

// RecognitionModel is the slice of state the capture presenter mutates.
type RecognitionModel interface {
	CameraActive() bool
	Processing() bool
	BeginRecognition(img snapshot.CapturedImage) bool
	FinishRecognition(text string)
}

// Snapshotter captures the current frame of a source.
type Snapshotter interface {
	Capture(src camera.FrameSource) (snapshot.CapturedImage, bool)
}

// Recognizer turns a captured image into display text.
type Recognizer interface {
	Recognize(ctx context.Context, img snapshot.CapturedImage) recognition.Result
}

// CapturePresenter snapshots the live frame and runs recognition on it.
// Only one recognition runs at a time; further requests are rejected until
// it finishes.
type CapturePresenter struct {
	model  RecognitionModel
	frames camera.FrameSource
	snap   Snapshotter
	rec    Recognizer
	logger *slog.Logger

	// async runs recognition off the UI thread; tests swap in a synchronous runner.
	async func(func())
	wg    sync.WaitGroup
}

func NewCapturePresenter(model RecognitionModel, frames camera.FrameSource, snap Snapshotter, rec Recognizer, logger *slog.Logger) *CapturePresenter {
	return &CapturePresenter{model: model, frames: frames, snap: snap, rec: rec, logger: logger, async: func(f func()) { go f() }}
}

// CaptureAndRecognize reports whether a recognition was started.
func (p *CapturePresenter) CaptureAndRecognize(ctx context.Context) bool {
	if p == nil || p.model == nil || p.snap == nil || p.rec == nil {
		return false
	}
	if !p.model.CameraActive() || p.model.Processing() {
		return false
	}
	img, ok := p.snap.Capture(p.frames)
	if !ok {
		return false
	}
	if !p.model.BeginRecognition(img) {
		return false
	}
	if p.logger != nil {
		p.logger.Debug("recognition started", "image_id", img.ID, "w", img.Width, "h", img.Height)
	}
	p.wg.Add(1)
	p.async(func() {
		defer p.wg.Done()
		text := ""
		// The processing flag must drop on every path.
		defer func() { p.model.FinishRecognition(text) }()
		text = p.rec.Recognize(ctx, img).Text
	})
	return true
}

// Wait blocks until in-flight recognitions have finished.
func (p *CapturePresenter) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}
