package presenter

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// CameraModel is the slice of state the camera presenter mutates.
type CameraModel interface {
	CameraActive() bool
	BeginCameraStart() bool
	CameraStarted()
	CameraStopped()
	CameraFailed()
}

// LifecycleContract narrows what presenter needs from the camera layer.
type LifecycleContract interface {
	Start(ctx context.Context) error
	Stop()
}

// CameraView reports camera problems and clears the preview.
type CameraView interface {
	Alert(title, message string)
	PreviewReset()
}

// CameraPresenter owns presentation logic for starting and stopping the camera.
// Acquisition runs off the UI thread; a failure is reported on the next Tick.
type CameraPresenter struct {
	model    CameraModel
	session  LifecycleContract
	view     CameraView
	logger   *slog.Logger
	errTitle string
	errText  string

	// async runs acquisition off the UI thread; tests swap in a synchronous runner.
	async  func(func())
	wg     sync.WaitGroup
	failed atomic.Bool
}

func NewCameraPresenter(model CameraModel, session LifecycleContract, view CameraView, errText string, logger *slog.Logger) *CameraPresenter {
	return &CameraPresenter{
		model:    model,
		session:  session,
		view:     view,
		logger:   logger,
		errTitle: "カメラエラー",
		errText:  errText,
		async:    func(f func()) { go f() },
	}
}

// Start requests the camera and returns immediately. While the request is
// pending further starts are ignored. A failure leaves the camera inactive
// and queues an alert. A start that completes after ctx is cancelled
// releases the camera again.
func (p *CameraPresenter) Start(ctx context.Context) {
	if p == nil || p.model == nil || p.session == nil || p.view == nil {
		return
	}
	if !p.model.BeginCameraStart() {
		return
	}
	p.wg.Add(1)
	p.async(func() {
		defer p.wg.Done()
		err := p.session.Start(ctx)
		if err == nil && ctx.Err() != nil {
			p.session.Stop()
			err = ctx.Err()
		}
		if err != nil {
			if p.logger != nil {
				p.logger.Error("camera start failed", "error", err)
			}
			p.model.CameraFailed()
			if ctx.Err() == nil {
				p.failed.Store(true)
			}
			return
		}
		p.model.CameraStarted()
	})
}

// Stop releases the camera and clears the preview. Safe when inactive.
func (p *CameraPresenter) Stop() {
	if p == nil || p.model == nil || p.session == nil || p.view == nil {
		return
	}
	p.session.Stop()
	if !p.model.CameraActive() {
		return
	}
	p.model.CameraStopped()
	p.view.PreviewReset()
}

// Toggle flips the camera delegating to Start/Stop.
func (p *CameraPresenter) Toggle(ctx context.Context) {
	if p == nil || p.model == nil {
		return
	}
	if p.model.CameraActive() {
		p.Stop()
		return
	}
	p.Start(ctx)
}

// Tick shows a queued start failure. Called on the UI thread.
func (p *CameraPresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	if p.failed.Swap(false) {
		p.view.Alert(p.errTitle, p.errText)
	}
}

// Wait blocks until a pending start has finished.
func (p *CameraPresenter) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}
