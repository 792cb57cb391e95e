package presenter

import (
	"context"
	"sync/atomic"
)

// Shutdown releases the camera when the application exits. It cancels the
// app context, waits for a pending camera start, stops the session and
// marks the camera inactive. Only the first Run does anything.
//
// Recognition already running is left alone; it finishes against the state
// model, which outlives the window.
type Shutdown struct {
	cancel  context.CancelFunc
	camera  *CameraPresenter
	session LifecycleContract
	model   CameraModel
	done    atomic.Bool
}

func NewShutdown(cancel context.CancelFunc, camera *CameraPresenter, session LifecycleContract, model CameraModel) *Shutdown {
	return &Shutdown{cancel: cancel, camera: camera, session: session, model: model}
}

// Run reports whether this call performed the shutdown.
func (s *Shutdown) Run() bool {
	if s == nil || !s.done.CompareAndSwap(false, true) {
		return false
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.camera.Wait()
	if s.session != nil {
		s.session.Stop()
	}
	if s.model != nil {
		s.model.CameraStopped()
	}
	return true
}

// Done reports whether Run has been called.
func (s *Shutdown) Done() bool { return s != nil && s.done.Load() }
