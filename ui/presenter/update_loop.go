package presenter

// Loop drives periodic updates from the Tk event loop.
//
// It delivers queued camera alerts, calls Tick on the render presenter and
// invokes a scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Camera   *CameraPresenter
	Render   *RenderPresenter
	Schedule func()
}

func NewLoop(camera *CameraPresenter, render *RenderPresenter, schedule func()) *Loop {
	return &Loop{Camera: camera, Render: render, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Camera != nil {
		l.Camera.Tick()
	}
	if l.Render != nil {
		l.Render.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
