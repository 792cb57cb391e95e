package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/camocr/app/services"
	"github.com/soocke/camocr/config"
	"github.com/soocke/camocr/ui/model"
	"github.com/soocke/camocr/ui/presenter"
	"github.com/soocke/camocr/ui/theme"
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	tick    time.Duration
	afterID string
	ctx     context.Context
}

// NewApp configures the Tk root window. Widgets are created in Start.
func NewApp(title string, cfg *config.Config, logger *slog.Logger, svc services.Services) *app {
	ctx, cancel := context.WithCancel(context.Background())
	a := &app{
		c:      BuildContainer(cfg, logger, svc, cancel),
		logger: logger,
		tick:   time.Duration(cfg.RefreshMillis) * time.Millisecond,
		ctx:    ctx,
	}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Start builds the UI and runs the Tk main loop until the window closes.
// The camera is released on every exit path.
func (a *app) Start() {
	defer a.teardown()
	theme.SetDark(a.c.Config.DarkMode)
	a.c.RootView.Build(
		func() { a.c.CameraPresenter.Toggle(a.ctx) },
		func() { a.c.CapturePresenter.CaptureAndRecognize(a.ctx) },
		func(s model.TextSize) { a.c.TextSizePresenter.Select(s) },
		a.exitHandler,
	)
	a.c.Loop = presenter.NewLoop(a.c.CameraPresenter, a.c.RenderPresenter, a.scheduleUpdate)
	a.c.Loop.Tick()
	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.teardown()
	Destroy(App)
}

// teardown releases the camera. It runs from the exit handler and again
// after the Tk main loop returns; only the first call does anything.
func (a *app) teardown() {
	if !a.c.Shutdown.Run() {
		return
	}
	if a.logger != nil {
		a.logger.Info("camocr exiting", "camera_stats", a.c.Session.Stats())
	}
}

func (a *app) scheduleUpdate() {
	if a.c.Shutdown.Done() {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.c.Loop.Tick() })
}
