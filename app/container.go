package app

import (
	"context"
	"log/slog"

	"github.com/soocke/camocr/app/services"
	"github.com/soocke/camocr/config"
	"github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/recognition"
	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/model"
	"github.com/soocke/camocr/ui/presenter"
	"github.com/soocke/camocr/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	State      *model.StateModel
	Session    *camera.SessionManager
	Snapshot   *snapshot.Snapshotter
	Recognizer *recognition.Adapter
	RootView   *view.RootView

	// Presenters
	CameraPresenter   *presenter.CameraPresenter
	CapturePresenter  *presenter.CapturePresenter
	TextSizePresenter *presenter.TextSizePresenter
	RenderPresenter   *presenter.RenderPresenter
	Shutdown          *presenter.Shutdown
	Loop              *presenter.Loop
}

// BuildContainer constructs all components. Presenters that need the view
// are wired here too; widgets are built later by the app on the Tk thread.
// cancel is invoked by Shutdown to stop work tied to the app context.
func BuildContainer(cfg *config.Config, logger *slog.Logger, svc services.Services, cancel context.CancelFunc) *AppContainer {
	size, _ := model.ParseTextSize(cfg.TextSize)
	c := &AppContainer{
		Config:     cfg,
		Logger:     logger,
		State:      model.NewStateModel(size),
		Session:    svc.Session,
		Snapshot:   svc.Snapshot,
		Recognizer: svc.Recognizer,
	}
	c.RootView = view.NewRootView(cfg, logger)
	c.CameraPresenter = presenter.NewCameraPresenter(c.State, c.Session, c.RootView, cfg.CameraErrorText, logger)
	c.CapturePresenter = presenter.NewCapturePresenter(c.State, c.Session, c.Snapshot, c.Recognizer, logger)
	c.TextSizePresenter = presenter.NewTextSizePresenter(c.State)
	c.RenderPresenter = presenter.NewRenderPresenter(c.State, c.Session, c.RootView)
	c.Shutdown = presenter.NewShutdown(cancel, c.CameraPresenter, c.Session, c.State)
	return c
}
