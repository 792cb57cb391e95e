package services

import (
	"log/slog"

	"github.com/soocke/camocr/config"
	"github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/recognition"
	"github.com/soocke/camocr/domain/snapshot"
)

// Services holds the non-UI parts so the headless command can reuse them.
type Services struct {
	Session    *camera.SessionManager
	Snapshot   *snapshot.Snapshotter
	Recognizer *recognition.Adapter
}

// Build constructs the camera session, snapshotter and recognizer from
// configuration around the given device opener and OCR engine. No device
// is opened.
func Build(cfg *config.Config, logger *slog.Logger, opener camera.Opener, engine recognition.Engine) Services {
	constraints := camera.Constraints{
		Device:      cfg.Device,
		Facing:      camera.ParseFacing(cfg.Facing),
		IdealWidth:  cfg.IdealWidth,
		IdealHeight: cfg.IdealHeight,
	}
	return Services{
		Session:  camera.NewSessionManager(opener, constraints, logger.With("component", "camera")),
		Snapshot: snapshot.NewSnapshotter(logger.With("component", "snapshot")),
		Recognizer: recognition.NewAdapter(engine, recognition.Options{
			Language:    cfg.Language,
			PageSegMode: cfg.PageSegMode,
			FailureText: cfg.FailureText,
			FoldWidth:   cfg.FoldWidth,
		}, logger.With("component", "recognition")),
	}
}
