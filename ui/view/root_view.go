package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/camocr/config"
	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/model"
	"github.com/soocke/camocr/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	labelStartCamera = "カメラを起動"
	labelStopCamera  = "カメラを停止"
	labelStarting    = "カメラ起動中..."
	labelTitle       = "OCRテキスト認識"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Preview CapturePreview
	Text    TextPanel

	// Widgets
	CameraBtn  *TButtonWidget
	CaptureBtn *TButtonWidget

	cameraActive   bool
	cameraStarting bool
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	Alert(title, message string)
	PreviewReset()
	SetCameraControl(active, starting bool)
	SetCaptureControl(enabled bool, label string)
	ShowCaptured(img snapshot.CapturedImage)
	ShowText(text, class string, size model.TextSize)
	UpdatePreview(img image.Image)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onToggleCamera, onCapture func(), onTextSize func(model.TextSize), onExit func()) {
	if rv == nil {
		return
	}
	title := TLabel(Txt(labelTitle), Style(theme.StyleHeading))
	Grid(title, Row(0), Column(0), Columnspan(3), Pady("0.5m"))

	rv.CameraBtn = TButton(Txt(labelStartCamera), Style(theme.StylePrimaryButton), Command(onToggleCamera))
	Grid(rv.CameraBtn, Row(1), Column(0), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.CaptureBtn = TButton(Txt(""), Style(theme.StyleAccentButton), Command(onCapture), State("disabled"))
	Grid(rv.CaptureBtn, Row(1), Column(1), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	exitBtn := TButton(Txt("終了"), Command(onExit))
	Grid(exitBtn, Row(1), Column(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))

	rv.Preview = NewCapturePreview(2, 3, rv.cfg.PreviewMaxW, rv.cfg.PreviewMaxH)
	rv.Text = NewTextPanel(4, fmt.Sprintf("%dp", rv.cfg.PreviewMaxW), onTextSize)
	GridColumnConfigure(App.Window, 0, Weight(1))
	GridColumnConfigure(App.Window, 1, Weight(1))
	GridColumnConfigure(App.Window, 2, Weight(1))
}

// Alert shows a modal error dialog.
func (rv *RootView) Alert(title, message string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Warn("alert", "title", title, "message", message)
	}
	MessageBox(Icon("error"), Title(title), Msg(message))
}

// PreviewReset clears the live camera preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// SetCameraControl switches the camera button between start and stop and
// disables it while a start is pending.
func (rv *RootView) SetCameraControl(active, starting bool) {
	if rv == nil || rv.CameraBtn == nil {
		return
	}
	if rv.cameraActive == active && rv.cameraStarting == starting {
		return
	}
	rv.cameraActive, rv.cameraStarting = active, starting
	switch {
	case starting:
		rv.CameraBtn.Configure(Txt(labelStarting), Style(theme.StylePrimaryButton), State("disabled"))
	case active:
		rv.CameraBtn.Configure(Txt(labelStopCamera), Style(theme.StyleDangerButton), State("normal"))
	default:
		rv.CameraBtn.Configure(Txt(labelStartCamera), Style(theme.StylePrimaryButton), State("normal"))
	}
}

// SetCaptureControl enables or disables the capture button and sets its caption.
func (rv *RootView) SetCaptureControl(enabled bool, label string) {
	if rv == nil || rv.CaptureBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	rv.CaptureBtn.Configure(Txt(label), State(state))
}

// ShowCaptured proxies to the capture preview.
func (rv *RootView) ShowCaptured(img snapshot.CapturedImage) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowCaptured(img)
	}
}

// ShowText proxies to the text panel.
func (rv *RootView) ShowText(text, class string, size model.TextSize) {
	if rv != nil && rv.Text != nil {
		rv.Text.ShowText(text, class, size)
	}
}

// UpdatePreview proxies to the capture preview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}
