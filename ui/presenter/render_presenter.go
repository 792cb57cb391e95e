package presenter

import (
	"image"

	"github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/model"
)

// Capture button captions.
const (
	LabelCapture    = "撮影してテキスト認識"
	LabelProcessing = "処理中..."
)

// StateSource exposes the presentation state.
type StateSource interface {
	State() model.State
	Version() uint64
}

// RenderView receives the rendered state.
type RenderView interface {
	SetCameraControl(active, starting bool)
	SetCaptureControl(enabled bool, label string)
	ShowCaptured(img snapshot.CapturedImage)
	ShowText(text, class string, size model.TextSize)
	UpdatePreview(img image.Image)
}

// RenderPresenter pushes state to the view. It renders only when the model
// version moves and refreshes the live preview when a new frame arrives.
type RenderPresenter struct {
	src    StateSource
	frames camera.FrameSource
	view   RenderView

	rendered    bool
	lastVersion uint64
	lastImageID string
	lastSeq     uint64
}

func NewRenderPresenter(src StateSource, frames camera.FrameSource, view RenderView) *RenderPresenter {
	return &RenderPresenter{src: src, frames: frames, view: view}
}

// Tick is called from the UI loop.
func (p *RenderPresenter) Tick() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	if p.frames != nil && p.frames.Running() {
		if snap := p.frames.LatestFrame(); snap.Image != nil && snap.Sequence != p.lastSeq {
			p.lastSeq = snap.Sequence
			p.view.UpdatePreview(snap.Image)
		}
	}
	if p.rendered && p.src.Version() == p.lastVersion {
		return
	}
	st := p.src.State()
	p.view.SetCameraControl(st.CameraActive, st.CameraStarting)
	label := LabelCapture
	if st.Processing {
		label = LabelProcessing
	}
	p.view.SetCaptureControl(st.CameraActive && !st.Processing, label)
	if st.Captured.ID != p.lastImageID {
		p.lastImageID = st.Captured.ID
		p.view.ShowCaptured(st.Captured)
	}
	p.view.ShowText(st.RecognizedText, model.DisplayClassFor(st.TextSize), st.TextSize)
	p.lastVersion = st.Version
	p.rendered = true
}
