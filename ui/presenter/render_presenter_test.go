package presenter

import (
	"image"
	"testing"

	cam "github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/model"
)

type mockRenderView struct {
	renders      int
	active       bool
	starting     bool
	enabled      bool
	label        string
	capturedShow int
	text, class  string
	previews     int
}

func (v *mockRenderView) SetCameraControl(a, s bool) {
	v.active, v.starting = a, s
	v.renders++
}
func (v *mockRenderView) SetCaptureControl(e bool, l string) {
	v.enabled, v.label = e, l
}
func (v *mockRenderView) ShowCaptured(snapshot.CapturedImage) { v.capturedShow++ }
func (v *mockRenderView) ShowText(t, c string, _ model.TextSize) {
	v.text, v.class = t, c
}
func (v *mockRenderView) UpdatePreview(image.Image) { v.previews++ }

type seqFrames struct {
	running bool
	seq     uint64
}

func (f *seqFrames) Running() bool { return f.running }
func (f *seqFrames) LatestFrame() cam.FrameSnapshot {
	return cam.FrameSnapshot{Image: image.NewRGBA(image.Rect(0, 0, 1, 1)), Sequence: f.seq}
}

func TestRenderPresenter_RendersOnVersionChange(t *testing.T) {
	m := model.NewStateModel(model.TextLarge)
	view := &mockRenderView{}
	p := NewRenderPresenter(m, nil, view)

	p.Tick()
	if view.renders != 1 || view.enabled || view.label != LabelCapture || view.class != model.ClassLarge {
		t.Fatalf("initial render wrong: %+v", view)
	}
	p.Tick()
	if view.renders != 1 {
		t.Fatalf("rendered without change")
	}

	m.BeginCameraStart()
	p.Tick()
	if !view.starting || view.active || view.enabled {
		t.Fatalf("pending start not reflected: %+v", view)
	}

	m.CameraStarted()
	p.Tick()
	if !view.active || view.starting || !view.enabled {
		t.Fatalf("camera active not reflected: %+v", view)
	}

	m.BeginRecognition(snapshot.CapturedImage{ID: "x", PNG: []byte{1}})
	p.Tick()
	if view.enabled || view.label != LabelProcessing || view.capturedShow != 1 {
		t.Fatalf("processing not reflected: %+v", view)
	}
	m.FinishRecognition("abc")
	m.SetTextSize(model.TextExtraLarge)
	p.Tick()
	if !view.enabled || view.text != "abc" || view.class != model.ClassExtraLarge || view.capturedShow != 1 {
		t.Fatalf("finish not reflected: %+v", view)
	}
}

func TestRenderPresenter_PreviewOnNewSequence(t *testing.T) {
	m := model.NewStateModel(model.TextLarge)
	view := &mockRenderView{}
	frames := &seqFrames{running: true, seq: 1}
	p := NewRenderPresenter(m, frames, view)
	p.Tick()
	p.Tick()
	if view.previews != 1 {
		t.Fatalf("expected one preview, got %d", view.previews)
	}
	frames.seq = 2
	p.Tick()
	if view.previews != 2 {
		t.Fatalf("new frame not previewed")
	}
	frames.running = false
	frames.seq = 3
	p.Tick()
	if view.previews != 2 {
		t.Fatalf("previewed while stopped")
	}
}

func TestTextSizePresenter_Select(t *testing.T) {
	m := model.NewStateModel(model.TextLarge)
	NewTextSizePresenter(m).Select(model.TextNormal)
	if m.State().TextSize != model.TextNormal {
		t.Fatalf("size not selected")
	}
}

func TestLoop_TickSchedules(t *testing.T) {
	scheduled := 0
	l := NewLoop(nil, nil, func() { scheduled++ })
	l.Tick()
	var nilLoop *Loop
	nilLoop.Tick()
	if scheduled != 1 {
		t.Fatalf("expected schedule once, got %d", scheduled)
	}
}
