package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/soocke/camocr/domain/camera"
)

type stubSource struct {
	running bool
	frame   camera.FrameSnapshot
}

func (s stubSource) LatestFrame() camera.FrameSnapshot { return s.frame }
func (s stubSource) Running() bool                     { return s.running }

func frameOf(r image.Rectangle) camera.FrameSnapshot {
	img := image.NewRGBA(r)
	img.SetRGBA(r.Min.X, r.Min.Y, color.RGBA{R: 200, G: 10, B: 30, A: 255})
	return camera.FrameSnapshot{Image: img, CapturedAt: time.Unix(10, 0), Sequence: 7}
}

func TestCapture_NativeDimensions(t *testing.T) {
	s := NewSnapshotter(nil)
	img, ok := s.Capture(stubSource{running: true, frame: frameOf(image.Rect(0, 0, 1280, 720))})
	if !ok {
		t.Fatalf("capture failed")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img.PNG))
	if err != nil {
		t.Fatalf("payload is not png: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 720 || img.Width != 1280 || img.Height != 720 {
		t.Fatalf("expected 1280x720, got raster %dx%d meta %dx%d", cfg.Width, cfg.Height, img.Width, img.Height)
	}
	if img.ID == "" || !img.CapturedAt.Equal(time.Unix(10, 0)) {
		t.Fatalf("metadata missing: id=%q at=%v", img.ID, img.CapturedAt)
	}
}

func TestCapture_OffsetFrameRebasedToOrigin(t *testing.T) {
	s := NewSnapshotter(nil)
	img, ok := s.Capture(stubSource{running: true, frame: frameOf(image.Rect(5, 7, 45, 37))})
	if !ok {
		t.Fatalf("capture failed")
	}
	dec, err := img.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("unexpected bounds %v", dec.Bounds())
	}
	r, _, _, _ := dec.At(0, 0).RGBA()
	if r>>8 != 200 {
		t.Fatalf("top-left pixel not copied, r=%d", r>>8)
	}
}

func TestCapture_NoSessionIsNoop(t *testing.T) {
	s := NewSnapshotter(nil)
	if _, ok := s.Capture(stubSource{running: false, frame: frameOf(image.Rect(0, 0, 4, 4))}); ok {
		t.Fatalf("capture on inactive source should fail")
	}
	if _, ok := s.Capture(stubSource{running: true}); ok {
		t.Fatalf("capture without frame should fail")
	}
	if _, ok := s.Capture(nil); ok {
		t.Fatalf("capture with nil source should fail")
	}
}

func TestCapture_CopyIsIndependentOfFrame(t *testing.T) {
	s := NewSnapshotter(nil)
	frame := frameOf(image.Rect(0, 0, 2, 2))
	img, _ := s.Capture(stubSource{running: true, frame: frame})
	frame.Image.SetRGBA(0, 0, color.RGBA{A: 255})
	dec, err := img.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := dec.At(0, 0).RGBA(); r>>8 != 200 {
		t.Fatalf("captured image changed with source frame")
	}
}

func TestDataURI(t *testing.T) {
	if (CapturedImage{}).DataURI() != "" {
		t.Fatalf("empty image should have empty data uri")
	}
	img, _ := NewSnapshotter(nil).Capture(stubSource{running: true, frame: frameOf(image.Rect(0, 0, 3, 3))})
	if uri := img.DataURI(); !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected data uri prefix: %.40s", uri)
	}
}
