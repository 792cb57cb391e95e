package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/soocke/camocr/domain/camera"
)

// Snapshotter copies the current frame of a running source into a PNG.
type Snapshotter struct {
	logger *slog.Logger
	enc    png.Encoder
}

func NewSnapshotter(logger *slog.Logger) *Snapshotter {
	return &Snapshotter{logger: logger, enc: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// Capture returns the full current frame at its native size. It returns
// false without side effects when src is not running or holds no frame.
func (s *Snapshotter) Capture(src camera.FrameSource) (CapturedImage, bool) {
	if src == nil || !src.Running() {
		return CapturedImage{}, false
	}
	frame := src.LatestFrame()
	w, h := frame.Size()
	if w <= 0 || h <= 0 {
		return CapturedImage{}, false
	}
	// The playback loop may publish a new frame at any time; the copy pins
	// this one so the encoded image is a single whole frame.
	raster := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(raster, raster.Bounds(), frame.Image, frame.Image.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := s.enc.Encode(&buf, raster); err != nil {
		if s.logger != nil {
			s.logger.Debug("snapshot encode", "error", err)
		}
		return CapturedImage{}, false
	}
	img := CapturedImage{
		ID:         uuid.NewString(),
		PNG:        buf.Bytes(),
		Width:      w,
		Height:     h,
		CapturedAt: frame.CapturedAt,
	}
	if s.logger != nil {
		s.logger.Debug("snapshot captured", "id", img.ID, "width", w, "height", h, "bytes", len(img.PNG), "seq", frame.Sequence)
	}
	return img, true
}
