package gocvcam

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"

	"gocv.io/x/gocv"
	"golang.org/x/image/draw"

	"github.com/soocke/camocr/domain/camera"
)

// Opener implements camera.Opener for webcams and video URLs through OpenCV.
// Device is either a numeric index ("0") or a URL/path understood by OpenCV.
type Opener struct{}

func (Opener) Open(ctx context.Context, c camera.Constraints) (camera.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var device interface{} = c.Device
	if idx, err := strconv.Atoi(c.Device); err == nil {
		device = idx
	}
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open video capture: %w", err)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, fmt.Errorf("device %q not opened", c.Device)
	}
	// Advisory only; OpenCV keeps the nearest supported mode.
	if c.IdealWidth > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(c.IdealWidth))
	}
	if c.IdealHeight > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(c.IdealHeight))
	}
	return &gocvStream{vc: vc, mat: gocv.NewMat()}, nil
}

type gocvStream struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

func (s *gocvStream) ReadFrame() (*image.RGBA, error) {
	if ok := s.vc.Read(&s.mat); !ok {
		return nil, errors.New("cannot read frame")
	}
	if s.mat.Empty() {
		return nil, errors.New("frame is empty")
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("mat to image: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, nil
}

func (s *gocvStream) Close() error {
	merr := s.mat.Close()
	verr := s.vc.Close()
	return errors.Join(verr, merr)
}
