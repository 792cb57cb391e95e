package camera

import (
	"context"
	"errors"
	"image"
	"time"
)

// ErrUnavailable reports a device that opened but never delivered a frame.
var ErrUnavailable = errors.New("camera: no frame available")

// Facing is the preferred camera orientation. Desktop devices rarely expose
// it, so openers treat it as a hint next to the device selector.
type Facing string

const (
	FacingEnvironment Facing = "environment"
	FacingUser        Facing = "user"
)

// ParseFacing maps a configured name to a Facing; anything but "user"
// selects the environment camera.
func ParseFacing(s string) Facing {
	if Facing(s) == FacingUser {
		return FacingUser
	}
	return FacingEnvironment
}

// Constraints describes the stream requested from an Opener. IdealWidth and
// IdealHeight are advisory targets, not requirements.
type Constraints struct {
	Device      string
	Facing      Facing
	IdealWidth  int
	IdealHeight int
}

// DefaultConstraints is the rear camera at 1280x720.
func DefaultConstraints() Constraints {
	return Constraints{Device: "0", Facing: FacingEnvironment, IdealWidth: 1280, IdealHeight: 720}
}

// Stream is a live source of frames. It is owned by exactly one session and
// must be closed to release the device.
type Stream interface {
	ReadFrame() (*image.RGBA, error)
	Close() error
}

// Opener acquires a Stream for the given constraints.
type Opener interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, c Constraints) (Stream, error)

func (f OpenerFunc) Open(ctx context.Context, c Constraints) (Stream, error) { return f(ctx, c) }

// FrameSource provides read-only access to the live frames.
// LatestFrame returns the freshest snapshot while Running reports activity.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// FrameSnapshot carries the latest frame read from the stream and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Size returns the native frame dimensions, zero when no frame is held.
func (s FrameSnapshot) Size() (w, h int) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Stats summarises playback loop behaviour for instrumentation.
type Stats struct {
	Frames         uint64
	ReadErrors     uint64
	AvgRead        time.Duration
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
	Opens          uint64
}
