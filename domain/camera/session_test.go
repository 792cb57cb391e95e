package camera

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"
)

type fakeStream struct {
	w, h     int
	failRead bool
	mu       sync.Mutex
	closed   bool
	reads    int
}

func (s *fakeStream) ReadFrame() (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("closed")
	}
	if s.failRead {
		return nil, errors.New("no signal")
	}
	s.reads++
	return image.NewRGBA(image.Rect(0, 0, s.w, s.h)), nil
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// fakeOpener tracks every stream it hands out so tests can count live ones.
type fakeOpener struct {
	mu       sync.Mutex
	streams  []*fakeStream
	openErr  error
	failRead bool
	lastC    Constraints
}

func (o *fakeOpener) Open(_ context.Context, c Constraints) (Stream, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastC = c
	if o.openErr != nil {
		return nil, o.openErr
	}
	s := &fakeStream{w: 64, h: 48, failRead: o.failRead}
	o.streams = append(o.streams, s)
	return s, nil
}

func (o *fakeOpener) live() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, s := range o.streams {
		s.mu.Lock()
		if !s.closed {
			n++
		}
		s.mu.Unlock()
	}
	return n
}

func TestSessionManager_DoubleStartOpensOnce(t *testing.T) {
	op := &fakeOpener{}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(ctx); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if len(op.streams) != 1 || op.live() != 1 {
		t.Fatalf("expected exactly one stream, opened=%d live=%d", len(op.streams), op.live())
	}
	if op.lastC.Facing != FacingEnvironment || op.lastC.IdealWidth != 1280 || op.lastC.IdealHeight != 720 {
		t.Fatalf("unexpected constraints %+v", op.lastC)
	}
	s.Stop()
	if op.live() != 0 || s.Running() {
		t.Fatalf("stop left stream open: live=%d running=%v", op.live(), s.Running())
	}
}

func TestSessionManager_StopIdempotent(t *testing.T) {
	op := &fakeOpener{}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	s.Stop() // inactive: no-op
	if s.Running() || len(op.streams) != 0 {
		t.Fatalf("stop on inactive session changed state")
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Stop()
	s.Stop()
	if s.Running() || op.live() != 0 {
		t.Fatalf("repeated stop failed: running=%v live=%d", s.Running(), op.live())
	}
	if f := s.LatestFrame(); f.Image != nil {
		t.Fatalf("frame retained after stop")
	}
}

func TestSessionManager_OpenFailureLeavesInactive(t *testing.T) {
	op := &fakeOpener{openErr: errors.New("permission denied")}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if s.Running() {
		t.Fatalf("session active after failed open")
	}
}

func TestSessionManager_NoFrameClosesStream(t *testing.T) {
	op := &fakeOpener{failRead: true}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected first-frame error")
	}
	if s.Running() || len(op.streams) != 1 || op.live() != 0 {
		t.Fatalf("zombie stream: running=%v opened=%d live=%d", s.Running(), len(op.streams), op.live())
	}
}

func TestSessionManager_CancelledContext(t *testing.T) {
	op := &fakeOpener{}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(op.streams) != 0 {
		t.Fatalf("opened stream despite cancelled context")
	}
}

func TestSessionManager_PlaybackAdvancesFrames(t *testing.T) {
	op := &fakeOpener{}
	s := NewSessionManager(op, DefaultConstraints(), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()
	first := s.LatestFrame()
	if w, h := first.Size(); w != 64 || h != 48 {
		t.Fatalf("unexpected frame size %dx%d", w, h)
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.LatestFrame().Sequence <= first.Sequence {
		if time.Now().After(deadline) {
			t.Fatalf("playback loop did not advance past sequence %d", first.Sequence)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if st := s.Stats(); st.Frames < 2 || st.Opens != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestParseFacing(t *testing.T) {
	if ParseFacing("user") != FacingUser || ParseFacing("environment") != FacingEnvironment || ParseFacing("") != FacingEnvironment {
		t.Fatalf("unexpected facing mapping")
	}
}
