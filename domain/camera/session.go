package camera

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	statsLogInterval = 5 * time.Second
	readBackoff      = 10 * time.Millisecond
)

// SessionManager owns at most one open Stream. Start opens and begins
// playback, Stop releases the stream. Both are safe to call repeatedly.
type SessionManager struct {
	opener      Opener
	constraints Constraints
	logger      *slog.Logger

	mu     sync.Mutex // serializes Start/Stop
	cancel context.CancelFunc
	done   chan struct{}

	running   atomic.Bool
	latest    atomic.Pointer[FrameSnapshot]
	frames    atomic.Uint64
	errors    atomic.Uint64
	readNanos atomic.Uint64
	sequence  atomic.Uint64
	opens     atomic.Uint64
}

// NewSessionManager constructs an inactive session manager.
func NewSessionManager(opener Opener, c Constraints, logger *slog.Logger) *SessionManager {
	return &SessionManager{opener: opener, constraints: c, logger: logger}
}

// Start opens the stream, reads the first frame and starts the playback
// loop. Starting an active session is a no-op. On any failure the opened
// stream is closed and the session stays inactive.
func (s *SessionManager) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return nil
	}
	if s.opener == nil {
		return fmt.Errorf("camera: no opener configured")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("camera: start: %w", err)
	}
	stream, err := s.opener.Open(ctx, s.constraints)
	if err != nil {
		return fmt.Errorf("camera: open %q: %w", s.constraints.Device, err)
	}
	s.opens.Add(1)

	first, err := stream.ReadFrame()
	if err == nil && first == nil {
		err = ErrUnavailable
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		if cerr := stream.Close(); cerr != nil && s.logger != nil {
			s.logger.Warn("camera close after failed start", "error", cerr)
		}
		return fmt.Errorf("camera: first frame: %w", err)
	}
	s.store(first, 0)

	loopCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running.Store(true)
	go s.loop(loopCtx, stream, s.done)

	if s.logger != nil {
		w, h := first.Bounds().Dx(), first.Bounds().Dy()
		s.logger.Info("camera started", "device", s.constraints.Device, "width", w, "height", h)
	}
	return nil
}

// Stop halts playback and releases the stream. No-op when inactive.
func (s *SessionManager) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
	s.latest.Store(nil)
	if s.logger != nil {
		s.logger.Info("camera stopped", "frames", s.frames.Load())
	}
}

func (s *SessionManager) Running() bool { return s.running.Load() }

func (s *SessionManager) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *SessionManager) Stats() Stats {
	frames := s.frames.Load()
	var avg time.Duration
	if total := s.readNanos.Load(); frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
	}
	snap := s.LatestFrame()
	age := time.Duration(0)
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return Stats{
		Frames:         frames,
		ReadErrors:     s.errors.Load(),
		AvgRead:        avg,
		LastFrame:      snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
		Opens:          s.opens.Load(),
	}
}

// loop owns the stream until ctx is cancelled and closes it on exit.
func (s *SessionManager) loop(ctx context.Context, stream Stream, done chan struct{}) {
	defer close(done)
	defer func() {
		if err := stream.Close(); err != nil && s.logger != nil {
			s.logger.Error("camera close", "error", err)
		}
	}()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-logTicker.C:
			s.logStats()
		default:
		}
		start := time.Now()
		img, err := stream.ReadFrame()
		if err != nil || img == nil {
			s.errors.Add(1)
			if err != nil && s.logger != nil {
				s.logger.Debug("camera read", "error", err)
			}
			time.Sleep(readBackoff)
			continue
		}
		s.store(img, time.Since(start))
		time.Sleep(200 * time.Microsecond)
	}
}

func (s *SessionManager) store(img *image.RGBA, elapsed time.Duration) {
	s.readNanos.Add(uint64(elapsed.Nanoseconds()))
	s.frames.Add(1)
	seq := s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})
}

func (s *SessionManager) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("camera.stats",
		"frames", stats.Frames,
		"read_errors", stats.ReadErrors,
		"avg_read", stats.AvgRead,
		"age", stats.LatestFrameAge,
	)
}
