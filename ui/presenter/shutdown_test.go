package presenter

import (
	"context"
	"testing"

	cam "github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/recognition"
	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/model"
)

// blockingEngine holds recognition open until release is closed.
type blockingEngine struct {
	entered chan struct{}
	release chan struct{}
}

func (e *blockingEngine) Name() string { return "blocking" }
func (e *blockingEngine) Recognize(context.Context, recognition.Input) (string, error) {
	close(e.entered)
	<-e.release
	return "東 京", nil
}

func TestShutdown_ReleasesCameraOnce(t *testing.T) {
	m := model.NewStateModel(model.TextLarge)
	stream := &loopStream{}
	opens := 0
	opener := cam.OpenerFunc(func(context.Context, cam.Constraints) (cam.Stream, error) {
		opens++
		return stream, nil
	})
	session := cam.NewSessionManager(opener, cam.DefaultConstraints(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	camera := syncCamera(m, session, &mockCameraView{}, "camera error")
	camera.Start(ctx)
	if !m.CameraActive() || !session.Running() {
		t.Fatalf("camera did not start: active=%v running=%v", m.CameraActive(), session.Running())
	}

	sd := NewShutdown(cancel, camera, session, m)
	if !sd.Run() {
		t.Fatalf("first run reported no work")
	}
	stream.mu.Lock()
	closed := stream.closed
	stream.mu.Unlock()
	if !closed || session.Running() || m.CameraActive() || ctx.Err() == nil {
		t.Fatalf("after shutdown: closed=%v running=%v active=%v ctx=%v", closed, session.Running(), m.CameraActive(), ctx.Err())
	}
	if sd.Run() || !sd.Done() {
		t.Fatalf("second run should be a no-op")
	}
	if opens != 1 {
		t.Fatalf("expected one open, got %d", opens)
	}
}

func TestShutdown_InFlightRecognitionFinishes(t *testing.T) {
	m := model.NewStateModel(model.TextLarge)
	session := cam.NewSessionManager(cam.OpenerFunc(func(context.Context, cam.Constraints) (cam.Stream, error) {
		return &loopStream{}, nil
	}), cam.DefaultConstraints(), nil)
	engine := &blockingEngine{entered: make(chan struct{}), release: make(chan struct{})}
	adapter := recognition.NewAdapter(engine, recognition.Options{Language: "jpn", FailureText: "failed"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	camera := syncCamera(m, session, &mockCameraView{}, "camera error")
	capture := NewCapturePresenter(m, session, snapshot.NewSnapshotter(nil), adapter, nil)

	camera.Start(ctx)
	if !capture.CaptureAndRecognize(ctx) {
		t.Fatalf("capture not started")
	}
	<-engine.entered
	NewShutdown(cancel, camera, session, m).Run()
	close(engine.release)
	capture.Wait()

	st := m.State()
	if st.Processing || st.RecognizedText != "東京" || st.CameraActive || session.Running() {
		t.Fatalf("unexpected state after shutdown: %+v running=%v", st, session.Running())
	}
}
