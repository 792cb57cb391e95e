package model

import (
	"sync"

	"github.com/soocke/camocr/domain/snapshot"
)

// State is a copy of everything the UI renders.
type State struct {
	Captured       snapshot.CapturedImage
	RecognizedText string
	Processing     bool
	CameraActive   bool
	CameraStarting bool
	TextSize       TextSize
	Version        uint64
}

// StateModel owns the UI-visible state. All mutations go through the named
// transitions below; each one that changes something bumps the version so
// presenters can skip redundant renders. Safe for concurrent use: the
// recognition goroutine finishes while the Tk thread reads.
type StateModel struct {
	mu sync.Mutex
	st State
}

// NewStateModel returns a model with the camera off and the given text size.
func NewStateModel(size TextSize) *StateModel {
	if _, ok := ParseTextSize(string(size)); !ok {
		size = DefaultTextSize
	}
	return &StateModel{st: State{TextSize: size}}
}

// State returns a snapshot copy.
func (m *StateModel) State() State {
	if m == nil {
		return State{TextSize: DefaultTextSize}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st
}

// Version returns the change counter.
func (m *StateModel) Version() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Version
}

func (m *StateModel) CameraActive() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.CameraActive
}

func (m *StateModel) Processing() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Processing
}

func (m *StateModel) CameraStarting() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.CameraStarting
}

// BeginCameraStart raises the starting flag. It refuses while the camera is
// active or another start is pending.
func (m *StateModel) BeginCameraStart() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.st.CameraActive || m.st.CameraStarting {
		return false
	}
	m.st.CameraStarting = true
	m.st.Version++
	return true
}

// CameraStarted marks the camera active.
func (m *StateModel) CameraStarted() { m.setCamera(true) }

// CameraStopped marks the camera inactive.
func (m *StateModel) CameraStopped() { m.setCamera(false) }

// CameraFailed resets the camera flags after a failed start.
func (m *StateModel) CameraFailed() { m.setCamera(false) }

func (m *StateModel) setCamera(active bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.st.CameraActive == active && !m.st.CameraStarting {
		return
	}
	m.st.CameraActive = active
	m.st.CameraStarting = false
	m.st.Version++
}

// BeginRecognition stores img as the captured image and raises the
// processing flag. It refuses (returns false) while a recognition is
// already in flight, leaving state untouched.
func (m *StateModel) BeginRecognition(img snapshot.CapturedImage) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.st.Processing {
		return false
	}
	m.st.Captured = img
	m.st.Processing = true
	m.st.Version++
	return true
}

// FinishRecognition stores the text and clears the processing flag.
func (m *StateModel) FinishRecognition(text string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.RecognizedText = text
	m.st.Processing = false
	m.st.Version++
}

// SetTextSize selects the display size; unknown values are ignored.
func (m *StateModel) SetTextSize(s TextSize) {
	if m == nil {
		return
	}
	if _, ok := ParseTextSize(string(s)); !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.st.TextSize == s {
		return
	}
	m.st.TextSize = s
	m.st.Version++
}
