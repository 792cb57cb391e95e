package view

import (
	"image"

	"github.com/soocke/camocr/domain/snapshot"
	"github.com/soocke/camocr/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview owns the live camera label and the last captured image label.
type CapturePreview interface {
	UpdatePreview(img image.Image)
	ShowCaptured(img snapshot.CapturedImage)
	Reset()
}

type capturePreview struct {
	liveLabel     *LabelWidget
	capturedLabel *LabelWidget
	maxW, maxH    int
	prevLive      *Img // last Tk photo image instance for the live preview
	prevCaptured  *Img // last Tk photo image instance for the capture
}

// Old photos are deleted before replacement so obsolete pixel buffers are
// not kept alive inside Tk.

const (
	placeholderW = 200
	placeholderH = 120
)

// NewCapturePreview creates the labels and grids them at liveRow and
// capturedRow spanning all columns.
func NewCapturePreview(liveRow, capturedRow, maxW, maxH int) CapturePreview {
	ph := images.Placeholder(placeholderW, placeholderH)
	livePhoto := NewPhoto(Data(ph))
	capPhoto := NewPhoto(Data(ph))
	live := Label(Image(livePhoto), Borderwidth(1), Relief("sunken"))
	captured := Label(Image(capPhoto), Borderwidth(1), Relief("groove"))
	Grid(live, Row(liveRow), Column(0), Columnspan(3), Padx("0.4m"), Pady("0.4m"))
	Grid(captured, Row(capturedRow), Column(0), Columnspan(3), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{liveLabel: live, capturedLabel: captured, maxW: maxW, maxH: maxH, prevLive: livePhoto, prevCaptured: capPhoto}
}

func (v *capturePreview) UpdatePreview(img image.Image) {
	if v.liveLabel == nil || img == nil {
		return
	}
	// Scale for display only; the snapshot always uses the native frame.
	scaled := images.ScaleToFit(img, v.maxW, v.maxH)
	v.prevLive = replacePhoto(v.liveLabel, v.prevLive, images.EncodePNG(scaled))
}

func (v *capturePreview) ShowCaptured(img snapshot.CapturedImage) {
	if v.capturedLabel == nil {
		return
	}
	if img.Empty() {
		v.prevCaptured = replacePhoto(v.capturedLabel, v.prevCaptured, images.Placeholder(placeholderW, placeholderH))
		return
	}
	data := img.PNG
	if img.Width > v.maxW || img.Height > v.maxH {
		if raster, err := img.Decode(); err == nil {
			data = images.EncodePNG(images.ScaleToFit(raster, v.maxW, v.maxH))
		}
	}
	v.prevCaptured = replacePhoto(v.capturedLabel, v.prevCaptured, data)
}

// Reset clears the live preview only; the captured image stays until the
// next capture replaces it.
func (v *capturePreview) Reset() {
	if v.liveLabel == nil {
		return
	}
	v.prevLive = replacePhoto(v.liveLabel, v.prevLive, images.Placeholder(placeholderW, placeholderH))
}

func replacePhoto(lbl *LabelWidget, prev *Img, png []byte) *Img {
	if len(png) == 0 {
		return prev
	}
	if prev != nil {
		prev.Delete()
	}
	photo := NewPhoto(Data(png))
	lbl.Configure(Image(photo))
	return photo
}
