package snapshot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"time"
)

// MIMEType of every CapturedImage payload.
const MIMEType = "image/png"

// CapturedImage is one immutable, losslessly encoded video frame.
// The zero value means "no capture".
type CapturedImage struct {
	ID         string
	PNG        []byte
	Width      int
	Height     int
	CapturedAt time.Time
}

// Empty reports whether the image holds no payload.
func (c CapturedImage) Empty() bool { return len(c.PNG) == 0 }

// DataURI returns the self-contained data URI form of the image.
func (c CapturedImage) DataURI() string {
	if c.Empty() {
		return ""
	}
	return "data:" + MIMEType + ";base64," + base64.StdEncoding.EncodeToString(c.PNG)
}

// Decode returns the raster stored in the image.
func (c CapturedImage) Decode() (image.Image, error) {
	if c.Empty() {
		return nil, fmt.Errorf("snapshot: empty image")
	}
	img, err := png.Decode(bytes.NewReader(c.PNG))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return img, nil
}
