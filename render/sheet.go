package render

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrEmptyImage = errors.New("render: image has no pixels")

// Sheet is a horizontal strip of equally sized animation frames.
type Sheet struct {
	URL         string
	Frames      int
	FrameWidth  float64
	FrameHeight float64
	Image       image.Image
}

// FrameRect returns the source rectangle of frame i, wrapping i into range.
func (s *Sheet) FrameRect(i int) image.Rectangle {
	if s == nil || s.Frames <= 0 {
		return image.Rectangle{}
	}
	i %= s.Frames
	if i < 0 {
		i += s.Frames
	}
	x0 := int(math.Round(float64(i) * s.FrameWidth))
	x1 := int(math.Round(float64(i+1) * s.FrameWidth))
	return image.Rect(x0, 0, x1, int(math.Round(s.FrameHeight)))
}

// SheetMetadata derives frame geometry for a decoded sheet. It is the seam
// for replacing the aspect-ratio guess with authored metadata.
type SheetMetadata interface {
	Sheet(url string, img image.Image) (*Sheet, error)
}

// AspectRatioMetadata assumes a single row of roughly square frames whose
// height equals the image height: frames = max(1, round(W/H)).
type AspectRatioMetadata struct{}

func (AspectRatioMetadata) Sheet(url string, img image.Image) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, url)
	}
	b := img.Bounds()
	return SheetFromSize(url, b.Dx(), b.Dy(), img)
}

// SheetFromSize applies the aspect-ratio rule to explicit pixel dimensions.
func SheetFromSize(url string, width, height int, img image.Image) (*Sheet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %s (%dx%d)", ErrEmptyImage, url, width, height)
	}
	w := float64(width)
	h := float64(height)
	frames := max(1, int(math.Round(w/h)))
	return &Sheet{
		URL:         url,
		Frames:      frames,
		FrameWidth:  w / float64(frames),
		FrameHeight: h,
		Image:       img,
	}, nil
}
