package render

import "image"

// Frame is one placement of the companion: which sheet column to show, at
// what size, where, and whether it is mirrored.
type Frame struct {
	Sprite string
	Sheet  *Sheet
	Column int

	// Scale maps sheet pixels to screen pixels (DisplayHeight/FrameHeight).
	Scale  float64
	Width  float64
	Height float64
	// StripWidth is the scaled width of the whole sheet and OffsetX the
	// horizontal shift that brings Column into view.
	StripWidth float64
	OffsetX    float64

	Mirror bool
	Left   float64
	Top    float64

	// SourceChanged is set when Sprite differs from the previous frame.
	SourceChanged bool
}

func (f Frame) Valid() bool {
	return f.Sheet != nil && f.Width > 0 && f.Height > 0
}

// SourceRect is the region of the sheet image covered by Column.
func (f Frame) SourceRect() image.Rectangle {
	return f.Sheet.FrameRect(f.Column)
}

// Contains reports whether the screen point lies on the rendered frame.
func (f Frame) Contains(x, y float64) bool {
	if !f.Valid() {
		return false
	}
	return x >= f.Left && x <= f.Left+f.Width && y >= f.Top && y <= f.Top+f.Height
}
