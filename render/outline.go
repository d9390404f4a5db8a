package render

import (
	"image"
	"image/color"
	"image/draw"
)

// OutlineColor is the hover highlight drawn around the companion.
var OutlineColor = color.NRGBA{R: 0xff, G: 0xe0, B: 0x60, A: 0xff}

// OutlineSheet returns an image the size of the sheet holding only outline
// pixels: transparent pixels within thickness of an opaque one in the same
// frame. Frames never bleed into their neighbours.
func OutlineSheet(s *Sheet, thickness int, col color.Color) *image.RGBA {
	b := s.Image.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Normalise to a zero-origin RGBA so alpha lookups are plain index math.
	src := image.NewRGBA(out.Bounds())
	draw.Draw(src, src.Bounds(), s.Image, b.Min, draw.Src)

	for i := 0; i < s.Frames; i++ {
		outlineRect(src, out, s.FrameRect(i).Intersect(src.Bounds()), thickness, col)
	}
	return out
}

func outlineRect(src, out *image.RGBA, r image.Rectangle, thickness int, col color.Color) {
	isOpaque := func(x, y int) bool {
		if !(image.Point{X: x, Y: y}).In(r) {
			return false
		}
		return src.Pix[src.PixOffset(x, y)+3] != 0
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := max(y-thickness, r.Min.Y); yy <= min(y+thickness, r.Max.Y-1) && !found; yy++ {
				for xx := max(x-thickness, r.Min.X); xx <= min(x+thickness, r.Max.X-1); xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.Set(x, y, col)
			}
		}
	}
}
