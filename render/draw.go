package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer turns frames into draw calls. GPU images are created once per sheet
// and cached by URL.
type Drawer struct {
	images   map[string]*ebiten.Image
	outlines map[string]*ebiten.Image
	source   *ebiten.Image
	sprite   string
}

func NewDrawer() *Drawer {
	return &Drawer{
		images:   map[string]*ebiten.Image{},
		outlines: map[string]*ebiten.Image{},
	}
}

// Draw draws f onto screen with nearest filtering so pixel art stays crisp.
func (d *Drawer) Draw(screen *ebiten.Image, f Frame) {
	if d == nil || screen == nil || !f.Valid() || f.Sheet.Image == nil {
		return
	}
	if d.source == nil || f.SourceChanged || d.sprite != f.Sprite {
		d.source = d.image(f.Sheet)
		d.sprite = f.Sprite
	}
	drawColumn(screen, d.source, f)
}

// DrawOutline draws a one pixel highlight around f. Outlines are generated
// on first use per sheet.
func (d *Drawer) DrawOutline(screen *ebiten.Image, f Frame) {
	if d == nil || screen == nil || !f.Valid() || f.Sheet.Image == nil {
		return
	}
	img, ok := d.outlines[f.Sheet.URL]
	if !ok {
		img = ebiten.NewImageFromImage(OutlineSheet(f.Sheet, 1, OutlineColor))
		d.outlines[f.Sheet.URL] = img
	}
	drawColumn(screen, img, f)
}

func drawColumn(screen, strip *ebiten.Image, f Frame) {
	sub, ok := strip.SubImage(f.SourceRect()).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(f.Scale, f.Scale)
	if f.Mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(f.Width, 0)
	}
	op.GeoM.Translate(f.Left, f.Top)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}

func (d *Drawer) image(sheet *Sheet) *ebiten.Image {
	if img, ok := d.images[sheet.URL]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sheet.Image)
	d.images[sheet.URL] = img
	return img
}
