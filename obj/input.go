package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the pointer and key state the host feeds to the companion.
type Input struct {
	// CursorX/Y are the pointer position in window pixels.
	CursorX float64
	CursorY float64
	// ClickPressed is true on the frame the left mouse button was pressed.
	ClickPressed bool
	// TogglePressed is true on the frame the switcher key (Tab) was pressed.
	TogglePressed bool
	// QuitPressed is true on the frame F12 or Escape was pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls ebiten for the current frame.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorX = float64(mx)
	i.CursorY = float64(my)

	// Touch counts as a pointer too; the first active touch wins.
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		i.CursorX = float64(tx)
		i.CursorY = float64(ty)
	}

	i.ClickPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	i.TogglePressed = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
