package obj

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/follower/common"
	"github.com/milk9111/follower/render"
	"github.com/milk9111/follower/variant"
)

const (
	// TickInterval is the minimum wall-clock time between state updates.
	TickInterval = 100 * time.Millisecond

	AttackFrameDuration = 3 // ticks per attack sheet frame
	DeathFrameDuration  = 4 // ticks per death sheet frame
	IdleFrameDivider    = 6 // idle advances one frame every 6 idle ticks
	RunFrameDivider     = 2 // run advances one frame every 2 ticks

	// FacingHysteresis is the horizontal band around the pointer inside which
	// the facing direction is left alone.
	FacingHysteresis = 1.0

	StartX = 64
	StartY = 64
)

// Mode is the state of the companion state machine.
type Mode int

const (
	ModeIdle Mode = iota
	ModeMoving
	ModeAttacking
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMoving:
		return "moving"
	case ModeAttacking:
		return "attacking"
	case ModeDead:
		return "dead"
	}
	return "unknown"
}

// State is the mutable companion state.
type State struct {
	X, Y           float64
	MouseX, MouseY float64

	FrameCount  int
	IdleTimer   int
	AttackFrame int
	DeathFrame  int

	Mode       Mode
	FacingLeft bool
	// LastDeathTrigger is the whole-second engine time of the last death.
	LastDeathTrigger int64
}

// Companion is the motion and animation engine. It is driven by Tick and
// never reads a clock or input device itself.
type Companion struct {
	state    State
	behavior variant.Behavior
	sprites  *render.SpriteSet

	viewW, viewH float64

	frame    render.Frame
	hasFrame bool

	states map[Mode]companionState
}

func NewCompanion(sprites *render.SpriteSet, behavior variant.Behavior) *Companion {
	return &Companion{
		state:    State{X: StartX, Y: StartY, Mode: ModeIdle},
		behavior: behavior,
		sprites:  sprites,
		viewW:    common.BaseWidth,
		viewH:    common.BaseHeight,
		states: map[Mode]companionState{
			ModeIdle:      idleState{},
			ModeMoving:    movingState{},
			ModeAttacking: attackingState{},
			ModeDead:      deadState{},
		},
	}
}

// State returns a copy of the current state.
func (c *Companion) State() State { return c.state }

func (c *Companion) Mode() Mode { return c.state.Mode }

func (c *Companion) Behavior() variant.Behavior { return c.behavior }

// Frame returns the most recent render placement, positioned at the current
// location.
func (c *Companion) Frame() render.Frame {
	f := c.frame
	w, h := c.renderSize()
	f.Left = c.state.X - w/2
	f.Top = c.state.Y - h/2
	return f
}

func (c *Companion) SetPointer(x, y float64) {
	c.state.MouseX = x
	c.state.MouseY = y
}

// SetViewport sets the area the companion is clamped to.
func (c *Companion) SetViewport(w, h float64) {
	if w > 0 && h > 0 {
		c.viewW, c.viewH = w, h
	}
}

func (c *Companion) SetPosition(x, y float64) {
	c.state.X, c.state.Y = x, y
}

func (c *Companion) SetFrameCount(n int) {
	c.state.FrameCount = n
}

// Show draws the idle pose at frame 0.
func (c *Companion) Show() {
	c.render(variant.AnimIdle, 0)
}

// Click starts the attack flourish unless the companion is dead or already
// attacking. It reports whether the click was taken.
func (c *Companion) Click() bool {
	if c.state.Mode == ModeDead || c.state.Mode == ModeAttacking {
		return false
	}
	c.setMode(ModeAttacking)
	return true
}

// HitTest reports whether the screen point is on the rendered companion.
func (c *Companion) HitTest(x, y float64) bool {
	return c.Frame().Contains(x, y)
}

// Tick runs one state update. elapsed is the wall-clock time since the
// engine started and only feeds the death timer.
func (c *Companion) Tick(elapsed time.Duration) {
	c.state.FrameCount++
	c.states[c.state.Mode].Tick(c, int64(elapsed/time.Second))
}

func (c *Companion) setMode(m Mode) {
	if c.state.Mode == m {
		return
	}
	c.states[c.state.Mode].Exit(c)
	c.state.Mode = m
	c.states[m].Enter(c)
}

// ambulate is the shared idle/moving evaluation: idle near the pointer,
// chase otherwise.
func (c *Companion) ambulate(seconds int64) {
	pos := cp.Vector{X: c.state.X, Y: c.state.Y}
	diff := pos.Sub(cp.Vector{X: c.state.MouseX, Y: c.state.MouseY})
	distance := diff.Length()

	if distance < c.behavior.Speed || distance < c.behavior.IdleDistance {
		c.setMode(ModeIdle)
		c.idle(seconds)
		return
	}

	c.setMode(ModeMoving)
	c.state.IdleTimer = 0

	if diff.X > FacingHysteresis {
		c.state.FacingLeft = true
	} else if diff.X < -FacingHysteresis {
		c.state.FacingLeft = false
	}

	c.render(variant.AnimRun, c.state.FrameCount/RunFrameDivider)

	pos = pos.Sub(diff.Mult(c.behavior.Speed / distance))
	c.state.X, c.state.Y = pos.X, pos.Y
	c.clamp()
}

func (c *Companion) idle(seconds int64) {
	c.state.IdleTimer++
	c.render(variant.AnimIdle, c.state.IdleTimer/IdleFrameDivider)

	if float64(seconds) >= float64(c.state.LastDeathTrigger)+c.behavior.DeathIntervalSeconds {
		c.state.LastDeathTrigger = seconds
		c.setMode(ModeDead)
	}
}

func (c *Companion) clamp() {
	w, h := c.renderSize()
	c.state.X = common.Clamp(c.state.X, w/2, c.viewW-w/2)
	c.state.Y = common.Clamp(c.state.Y, h/2, c.viewH-h/2)
}

// renderSize is the current rendered size, or a DisplayHeight square before
// anything was drawn.
func (c *Companion) renderSize() (float64, float64) {
	if !c.hasFrame {
		return c.behavior.DisplayHeight, c.behavior.DisplayHeight
	}
	return c.frame.Width, c.frame.Height
}

// render selects frameIndex of the requested animation, substituting a
// loaded sheet when needed, and returns the sheet actually used.
func (c *Companion) render(requested string, frameIndex int) *render.Sheet {
	name, sheet, ok := c.sprites.Resolve(requested)
	if !ok {
		return nil
	}

	column := frameIndex % sheet.Frames
	scale := c.behavior.DisplayHeight / sheet.FrameHeight
	width := sheet.FrameWidth * scale

	c.frame = render.Frame{
		Sprite:        name,
		Sheet:         sheet,
		Column:        column,
		Scale:         scale,
		Width:         width,
		Height:        sheet.FrameHeight * scale,
		StripWidth:    sheet.FrameWidth * float64(sheet.Frames) * scale,
		OffsetX:       float64(column) * -width,
		Mirror:        c.state.FacingLeft,
		SourceChanged: !c.hasFrame || c.frame.Sprite != name,
	}
	c.hasFrame = true
	return sheet
}
