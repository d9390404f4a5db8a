package obj

import "github.com/milk9111/follower/variant"

// companionState is implemented by each mode of the companion.
type companionState interface {
	Enter(c *Companion)
	Exit(c *Companion)
	Tick(c *Companion, seconds int64)
	Name() string
}

type idleState struct{}

func (idleState) Name() string     { return "idle" }
func (idleState) Enter(*Companion) {}
func (idleState) Exit(*Companion)  {}
func (idleState) Tick(c *Companion, seconds int64) {
	c.ambulate(seconds)
}

type movingState struct{}

func (movingState) Name() string     { return "moving" }
func (movingState) Enter(*Companion) {}
func (movingState) Exit(*Companion)  {}
func (movingState) Tick(c *Companion, seconds int64) {
	c.ambulate(seconds)
}

// attackingState plays the attack sheet once. Position and pointer tracking
// are frozen until it finishes.
type attackingState struct{}

func (attackingState) Name() string { return "attacking" }
func (attackingState) Enter(c *Companion) {
	c.state.AttackFrame = 0
}
func (attackingState) Exit(c *Companion) {
	c.state.AttackFrame = 0
}
func (attackingState) Tick(c *Companion, _ int64) {
	sheet := c.render(variant.AnimAttack, c.state.AttackFrame/AttackFrameDuration)
	if sheet == nil {
		return
	}
	c.state.AttackFrame++
	if c.state.AttackFrame/AttackFrameDuration >= sheet.Frames {
		c.setMode(ModeIdle)
		c.render(variant.AnimIdle, 0)
	}
}

// deadState holds the last death frame until DeathDurationFrames ticks have
// passed, then revives into idle.
type deadState struct{}

func (deadState) Name() string { return "dead" }
func (deadState) Enter(c *Companion) {
	c.state.DeathFrame = 0
}
func (deadState) Exit(c *Companion) {
	c.state.DeathFrame = 0
}
func (deadState) Tick(c *Companion, _ int64) {
	_, sheet, ok := c.sprites.Resolve(variant.AnimDead)
	if !ok {
		return
	}
	c.render(variant.AnimDead, min(sheet.Frames-1, c.state.DeathFrame/DeathFrameDuration))
	c.state.DeathFrame++
	if c.state.DeathFrame >= c.behavior.DeathDurationFrames {
		c.setMode(ModeIdle)
		c.render(variant.AnimIdle, 0)
	}
}
