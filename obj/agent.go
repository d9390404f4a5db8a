package obj

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/follower/persist"
	"github.com/milk9111/follower/render"
	"github.com/milk9111/follower/variant"
)

// ErrNoSprites aborts startup when not a single sheet of the variant loaded.
var ErrNoSprites = errors.New("companion: no sprites loaded")

// Deps are the collaborators of an Agent.
type Deps struct {
	Images   render.ImageSource
	Metadata render.SheetMetadata
	Store    persist.Store
	Clock    Clock
	Logger   *log.Logger
}

// Agent owns one companion from sprite loading to shutdown. Agents share no
// state, so several can run side by side.
type Agent struct {
	id     string
	cfg    variant.Config
	loader *render.Loader
	slot   *persist.Slot
	clock  Clock
	logger *log.Logger

	companion *Companion
	attached  bool
	persisted bool
	started   time.Time
	lastTick  time.Time
}

func NewAgent(cfg variant.Config, deps Deps) *Agent {
	id := uuid.NewString()
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = log.New(logger.Writer(), fmt.Sprintf("%s[%s %s] ", logger.Prefix(), cfg.Variant.Key, id[:8]), logger.Flags())

	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	return &Agent{
		id:     id,
		cfg:    cfg,
		loader: render.NewLoader(deps.Images, deps.Metadata, logger),
		slot:   persist.NewSlot(deps.Store, cfg.Variant.StorageKey, cfg.PersistPosition),
		clock:  clock,
		logger: logger,
	}
}

// Configure resolves id against the catalog and applies the override values
// to it. Override problems are logged and skipped; an unknown variant is
// logged with the valid keys and returned, and no agent is created.
func Configure(catalog *variant.Catalog, id string, values map[string]string, deps Deps) (*Agent, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	v, err := catalog.Resolve(id)
	if err != nil {
		logger.Printf("%v", err)
		return nil, err
	}

	overrides, problems := variant.ParseOverrides(values)
	for _, p := range problems {
		logger.Printf("%v", p)
	}
	return NewAgent(v.Apply(overrides), deps), nil
}

func (a *Agent) ID() string { return a.id }

func (a *Agent) Config() variant.Config { return a.cfg }

// Companion is nil until Start succeeds.
func (a *Agent) Companion() *Companion { return a.companion }

func (a *Agent) Attached() bool { return a.attached }

// Start loads every sheet, restores the persisted position and attaches the
// companion. It blocks until all loads have settled.
func (a *Agent) Start(ctx context.Context) error {
	if a.attached {
		return nil
	}

	sprites := a.loader.Load(ctx, a.cfg.Variant.SpriteSources())
	if err := ctx.Err(); err != nil {
		return err
	}
	if sprites.Len() == 0 {
		a.logger.Printf("no sprites loaded for variant %s", a.cfg.Variant.Key)
		return ErrNoSprites
	}

	c := NewCompanion(sprites, a.cfg.Behavior)
	a.restore(c)
	c.Show()

	a.companion = c
	a.started = a.clock.Now()
	a.lastTick = time.Time{}
	a.attached = true
	return nil
}

func (a *Agent) restore(c *Companion) {
	if !a.slot.Enabled() {
		return
	}
	st := c.State()
	rec := persist.Record{X: st.X, Y: st.Y, FrameCount: st.FrameCount}
	if err := a.slot.Restore(&rec); err != nil {
		a.logger.Printf("failed to restore state: %v", err)
		return
	}
	c.SetPosition(rec.X, rec.Y)
	c.SetFrameCount(rec.FrameCount)
}

// Update is the per-refresh callback. It runs at most one tick per
// TickInterval and returns false once the agent is detached, telling the
// caller to stop scheduling it.
func (a *Agent) Update() bool {
	if !a.attached {
		return false
	}
	now := a.clock.Now()
	if a.lastTick.IsZero() {
		a.lastTick = now
		return true
	}
	if now.Sub(a.lastTick) >= TickInterval {
		a.lastTick = now
		a.companion.Tick(now.Sub(a.started))
	}
	return true
}

func (a *Agent) SetPointer(x, y float64) {
	if a.companion != nil {
		a.companion.SetPointer(x, y)
	}
}

func (a *Agent) SetViewport(w, h float64) {
	if a.companion != nil {
		a.companion.SetViewport(w, h)
	}
}

// Click forwards a click at screen point (x, y) if it lands on the companion.
func (a *Agent) Click(x, y float64) bool {
	if !a.attached || !a.companion.HitTest(x, y) {
		return false
	}
	return a.companion.Click()
}

// Frame returns the current placement; it is invalid while detached.
func (a *Agent) Frame() render.Frame {
	if !a.attached {
		return render.Frame{}
	}
	return a.companion.Frame()
}

// Stop persists the companion once and detaches it.
func (a *Agent) Stop() {
	if !a.attached {
		return
	}
	a.attached = false
	if a.persisted || !a.slot.Enabled() {
		return
	}
	a.persisted = true

	st := a.companion.State()
	rec := persist.Record{X: st.X, Y: st.Y, FrameCount: st.FrameCount}
	if err := a.slot.Persist(rec); err != nil {
		a.logger.Printf("unable to persist state: %v", err)
	}
}
