package main

import (
	"context"
	"errors"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/follower/common"
	"github.com/milk9111/follower/obj"
	"github.com/milk9111/follower/prefabs"
	"github.com/milk9111/follower/render"
	"github.com/milk9111/follower/variant"
)

// started is the outcome of an agent start running off the update goroutine.
type started struct {
	generation int
	agent      *obj.Agent
	err        error
}

type Game struct {
	logger  *log.Logger
	catalog *variant.Catalog
	values  map[string]string
	deps    obj.Deps

	input  *obj.Input
	drawer *render.Drawer

	agent      *obj.Agent
	current    string
	pending    chan started
	generation int
	cancel     context.CancelFunc

	switcher     *ebitenui.UI
	showSwitcher bool
	hovered      bool
	passthrough  bool

	watcher *prefabs.Watcher

	width, height float64
}

func NewGame(catalog *variant.Catalog, values map[string]string, deps obj.Deps, watcher *prefabs.Watcher) *Game {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	g := &Game{
		logger:  deps.Logger,
		catalog: catalog,
		values:  values,
		deps:    deps,
		input:   obj.NewInput(),
		drawer:  render.NewDrawer(),
		pending: make(chan started, 1),
		watcher: watcher,
		// main starts the window with passthrough on.
		passthrough: true,
		width:       common.BaseWidth,
		height:      common.BaseHeight,
	}
	g.switchTo(values[variant.KeyVariant])
	return g
}

// switchTo stops the running companion, persisting it, and starts id in the
// background. Starts that finish after a later switch are discarded.
func (g *Game) switchTo(id string) {
	g.stopAgent()

	g.generation++
	g.current = variant.Normalize(id)
	g.switcher = NewSwitcherUI(g.catalog, g.current, g.choose)

	agent, err := obj.Configure(g.catalog, id, g.values, g.deps)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	gen := g.generation
	go func() {
		err := agent.Start(ctx)
		g.pending <- started{generation: gen, agent: agent, err: err}
	}()
}

// choose is called by the switcher. The explicit choice replaces whatever
// variant the flags or environment asked for.
func (g *Game) choose(key string) {
	if key == g.current && g.agent != nil {
		return
	}
	g.values[variant.KeyVariant] = key
	g.switchTo(key)
	g.showSwitcher = false
}

func (g *Game) stopAgent() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	if g.agent != nil {
		g.agent.Stop()
		g.agent = nil
	}
}

func (g *Game) receive() {
	for {
		select {
		case s := <-g.pending:
			if s.generation != g.generation {
				continue
			}
			g.cancel = nil
			if s.err != nil {
				if !errors.Is(s.err, context.Canceled) {
					g.logger.Printf("companion %s did not start: %v", g.current, s.err)
				}
				continue
			}
			g.agent = s.agent
			g.agent.SetViewport(g.width, g.height)
		default:
			return
		}
	}
}

func (g *Game) reload() {
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != prefabs.CatalogFile {
				continue
			}
			catalog, err := variant.LoadCatalog()
			if err != nil {
				g.logger.Printf("ignoring %s: %v", name, err)
				continue
			}
			g.logger.Printf("reloaded %s (%d variants)", name, len(catalog.Keys()))
			g.catalog = catalog
			g.switchTo(g.current)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Printf("watch prefabs: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return g.Shutdown()
	}

	g.input.Update()
	if g.input.QuitPressed {
		return g.Shutdown()
	}
	if g.input.TogglePressed {
		g.showSwitcher = !g.showSwitcher
	}

	if g.watcher != nil {
		g.reload()
	}
	g.receive()

	if g.showSwitcher {
		g.switcher.Update()
	}

	if g.agent != nil {
		g.agent.SetViewport(g.width, g.height)
		g.agent.SetPointer(g.input.CursorX, g.input.CursorY)
		if g.input.ClickPressed && !g.showSwitcher {
			g.agent.Click(g.input.CursorX, g.input.CursorY)
		}
		if !g.agent.Update() {
			g.agent = nil
		}
	}

	g.updatePassthrough()
	return nil
}

// updatePassthrough lets clicks reach the desktop everywhere except on the
// companion and the open switcher.
func (g *Game) updatePassthrough() {
	g.hovered = g.agent != nil && g.agent.Frame().Contains(g.input.CursorX, g.input.CursorY)
	want := !g.showSwitcher && !g.hovered
	if want != g.passthrough {
		ebiten.SetWindowMousePassthrough(want)
		g.passthrough = want
	}
}

// Shutdown persists the running companion and ends the game loop.
func (g *Game) Shutdown() error {
	g.stopAgent()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Printf("close watcher: %v", err)
		}
		g.watcher = nil
	}
	return ebiten.Termination
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.agent != nil {
		f := g.agent.Frame()
		if g.hovered && !g.showSwitcher {
			g.drawer.DrawOutline(screen, f)
		}
		g.drawer.Draw(screen, f)
	}
	if g.showSwitcher {
		g.switcher.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
