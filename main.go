package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/follower/assets"
	"github.com/milk9111/follower/obj"
	"github.com/milk9111/follower/persist"
	"github.com/milk9111/follower/prefabs"
	"github.com/milk9111/follower/variant"
)

// appName names the per-user data directory records are kept in.
const appName = "follower"

func main() {
	logger := log.New(os.Stderr, "[follower] ", log.LstdFlags)

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal(err)
	}
	if opts.reducedMotion {
		logger.Printf("reduced motion requested, not showing a companion")
		return
	}

	catalog, err := variant.LoadCatalog()
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	var store persist.Store
	if s, err := persist.OpenGdataStore(appName); err != nil {
		logger.Printf("positions will not survive a restart: %v", err)
		store = persist.NewMemoryStore()
	} else {
		store = s
	}

	var watcher *prefabs.Watcher
	if opts.watch {
		if _, statErr := os.Stat(prefabs.Dir); statErr == nil {
			watcher, err = prefabs.NewWatcher(prefabs.Dir)
			if err != nil {
				logger.Printf("hot reload disabled: %v", err)
				watcher = nil
			}
		}
	}

	if opts.baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowTitle("follower")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowMousePassthrough(true)

	game := NewGame(catalog, opts.values, obj.Deps{
		Images: assets.NewSource(opts.assetRoot),
		Store:  store,
		Logger: logger,
	}, watcher)

	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		logger.Fatal(err)
	}
}
