package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/follower/variant"
)

// hostEnv holds the settings that only the desktop host understands.
type hostEnv struct {
	ReducedMotion bool   `env:"FOLLOWER_REDUCED_MOTION"`
	AssetRoot     string `env:"FOLLOWER_ASSETS" envDefault:"."`
}

type options struct {
	// values are the companion overrides, keyed like variant.ParseOverrides.
	values map[string]string

	reducedMotion bool
	baseMonitor   bool
	assetRoot     string
	watch         bool
}

// flagKeys maps command line flags to override keys.
var flagKeys = map[string]string{
	"variant":        variant.KeyVariant,
	"persist":        variant.KeyPersistPosition,
	"height":         variant.KeyHeight,
	"speed":          variant.KeySpeed,
	"idle-distance":  variant.KeyIdleDistance,
	"death-interval": variant.KeyDeathInterval,
	"death-duration": variant.KeyDeathDuration,
}

// parseOptions reads the environment and then args. A flag given explicitly
// wins over its environment variable.
func parseOptions(args []string, output io.Writer) (options, error) {
	settings, err := variant.LoadEnv()
	if err != nil {
		return options{}, err
	}
	var he hostEnv
	if err := env.Parse(&he); err != nil {
		return options{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("follower", flag.ContinueOnError)
	fs.SetOutput(output)

	raw := make(map[string]*string, len(flagKeys))
	raw["variant"] = fs.String("variant", "", "companion variant key (default "+variant.DefaultKey+")")
	raw["persist"] = fs.String("persist", "", "remember the position between runs (true/false)")
	raw["height"] = fs.String("height", "", "display height in pixels")
	raw["speed"] = fs.String("speed", "", "pixels moved per tick")
	raw["idle-distance"] = fs.String("idle-distance", "", "distance to the pointer below which the companion rests")
	raw["death-interval"] = fs.String("death-interval", "", "seconds between death animations")
	raw["death-duration"] = fs.String("death-duration", "", "ticks the death animation lasts")
	reduced := fs.Bool("reduced-motion", he.ReducedMotion, "do not show the companion at all")
	baseMonitor := fs.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	assetRoot := fs.String("assets", he.AssetRoot, "directory sprite sheets are read from")
	watch := fs.Bool("watch", true, "reload prefabs/variants.yaml when it changes")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		values:        settings.Values(),
		reducedMotion: *reduced,
		baseMonitor:   *baseMonitor,
		assetRoot:     *assetRoot,
		watch:         *watch,
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			opts.values[key] = *raw[f.Name]
		}
	})
	return opts, nil
}
