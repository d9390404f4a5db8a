// Package variant holds the companion skins and the startup configuration
// derived from them.
package variant

import (
	"path"
	"regexp"
	"strings"
)

// DefaultKey is used when no variant is requested at all.
const DefaultKey = "shinobi"

// Animation names a variant may provide sheets for.
const (
	AnimIdle   = "idle"
	AnimRun    = "run"
	AnimAttack = "attack"
	AnimDead   = "dead"
)

// Behavior holds the movement and animation tunables of a companion.
type Behavior struct {
	// Speed is the chase speed in pixels per tick.
	Speed float64
	// DisplayHeight is the rendered sprite height in pixels.
	DisplayHeight float64
	// IdleDistance is the pointer distance below which the companion idles.
	IdleDistance float64
	// DeathIntervalSeconds is the time between scripted death cycles.
	DeathIntervalSeconds float64
	// DeathDurationFrames is how many ticks the death pose is held.
	DeathDurationFrames int
}

// DefaultBehavior is merged under every catalog entry.
var DefaultBehavior = Behavior{
	Speed:                9.5,
	DisplayHeight:        80,
	IdleDistance:         54,
	DeathIntervalSeconds: 42,
	DeathDurationFrames:  75,
}

// Valid reports whether every tunable is positive.
func (b Behavior) Valid() bool {
	return b.Speed > 0 && b.DisplayHeight > 0 && b.IdleDistance > 0 &&
		b.DeathIntervalSeconds > 0 && b.DeathDurationFrames > 0
}

// merge returns b with every non-positive field taken from base.
func (b Behavior) merge(base Behavior) Behavior {
	out := base
	if b.Speed > 0 {
		out.Speed = b.Speed
	}
	if b.DisplayHeight > 0 {
		out.DisplayHeight = b.DisplayHeight
	}
	if b.IdleDistance > 0 {
		out.IdleDistance = b.IdleDistance
	}
	if b.DeathIntervalSeconds > 0 {
		out.DeathIntervalSeconds = b.DeathIntervalSeconds
	}
	if b.DeathDurationFrames > 0 {
		out.DeathDurationFrames = b.DeathDurationFrames
	}
	return out
}

// Variant is one companion skin. It is immutable once resolved.
type Variant struct {
	Key         string
	DisplayName string
	StorageKey  string
	BasePath    string
	// Sprites maps an animation name to a file relative to BasePath.
	Sprites map[string]string
	Behavior
}

// SpriteSources returns the animation name to full sheet path mapping.
func (v Variant) SpriteSources() map[string]string {
	out := make(map[string]string, len(v.Sprites))
	for name, file := range v.Sprites {
		out[name] = path.Join(v.BasePath, file)
	}
	return out
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lower-cases id, turns runs of other characters into '-' and trims
// leading and trailing dashes. An empty id selects DefaultKey.
func Normalize(id string) string {
	if strings.TrimSpace(id) == "" {
		id = DefaultKey
	}
	s := nonAlnum.ReplaceAllString(strings.ToLower(id), "-")
	return strings.Trim(s, "-")
}
