package variant

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Override keys accepted from the embedding context.
const (
	KeyVariant         = "variant"
	KeyPersistPosition = "persistPosition"
	KeyHeight          = "height"
	KeySpeed           = "speed"
	KeyIdleDistance    = "idleDistance"
	KeyDeathInterval   = "deathInterval"
	KeyDeathDuration   = "deathDuration"
)

// Overrides are per-instance adjustments of a variant. Nil fields keep the
// variant default.
type Overrides struct {
	PersistPosition *bool
	Height          *int
	Speed           *float64
	IdleDistance    *float64
	DeathInterval   *float64
	DeathDuration   *int
}

// ParseOverrides reads overrides from string values. Non-numeric and
// non-positive numbers are ignored silently; a malformed persistPosition is
// ignored and reported in the returned slice so the caller can log it.
func ParseOverrides(values map[string]string) (Overrides, []error) {
	var o Overrides
	var problems []error

	if raw, ok := values[KeyPersistPosition]; ok {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "true":
			o.PersistPosition = ptr(true)
		case "false":
			o.PersistPosition = ptr(false)
		default:
			problems = append(problems, fmt.Errorf("invalid persistPosition value %q", raw))
		}
	}

	if n, ok := positiveInt(values[KeyHeight]); ok {
		o.Height = ptr(n)
	}
	if f, ok := positiveFloat(values[KeySpeed]); ok {
		o.Speed = ptr(f)
	}
	if f, ok := positiveFloat(values[KeyIdleDistance]); ok {
		o.IdleDistance = ptr(f)
	}
	if f, ok := positiveFloat(values[KeyDeathInterval]); ok {
		o.DeathInterval = ptr(f)
	}
	if n, ok := positiveInt(values[KeyDeathDuration]); ok {
		o.DeathDuration = ptr(n)
	}

	return o, problems
}

// Config is the effective configuration of one companion instance.
type Config struct {
	Variant         Variant
	Behavior        Behavior
	PersistPosition bool
}

// Apply merges o over the variant defaults.
func (v Variant) Apply(o Overrides) Config {
	cfg := Config{
		Variant:         v,
		Behavior:        v.Behavior,
		PersistPosition: true,
	}
	if o.PersistPosition != nil {
		cfg.PersistPosition = *o.PersistPosition
	}
	if o.Height != nil {
		cfg.Behavior.DisplayHeight = float64(*o.Height)
	}
	if o.Speed != nil {
		cfg.Behavior.Speed = *o.Speed
	}
	if o.IdleDistance != nil {
		cfg.Behavior.IdleDistance = *o.IdleDistance
	}
	if o.DeathInterval != nil {
		cfg.Behavior.DeathIntervalSeconds = *o.DeathInterval
	}
	if o.DeathDuration != nil {
		cfg.Behavior.DeathDurationFrames = *o.DeathDuration
	}
	return cfg
}

// EnvSettings mirrors the override keys as environment variables.
type EnvSettings struct {
	Variant         string `env:"FOLLOWER_VARIANT"`
	PersistPosition string `env:"FOLLOWER_PERSIST_POSITION"`
	Height          string `env:"FOLLOWER_HEIGHT"`
	Speed           string `env:"FOLLOWER_SPEED"`
	IdleDistance    string `env:"FOLLOWER_IDLE_DISTANCE"`
	DeathInterval   string `env:"FOLLOWER_DEATH_INTERVAL"`
	DeathDuration   string `env:"FOLLOWER_DEATH_DURATION"`
}

// LoadEnv reads EnvSettings from the environment.
func LoadEnv() (EnvSettings, error) {
	var s EnvSettings
	if err := env.Parse(&s); err != nil {
		return EnvSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Values returns the non-empty settings keyed like ParseOverrides expects.
func (s EnvSettings) Values() map[string]string {
	out := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set(KeyVariant, s.Variant)
	set(KeyPersistPosition, s.PersistPosition)
	set(KeyHeight, s.Height)
	set(KeySpeed, s.Speed)
	set(KeyIdleDistance, s.IdleDistance)
	set(KeyDeathInterval, s.DeathInterval)
	set(KeyDeathDuration, s.DeathDuration)
	return out
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// positiveInt parses the leading integer of s ("80px" is 80).
func positiveInt(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// positiveFloat parses the leading decimal number of s ("1.5s" is 1.5).
func positiveFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

func ptr[T any](v T) *T {
	return &v
}
