package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/follower/prefabs"
)

var (
	ErrEmptyCatalog  = errors.New("variant: catalog has no variants")
	ErrMissingKey    = errors.New("variant: catalog entry without key")
	ErrNoSprites     = errors.New("variant: catalog entry without sprites")
	ErrDuplicateKey  = errors.New("variant: duplicate catalog key")
	ErrMissingSource = errors.New("variant: catalog entry without base path")
)

// UnknownVariantError is returned by Resolve for identifiers missing from the
// catalog. It lists the valid keys for diagnostics.
type UnknownVariantError struct {
	Key       string
	Available []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q. Available variants: %s", e.Key, strings.Join(e.Available, ", "))
}

// Catalog is the ordered table of companion variants.
type Catalog struct {
	keys     []string
	variants map[string]Variant
}

// NewCatalog builds a catalog from its prefab spec, merging each entry's
// behavior over the catalog defaults and DefaultBehavior.
func NewCatalog(spec prefabs.CatalogSpec) (*Catalog, error) {
	if len(spec.Variants) == 0 {
		return nil, ErrEmptyCatalog
	}

	defaults := behaviorFromSpec(spec.Defaults).merge(DefaultBehavior)
	c := &Catalog{
		keys:     make([]string, 0, len(spec.Variants)),
		variants: make(map[string]Variant, len(spec.Variants)),
	}

	for i, vs := range spec.Variants {
		key := Normalize(vs.Key)
		if strings.TrimSpace(vs.Key) == "" || key == "" {
			return nil, fmt.Errorf("%w (index %d)", ErrMissingKey, i)
		}
		if _, exists := c.variants[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		if len(vs.Sprites) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSprites, key)
		}
		if strings.TrimSpace(vs.BasePath) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, key)
		}

		v := Variant{
			Key:         key,
			DisplayName: vs.DisplayName,
			StorageKey:  vs.StorageKey,
			BasePath:    vs.BasePath,
			Sprites:     make(map[string]string, len(vs.Sprites)),
			Behavior:    behaviorFromSpec(vs.Behavior).merge(defaults),
		}
		if v.DisplayName == "" {
			v.DisplayName = key
		}
		if v.StorageKey == "" {
			v.StorageKey = key
		}
		for name, file := range vs.Sprites {
			v.Sprites[strings.ToLower(strings.TrimSpace(name))] = file
		}

		c.keys = append(c.keys, key)
		c.variants[key] = v
	}

	return c, nil
}

// LoadCatalog reads the catalog prefab (disk copy first, embedded second).
func LoadCatalog() (*Catalog, error) {
	spec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec)
}

// Resolve normalizes id and returns the matching variant.
func (c *Catalog) Resolve(id string) (Variant, error) {
	key := Normalize(id)
	v, ok := c.variants[key]
	if !ok {
		return Variant{}, &UnknownVariantError{Key: key, Available: c.Keys()}
	}
	return v.clone(), nil
}

// Keys returns the variant keys in catalog order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Variants returns every variant in catalog order.
func (c *Catalog) Variants() []Variant {
	out := make([]Variant, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.variants[key].clone())
	}
	return out
}

func (v Variant) clone() Variant {
	sprites := make(map[string]string, len(v.Sprites))
	for name, file := range v.Sprites {
		sprites[name] = file
	}
	v.Sprites = sprites
	return v
}

func behaviorFromSpec(s prefabs.BehaviorSpec) Behavior {
	return Behavior{
		Speed:                s.Speed,
		DisplayHeight:        s.DisplayHeight,
		IdleDistance:         s.IdleDistance,
		DeathIntervalSeconds: s.DeathIntervalSeconds,
		DeathDurationFrames:  s.DeathDurationFrames,
	}
}
