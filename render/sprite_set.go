package render

import (
	"sort"

	"github.com/milk9111/follower/variant"
)

// fallbacks is the substitution order used when a requested animation did
// not load.
var fallbacks = map[string][]string{
	variant.AnimAttack: {variant.AnimRun, variant.AnimIdle},
	variant.AnimDead:   {variant.AnimIdle, variant.AnimRun},
	variant.AnimRun:    {variant.AnimIdle},
}

// preferred orders the last-resort pick so it is deterministic.
var preferred = []string{variant.AnimIdle, variant.AnimRun, variant.AnimAttack, variant.AnimDead}

// SpriteSet stores the sheets that loaded successfully, keyed by animation.
type SpriteSet struct {
	sheets map[string]*Sheet
}

func NewSpriteSet() *SpriteSet {
	return &SpriteSet{sheets: make(map[string]*Sheet)}
}

// Register adds a sheet to the set.
func (s *SpriteSet) Register(name string, sheet *Sheet) {
	if s == nil || name == "" || sheet == nil || sheet.Frames <= 0 {
		return
	}
	s.sheets[name] = sheet
}

// Get returns the sheet for name without substitution.
func (s *SpriteSet) Get(name string) (*Sheet, bool) {
	if s == nil {
		return nil, false
	}
	sheet, ok := s.sheets[name]
	return sheet, ok
}

func (s *SpriteSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

func (s *SpriteSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sheets)
}

// Names lists loaded animations: the well-known ones first, then the rest
// sorted.
func (s *SpriteSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.sheets))
	for _, name := range preferred {
		if _, ok := s.sheets[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range s.sheets {
		if !isPreferred(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Resolve returns the sheet to draw for requested, applying the fallback
// order. It fails only when the set is empty.
func (s *SpriteSet) Resolve(requested string) (string, *Sheet, bool) {
	if s.Len() == 0 {
		return "", nil, false
	}
	if sheet, ok := s.sheets[requested]; ok {
		return requested, sheet, true
	}
	for _, name := range fallbacks[requested] {
		if sheet, ok := s.sheets[name]; ok {
			return name, sheet, true
		}
	}
	name := s.Names()[0]
	return name, s.sheets[name], true
}

func isPreferred(name string) bool {
	for _, p := range preferred {
		if p == name {
			return true
		}
	}
	return false
}
