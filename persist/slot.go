package persist

import (
	"encoding/json"
	"errors"
	"fmt"
)

// KeyPrefix namespaces companion records in the store.
const KeyPrefix = "follower-"

var ErrDisabled = errors.New("persist: slot disabled")

// Record is the persisted companion state.
type Record struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FrameCount int     `json:"frameCount"`
}

// partialRecord lets a stored record omit fields; omitted fields keep the
// caller's defaults.
type partialRecord struct {
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	FrameCount *int     `json:"frameCount"`
}

// StorageKey returns the store key for a variant storage key.
func StorageKey(variantStorageKey string) string {
	return KeyPrefix + variantStorageKey
}

// Slot is the durable record of one variant.
type Slot struct {
	store   Store
	key     string
	enabled bool
}

func NewSlot(store Store, variantStorageKey string, enabled bool) *Slot {
	return &Slot{
		store:   store,
		key:     StorageKey(variantStorageKey),
		enabled: enabled && store != nil,
	}
}

func (s *Slot) Key() string { return s.key }

func (s *Slot) Enabled() bool { return s != nil && s.enabled }

// Restore overlays the stored record onto rec. Missing or malformed data
// leaves rec untouched; the returned error is informational.
func (s *Slot) Restore(rec *Record) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	data, ok, err := s.store.Get(s.key)
	if err != nil {
		return fmt.Errorf("restore %s: %w", s.key, err)
	}
	if !ok || len(data) == 0 {
		return nil
	}

	var p partialRecord
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("restore %s: %w", s.key, err)
	}
	if p.X != nil {
		rec.X = *p.X
	}
	if p.Y != nil {
		rec.Y = *p.Y
	}
	if p.FrameCount != nil {
		rec.FrameCount = *p.FrameCount
	}
	return nil
}

// Persist writes rec under the slot key.
func (s *Slot) Persist(rec Record) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("persist %s: %w", s.key, err)
	}
	if err := s.store.Set(s.key, data); err != nil {
		return fmt.Errorf("persist %s: %w", s.key, err)
	}
	return nil
}
