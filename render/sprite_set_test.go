package render

import (
	"testing"
)

func setWith(names ...string) *SpriteSet {
	s := NewSpriteSet()
	for _, name := range names {
		s.Register(name, &Sheet{URL: name + ".png", Frames: 4, FrameWidth: 32, FrameHeight: 32})
	}
	return s
}

func TestSpriteSetResolveFallbacks(t *testing.T) {
	cases := []struct {
		name      string
		loaded    []string
		requested string
		want      string
	}{
		{"direct_hit", []string{"idle", "run", "attack", "dead"}, "attack", "attack"},
		{"attack_to_run", []string{"idle", "run"}, "attack", "run"},
		{"attack_to_idle", []string{"idle", "dead"}, "attack", "idle"},
		{"dead_to_idle", []string{"idle", "run"}, "dead", "idle"},
		{"dead_to_run", []string{"run", "attack"}, "dead", "run"},
		{"run_to_idle", []string{"idle", "attack"}, "run", "idle"},
		{"run_to_any", []string{"attack", "dead"}, "run", "attack"},
		{"idle_to_any", []string{"dead", "run"}, "idle", "run"},
		{"dead_only_attack", []string{"attack"}, "dead", "attack"},
		{"unknown_name", []string{"dead", "jump"}, "wave", "dead"},
		{"extra_names_sorted", []string{"zzz", "jump"}, "idle", "jump"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := setWith(c.loaded...)
			got, sheet, ok := s.Resolve(c.requested)
			if !ok {
				t.Fatalf("Resolve failed with %d sheets", s.Len())
			}
			if got != c.want {
				t.Fatalf("Resolve(%q) = %q, want %q", c.requested, got, c.want)
			}
			if sheet.URL != c.want+".png" {
				t.Fatalf("sheet mismatch: %s", sheet.URL)
			}
		})
	}
}

func TestSpriteSetEmpty(t *testing.T) {
	s := NewSpriteSet()
	if _, _, ok := s.Resolve("idle"); ok {
		t.Fatalf("empty set should not resolve")
	}
	var nilSet *SpriteSet
	if nilSet.Len() != 0 || nilSet.Has("idle") {
		t.Fatalf("nil set should behave as empty")
	}
}

func TestSpriteSetRegisterIgnoresInvalid(t *testing.T) {
	s := NewSpriteSet()
	s.Register("", &Sheet{Frames: 1})
	s.Register("idle", nil)
	s.Register("run", &Sheet{Frames: 0})
	if s.Len() != 0 {
		t.Fatalf("expected no sheets, got %v", s.Names())
	}
}

func TestFrameContains(t *testing.T) {
	f := Frame{Sheet: &Sheet{Frames: 1}, Width: 40, Height: 80, Left: 10, Top: 20}
	if !f.Contains(10, 20) || !f.Contains(50, 100) || !f.Contains(30, 60) {
		t.Fatalf("points on the frame should hit")
	}
	if f.Contains(9, 60) || f.Contains(30, 101) {
		t.Fatalf("points off the frame should miss")
	}
	if (Frame{}).Contains(0, 0) {
		t.Fatalf("invalid frame should never hit")
	}
}
