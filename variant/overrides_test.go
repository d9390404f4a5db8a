package variant

import (
	"testing"
)

func TestParseOverridesNumbers(t *testing.T) {
	cases := []struct {
		name  string
		in    map[string]string
		check func(t *testing.T, o Overrides)
	}{
		{"height_int", map[string]string{KeyHeight: "96"}, func(t *testing.T, o Overrides) {
			if o.Height == nil || *o.Height != 96 {
				t.Fatalf("height = %v", o.Height)
			}
		}},
		{"height_prefix", map[string]string{KeyHeight: "64px"}, func(t *testing.T, o Overrides) {
			if o.Height == nil || *o.Height != 64 {
				t.Fatalf("height = %v", o.Height)
			}
		}},
		{"height_truncates", map[string]string{KeyHeight: "72.9"}, func(t *testing.T, o Overrides) {
			if o.Height == nil || *o.Height != 72 {
				t.Fatalf("height = %v", o.Height)
			}
		}},
		{"speed_float", map[string]string{KeySpeed: "4.25"}, func(t *testing.T, o Overrides) {
			if o.Speed == nil || *o.Speed != 4.25 {
				t.Fatalf("speed = %v", o.Speed)
			}
		}},
		{"interval_exponent", map[string]string{KeyDeathInterval: "1e1"}, func(t *testing.T, o Overrides) {
			if o.DeathInterval == nil || *o.DeathInterval != 10 {
				t.Fatalf("interval = %v", o.DeathInterval)
			}
		}},
		{"non_numeric_ignored", map[string]string{KeySpeed: "fast", KeyHeight: "tall", KeyIdleDistance: "far"}, func(t *testing.T, o Overrides) {
			if o.Speed != nil || o.Height != nil || o.IdleDistance != nil {
				t.Fatalf("expected nothing set, got %+v", o)
			}
		}},
		{"non_positive_ignored", map[string]string{KeySpeed: "0", KeyHeight: "-5", KeyDeathDuration: "0", KeyDeathInterval: "-1.5"}, func(t *testing.T, o Overrides) {
			if o.Speed != nil || o.Height != nil || o.DeathDuration != nil || o.DeathInterval != nil {
				t.Fatalf("expected nothing set, got %+v", o)
			}
		}},
		{"empty_ignored", map[string]string{KeySpeed: ""}, func(t *testing.T, o Overrides) {
			if o.Speed != nil {
				t.Fatalf("expected nil speed")
			}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, _ := ParseOverrides(c.in)
			c.check(t, o)
		})
	}
}

func TestParseOverridesPersistPosition(t *testing.T) {
	cases := []struct {
		name      string
		in        map[string]string
		want      *bool
		wantError bool
	}{
		{"absent", map[string]string{}, nil, false},
		{"empty_means_true", map[string]string{KeyPersistPosition: ""}, ptr(true), false},
		{"false", map[string]string{KeyPersistPosition: "FALSE"}, ptr(false), false},
		{"true", map[string]string{KeyPersistPosition: "True"}, ptr(true), false},
		{"garbage", map[string]string{KeyPersistPosition: "maybe"}, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, problems := ParseOverrides(c.in)
			if (len(problems) > 0) != c.wantError {
				t.Fatalf("problems = %v", problems)
			}
			switch {
			case c.want == nil && o.PersistPosition != nil:
				t.Fatalf("expected nil, got %v", *o.PersistPosition)
			case c.want != nil && (o.PersistPosition == nil || *o.PersistPosition != *c.want):
				t.Fatalf("expected %v, got %v", *c.want, o.PersistPosition)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	v := Variant{Key: "shinobi", Behavior: DefaultBehavior}

	cfg := v.Apply(Overrides{})
	if !cfg.PersistPosition {
		t.Fatalf("persistence should default to enabled")
	}
	if cfg.Behavior != DefaultBehavior {
		t.Fatalf("behavior changed without overrides: %+v", cfg.Behavior)
	}

	o, _ := ParseOverrides(map[string]string{
		KeyPersistPosition: "false",
		KeyHeight:          "100",
		KeySpeed:           "3",
		KeyIdleDistance:    "20",
		KeyDeathInterval:   "1",
		KeyDeathDuration:   "8",
	})
	cfg = v.Apply(o)
	want := Behavior{Speed: 3, DisplayHeight: 100, IdleDistance: 20, DeathIntervalSeconds: 1, DeathDurationFrames: 8}
	if cfg.Behavior != want {
		t.Fatalf("behavior = %+v, want %+v", cfg.Behavior, want)
	}
	if cfg.PersistPosition {
		t.Fatalf("persistence should be disabled")
	}
	if v.Behavior != DefaultBehavior {
		t.Fatalf("Apply mutated the variant")
	}
}

func TestEnvSettingsValues(t *testing.T) {
	t.Setenv("FOLLOWER_VARIANT", "samurai")
	t.Setenv("FOLLOWER_SPEED", "7")
	s, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	values := s.Values()
	if values[KeyVariant] != "samurai" || values[KeySpeed] != "7" {
		t.Fatalf("values = %v", values)
	}
	if _, ok := values[KeyHeight]; ok {
		t.Fatalf("unset env should not produce a key")
	}
}
