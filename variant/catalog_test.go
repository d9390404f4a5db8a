package variant

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/follower/prefabs"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"shinobi", "shinobi"},
		{"Fire Wizard", "fire-wizard"},
		{"  KNIGHT_1 ", "knight-1"},
		{"--lightning..mage--", "lightning-mage"},
		{"", DefaultKey},
		{"   ", DefaultKey},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := Normalize(c.in); got != c.want {
				t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEmbeddedCatalogVariantsAreUsable(t *testing.T) {
	spec, err := prefabs.ParseCatalogSpec(mustEmbedded(t))
	if err != nil {
		t.Fatalf("parse embedded catalog: %v", err)
	}
	c, err := NewCatalog(spec)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if len(c.Keys()) != 9 {
		t.Fatalf("expected 9 variants, got %d", len(c.Keys()))
	}
	for _, key := range c.Keys() {
		v, err := c.Resolve(key)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", key, err)
		}
		if len(v.Sprites) == 0 {
			t.Fatalf("%s: empty sprite mapping", key)
		}
		if !v.Behavior.Valid() {
			t.Fatalf("%s: non-positive tunables %+v", key, v.Behavior)
		}
		if v.StorageKey == "" || v.BasePath == "" {
			t.Fatalf("%s: missing storage key or base path", key)
		}
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	c := testCatalog(t)
	v, err := c.Resolve("Fire_Wizard")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Key != "fire-wizard" || v.DisplayName != "Fire Wizard" {
		t.Fatalf("unexpected variant %+v", v)
	}
}

func TestResolveUnknownListsAvailable(t *testing.T) {
	c := testCatalog(t)
	_, err := c.Resolve("nonexistent")

	var unknown *UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownVariantError, got %v", err)
	}
	if unknown.Key != "nonexistent" {
		t.Fatalf("key = %q", unknown.Key)
	}
	if strings.Join(unknown.Available, ",") != "shinobi,fire-wizard" {
		t.Fatalf("available = %v", unknown.Available)
	}
	if !strings.Contains(err.Error(), "shinobi, fire-wizard") {
		t.Fatalf("diagnostic should list keys: %s", err.Error())
	}
}

func TestBehaviorMergeOrder(t *testing.T) {
	c := testCatalog(t)

	shinobi, _ := c.Resolve("shinobi")
	if shinobi.Speed != 12 {
		t.Fatalf("catalog default speed should apply, got %v", shinobi.Speed)
	}
	if shinobi.DisplayHeight != DefaultBehavior.DisplayHeight {
		t.Fatalf("built-in default height should apply, got %v", shinobi.DisplayHeight)
	}

	wizard, _ := c.Resolve("fire-wizard")
	if wizard.DisplayHeight != 120 {
		t.Fatalf("variant behavior should win, got %v", wizard.DisplayHeight)
	}
	if wizard.StorageKey != "fire-wizard" {
		t.Fatalf("storage key should default to key, got %q", wizard.StorageKey)
	}
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		spec prefabs.CatalogSpec
		want error
	}{
		{"empty", prefabs.CatalogSpec{}, ErrEmptyCatalog},
		{"no_key", prefabs.CatalogSpec{Variants: []prefabs.VariantSpec{{BasePath: "a", Sprites: map[string]string{"idle": "a.png"}}}}, ErrMissingKey},
		{"no_sprites", prefabs.CatalogSpec{Variants: []prefabs.VariantSpec{{Key: "a", BasePath: "a"}}}, ErrNoSprites},
		{"no_base_path", prefabs.CatalogSpec{Variants: []prefabs.VariantSpec{{Key: "a", Sprites: map[string]string{"idle": "a.png"}}}}, ErrMissingSource},
		{"duplicate", prefabs.CatalogSpec{Variants: []prefabs.VariantSpec{
			{Key: "a", BasePath: "a", Sprites: map[string]string{"idle": "a.png"}},
			{Key: "A", BasePath: "b", Sprites: map[string]string{"idle": "b.png"}},
		}}, ErrDuplicateKey},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewCatalog(c.spec); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestSpriteSourcesJoinBasePath(t *testing.T) {
	v := Variant{BasePath: "./Assets/Fire Wizard/", Sprites: map[string]string{"idle": "Idle.png"}}
	if got := v.SpriteSources()["idle"]; got != "Assets/Fire Wizard/Idle.png" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	c := testCatalog(t)
	a, _ := c.Resolve("shinobi")
	a.Sprites["idle"] = "changed.png"
	b, _ := c.Resolve("shinobi")
	if b.Sprites["idle"] != "Idle.png" {
		t.Fatalf("catalog mutated through resolved variant")
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(prefabs.CatalogSpec{
		Defaults: prefabs.BehaviorSpec{Speed: 12},
		Variants: []prefabs.VariantSpec{
			{Key: "shinobi", DisplayName: "Shinobi", BasePath: "./Assets/Shinobi", Sprites: map[string]string{"idle": "Idle.png", "run": "Run.png"}},
			{Key: "fire-wizard", DisplayName: "Fire Wizard", BasePath: "./Assets/Fire Wizard", Sprites: map[string]string{"idle": "Idle.png"}, Behavior: prefabs.BehaviorSpec{DisplayHeight: 120}},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func mustEmbedded(t *testing.T) []byte {
	t.Helper()
	data, err := prefabs.PrefabsFS.ReadFile(prefabs.CatalogFile)
	if err != nil {
		t.Fatalf("read embedded catalog: %v", err)
	}
	return data
}
