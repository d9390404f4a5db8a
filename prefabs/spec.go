package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the prefab holding the companion variant table.
const CatalogFile = "variants.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BehaviorSpec holds movement and animation tunables. Zero values mean
// "inherit" when merged over the catalog defaults.
type BehaviorSpec struct {
	Speed                float64 `yaml:"speed"`
	DisplayHeight        float64 `yaml:"display_height"`
	IdleDistance         float64 `yaml:"idle_distance"`
	DeathIntervalSeconds float64 `yaml:"death_interval_seconds"`
	DeathDurationFrames  int     `yaml:"death_duration_frames"`
}

type VariantSpec struct {
	Key         string            `yaml:"key"`
	DisplayName string            `yaml:"display_name"`
	StorageKey  string            `yaml:"storage_key"`
	BasePath    string            `yaml:"base_path"`
	Sprites     map[string]string `yaml:"sprites"`
	Behavior    BehaviorSpec      `yaml:"behavior"`
}

type CatalogSpec struct {
	Defaults BehaviorSpec  `yaml:"defaults"`
	Variants []VariantSpec `yaml:"variants"`
}

func LoadCatalogSpec() (CatalogSpec, error) {
	return LoadSpec[CatalogSpec](CatalogFile)
}

// ParseCatalogSpec decodes a catalog from raw YAML.
func ParseCatalogSpec(data []byte) (CatalogSpec, error) {
	var spec CatalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return CatalogSpec{}, fmt.Errorf("prefabs: unmarshal catalog: %w", err)
	}
	return spec, nil
}
