package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FactionSet names one faction and the ordered catalogue documents that
// describe it: a primary catalogue first, then any library catalogues.
// Order matters; merge dedup is first-seen-wins.
type FactionSet struct {
	Name      string   `yaml:"name"`
	Documents []string `yaml:"documents"`
}

// Manifest is the driver's input: which document sets to compile, under
// which clean faction names.
type Manifest struct {
	Factions []FactionSet `yaml:"factions"`
}

// LoadManifest reads and validates a faction manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	for i, set := range m.Factions {
		if set.Name == "" {
			return nil, fmt.Errorf("manifest faction %d has no name", i)
		}
		if len(set.Documents) == 0 {
			return nil, fmt.Errorf("manifest faction %q lists no documents", set.Name)
		}
	}
	return &m, nil
}
