// Package data loads yaml spawn tables for the demo host. A scene lists
// the resources to seed and the entities to spawn at startup; the host
// translates entries into Spawn commands inside a startup system, so this
// package never touches live storage.
package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry describes one entity to spawn. Optional fields map to optional
// components: a nil field means the entity does not get that component.
type SpawnEntry struct {
	Name *string `yaml:"name"`
	ID   *int    `yaml:"id"`
}

// ResourceDefs lists the singleton resources a scene seeds before startup.
type ResourceDefs struct {
	Timer *int `yaml:"timer"`
}

type sceneFile struct {
	Resources ResourceDefs `yaml:"resources"`
	Entities  []SpawnEntry `yaml:"entities"`
}

// Scene holds one parsed spawn table.
type Scene struct {
	Resources ResourceDefs
	Entities  []SpawnEntry
}

// LoadScene loads a spawn table from a yaml file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var f sceneFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &Scene{Resources: f.Resources, Entities: f.Entities}, nil
}

// Count returns the number of spawn entries.
func (s *Scene) Count() int {
	return len(s.Entities)
}
