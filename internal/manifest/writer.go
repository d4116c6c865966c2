package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New() *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		BasePath:    "./",
		Sprites:     make(map[string]Sprite),
	}
}

// ComputeStats recalculates aggregate statistics from the sprites.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalSprites = len(m.Sprites)
	for _, sp := range m.Sprites {
		s.TotalBytes += sp.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
