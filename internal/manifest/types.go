package manifest

// Manifest records every sprite written by one generate run.
type Manifest struct {
	Version     int               `json:"version"`
	GeneratedAt string            `json:"generated_at"`
	BasePath    string            `json:"base_path"`
	Sprites     map[string]Sprite `json:"sprites"`
	Stats       Stats             `json:"stats"`
}

// Sprite describes one written sprite file.
type Sprite struct {
	Stage string `json:"stage"`
	Mood  string `json:"mood"`
	Side  int    `json:"side"` // square dimension in pixels
	Size  int64  `json:"size"` // bytes on disk
	Hash  string `json:"hash"` // first 16 hex chars of xxhash64
	Path  string `json:"path"` // relative to base_path
}

// Stats aggregates one run.
type Stats struct {
	TotalSprites int   `json:"total_sprites"`
	TotalBytes   int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// Filename is the manifest's fixed name inside the sprite directory.
const Filename = "sprites.manifest.json"
