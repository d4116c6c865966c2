// Package batch drives the full sprite set: it renders every stage ×
// mood combination in table order, persists each PNG, and builds the
// manifest describing what it wrote.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/petsprite-cli/internal/encoder"
	"github.com/AnyUserName/petsprite-cli/internal/hasher"
	"github.com/AnyUserName/petsprite-cli/internal/manifest"
	"github.com/AnyUserName/petsprite-cli/internal/sprite"
)

// Config holds all parameters for one generate run.
type Config struct {
	OutputDir string
	Verbose   bool
}

// Written describes one sprite file produced by Run, in write order.
type Written struct {
	Stage sprite.Stage
	Mood  sprite.Mood
	Path  string // absolute path on disk
	Size  int64
}

// Batch renders and persists the full sprite set.
type Batch struct {
	cfg Config
}

// New creates a configured batch.
func New(cfg Config) *Batch {
	return &Batch{cfg: cfg}
}

// Run renders all combinations strictly sequentially, writes one PNG
// per combination under the output directory (created if missing), and
// returns the manifest plus the ordered list of written files. The
// first failure aborts the run; there is no retry and no
// partial-success accounting.
func (b *Batch) Run() (*manifest.Manifest, []Written, error) {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}

	m := manifest.New()
	var written []Written

	for _, stage := range sprite.Stages() {
		for _, mood := range sprite.Moods() {
			if b.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[petsprite] rendering: %s/%s\n", stage, mood)
			}

			img, err := sprite.Render(stage, mood)
			if err != nil {
				return nil, nil, err
			}

			data, err := encoder.EncodePNG(img)
			if err != nil {
				return nil, nil, fmt.Errorf("encode %s/%s: %w", stage, mood, err)
			}

			name := sprite.FileName(stage, mood)
			path := filepath.Join(b.cfg.OutputDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, nil, fmt.Errorf("write %s: %w", name, err)
			}

			key := strings.TrimSuffix(name, ".png")
			m.Sprites[key] = manifest.Sprite{
				Stage: string(stage),
				Mood:  string(mood),
				Side:  img.Bounds().Dx(),
				Size:  int64(len(data)),
				Hash:  hasher.ContentHash(data, 16),
				Path:  name,
			}
			written = append(written, Written{
				Stage: stage,
				Mood:  mood,
				Path:  path,
				Size:  int64(len(data)),
			})
		}
	}

	m.ComputeStats()
	return m, written, nil
}
