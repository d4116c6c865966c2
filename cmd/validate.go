package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/petsprite-cli/internal/hasher"
	"github.com/AnyUserName/petsprite-cli/internal/manifest"
	"github.com/AnyUserName/petsprite-cli/internal/sprite"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [sprite_dir]",
	Short: "Check a generated sprite directory against the expected set",
	Long: `Re-decodes every expected sprite PNG and checks it is square at the
stage's configured side. If a manifest is present it is cross-checked
too (entries, file sizes, content hashes).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	dir := outDir
	if len(args) == 1 {
		dir = args[0]
	}

	errs := validateSprites(dir)
	errs = append(errs, validateManifest(dir)...)

	if len(errs) == 0 {
		fmt.Println("  ✓ Sprite set is valid")
		fmt.Printf("  ✓ %d sprites present with expected dimensions\n",
			len(sprite.Stages())*len(sprite.Moods()))
		return nil
	}

	fmt.Printf("  ✗ Sprite set has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

// validateSprites decodes each expected file and checks its shape.
func validateSprites(dir string) []string {
	var errs []string

	for _, stage := range sprite.Stages() {
		profile, err := sprite.StageFor(stage)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		for _, mood := range sprite.Moods() {
			name := sprite.FileName(stage, mood)
			path := filepath.Join(dir, name)

			img, err := imaging.Open(path)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", name, err))
				continue
			}

			bounds := img.Bounds()
			if bounds.Dx() != bounds.Dy() {
				errs = append(errs, fmt.Sprintf("%s: not square: %dx%d",
					name, bounds.Dx(), bounds.Dy()))
			}
			if bounds.Dx() != profile.Size {
				errs = append(errs, fmt.Sprintf("%s: side %d, want %d",
					name, bounds.Dx(), profile.Size))
			}
		}
	}

	return errs
}

// validateManifest cross-checks the manifest against the files on
// disk. A missing manifest is not an error; generate can be run with
// --manifest=false.
func validateManifest(dir string) []string {
	manifestPath := filepath.Join(dir, manifest.Filename)
	data, err := os.ReadFile(manifestPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return []string{fmt.Sprintf("read manifest: %v", err)}
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return []string{fmt.Sprintf("parse manifest: %v", err)}
	}

	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	want := len(sprite.Stages()) * len(sprite.Moods())
	if len(m.Sprites) != want {
		errs = append(errs, fmt.Sprintf("manifest has %d sprites, want %d", len(m.Sprites), want))
	}

	for key, entry := range m.Sprites {
		if entry.Path == "" {
			errs = append(errs, fmt.Sprintf("sprite %q: missing path", key))
			continue
		}
		path := filepath.Join(dir, entry.Path)
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("sprite %q: file not found: %s", key, entry.Path))
			continue
		}
		if info.Size() != entry.Size {
			errs = append(errs, fmt.Sprintf("sprite %q: size mismatch: manifest=%d, disk=%d",
				key, entry.Size, info.Size()))
		}
		got, err := hashFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("sprite %q: hash: %v", key, err))
			continue
		}
		if got != entry.Hash {
			errs = append(errs, fmt.Sprintf("sprite %q: hash mismatch: manifest=%s, disk=%s",
				key, entry.Hash, got))
		}
	}

	if m.Stats.TotalSprites != len(m.Sprites) {
		errs = append(errs, fmt.Sprintf("stats.total_sprites mismatch: %d != %d",
			m.Stats.TotalSprites, len(m.Sprites)))
	}

	return errs
}

// hashFile stream-hashes one sprite file to the manifest's 16-hex form.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hasher.ContentHashReader(f, 16)
}
