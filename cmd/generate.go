package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/petsprite-cli/internal/batch"
	"github.com/AnyUserName/petsprite-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var generateManifest bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render all nine stage × mood sprites and write them to disk",
	Long: `Renders the full 3 × 3 stage × mood product in table order and
writes one transparent RGBA PNG per combination, named
pet-<stage>-<mood>.png, plus a content-hash manifest.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&generateManifest, "manifest", true, "write sprites.manifest.json next to the sprites")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	start := time.Now()

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	logVerbose("output: %s", absOut)

	b := batch.New(batch.Config{
		OutputDir: absOut,
		Verbose:   verbose,
	})

	m, written, err := b.Run()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for _, w := range written {
		fmt.Printf("Wrote %s\n", w.Path)
	}

	if generateManifest {
		manifestPath := filepath.Join(absOut, manifest.Filename)
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logVerbose("manifest: %s", manifestPath)
	}

	elapsed := time.Since(start)
	fmt.Println()
	fmt.Printf("  Sprites: %d\n", m.Stats.TotalSprites)
	fmt.Printf("  Bytes:   %s\n", formatBytes(m.Stats.TotalBytes))
	fmt.Printf("  Time:    %s\n", elapsed.Round(time.Millisecond))

	return nil
}
