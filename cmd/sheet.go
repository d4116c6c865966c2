package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/AnyUserName/petsprite-cli/internal/encoder"
	"github.com/AnyUserName/petsprite-cli/internal/sprite"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"
)

const sheetPadding = 8

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a 3×3 contact sheet of every sprite for review",
	Long: `Renders all nine sprites and composes them into one PNG, rows by
stage and columns by mood. Smaller stages are upscaled to the largest
cell with nearest-neighbor so the pixel art stays crisp.`,
	Args: cobra.NoArgs,
	RunE: runSheet,
}

func init() {
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(_ *cobra.Command, _ []string) error {
	stages := sprite.Stages()
	moods := sprite.Moods()

	// Cell side is the largest stage canvas.
	cell := 0
	for _, stage := range stages {
		profile, err := sprite.StageFor(stage)
		if err != nil {
			return err
		}
		if profile.Size > cell {
			cell = profile.Size
		}
	}

	side := func(n int) int { return sheetPadding + n*(cell+sheetPadding) }
	sheet := image.NewNRGBA(image.Rect(0, 0, side(len(moods)), side(len(stages))))

	for row, stage := range stages {
		for col, mood := range moods {
			img, err := sprite.Render(stage, mood)
			if err != nil {
				return err
			}
			x := sheetPadding + col*(cell+sheetPadding)
			y := sheetPadding + row*(cell+sheetPadding)
			dst := image.Rect(x, y, x+cell, y+cell)
			xdraw.NearestNeighbor.Scale(sheet, dst, img, img.Bounds(), xdraw.Over, nil)
			logVerbose("placed %s/%s at cell (%d,%d)", stage, mood, row, col)
		}
	}

	data, err := encoder.EncodePNG(sheet)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, "sprites-sheet.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
