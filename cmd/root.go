package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	outDir  string
)

var rootCmd = &cobra.Command{
	Use:   "petsprite",
	Short: "Build-time generator for the pet creature sprite set",
	Long: `petsprite — procedurally draws the nine stage × mood pet sprites
(baby/adult/legendary × happy/neutral/sad) as transparent PNGs.

Re-run it whenever the palette or styling changes. Rendering is
deterministic: unchanged tables produce pixel-identical sprites.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runGenerate, // bare invocation generates the full set
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "public/assets/sprites", "sprite directory")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"petsprite %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[petsprite] "+format+"\n", args...)
	}
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
