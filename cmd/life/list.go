package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var flagListDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available patterns",
	Long: `Shows the bundled patterns and the .lif files found under the pattern
directory (from the config, or --dir).`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListDir, "dir", "", "Pattern directory to scan")
}

func runList(cmd *cobra.Command, _ []string) {
	dir := flagListDir
	if !cmd.Flags().Changed("dir") {
		settings, err := loadSettings(cmd, nil, nil)
		if err != nil {
			fail("%v", err)
		}
		dir = settings.PatternDir
	}

	items := tui.PatternItems(dir)
	if len(items) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxRefLen := 3 // "Ref" header
	for _, it := range items {
		maxRefLen = max(maxRefLen, len(it.Ref))
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxRefLen, "Ref", "Title", "Source")
	fmt.Printf("  %-*s  %-24s  %s\n", maxRefLen, "---", "-----", "------")

	for _, it := range items {
		fmt.Printf("  %-*s  %-24s  %s\n", maxRefLen, it.Ref, it.Title, it.Source)
	}

	fmt.Println()
	fmt.Println("Run 'life run <ref>' to run a pattern.")
}
