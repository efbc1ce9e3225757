package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows every level of the campaign in play order.

With --levels, the files in that directory are loaded and validated
instead of the built-in campaign.

Examples:
  slingshot levels
  slingshot levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files to list instead of the built-in campaign")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML used for validation")
}

func runLevels(_ *cobra.Command, _ []string) {
	tpls := levels.Builtin()
	if flagLevelsDir != "" {
		var err error
		tpls, err = loadLevelsDir(flagLevelsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
	}

	if len(tpls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range tpls {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-6s  %-7s  %s\n", "#", maxIDLen, "ID", "Blocks", "Enemies", "Name")
	fmt.Printf("  %-3s  %-*s  %-6s  %-7s  %s\n", "-", maxIDLen, "--", "------", "-------", "----")
	for i, t := range tpls {
		fmt.Printf("  %-3d  %-*s  %-6d  %-7d  %s\n", i+1, maxIDLen, t.ID, len(t.Blocks), len(t.Enemies), t.Name)
	}

	fmt.Println()
	fmt.Println("Run 'slingshot play --level <#>' to start at a level.")
}
