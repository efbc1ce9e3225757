package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
	"github.com/vovakirdan/tui-slingshot/internal/platform/tui"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/settings"
	"github.com/vovakirdan/tui-slingshot/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing the slingshot campaign.

Controls:
  Mouse drag     - Pull the bird back, release to launch
  Arrows/WASD    - Pull the bird with the keyboard
  Space          - Grab the bird / launch it
  Enter/N        - Next level after a clear
  R              - Restart the level
  M              - Toggle sound
  O              - Settings
  Esc/B          - Menu
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More birds and a longer pull
  normal - Default tuning
  hard   - Fewer birds and tougher enemies

Examples:
  slingshot play
  slingshot play --difficulty hard
  slingshot play --level 3
  slingshot play --levels ./my-levels
  slingshot play --config ./my-slingshot.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files replacing the built-in campaign")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	slingshot.SetConfigPath(flagConfig)
	slingshot.SetDifficultyPreset(flagDifficulty)
	slingshot.SetStartLevel(flagLevel)

	if flagLevelsDir != "" {
		tpls, err := loadLevelsDir(flagLevelsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		slingshot.SetLevels(tpls)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, runs will not be saved", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, settings.Open(), cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadLevelsDir loads every level file under dir, validated against the
// world size of the active config.
func loadLevelsDir(dir string) ([]levels.Template, error) {
	gameCfg, err := config.LoadSlingshot(flagConfig)
	if err != nil {
		return nil, err
	}
	tpls, err := levels.NewLoader(dir, gameCfg.World.Width, gameCfg.World.Height).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(tpls) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	return tpls, nil
}
