// slingshot is a terminal slingshot physics game: pull the bird back with the
// mouse or keyboard and knock over block towers to defeat every enemy.
//
// Usage:
//
//	slingshot play           - Play the campaign
//	slingshot levels         - List the campaign levels
//	slingshot scores         - Show recorded runs
//	slingshot serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.slingshot/scores.db)
//	--debug         - Write debug logs to ~/.slingshot/debug.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
)

const gameID = "slingshot"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slingshot",
	Short: "Slingshot - knock down towers in your terminal",
	Long: `Slingshot is a terminal physics game. Drag the bird away from the
slingshot and let go to launch it into towers of wood, stone and ice.
Clear every enemy on a level to move on to the next one.

Available commands:
  play     - Play the campaign
  levels   - List the campaign levels
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  slingshot play
  slingshot play --difficulty easy --level 2
  slingshot levels --levels ./my-levels
  slingshot scores --plain
  slingshot serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slingshot/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.slingshot/debug.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging routes the global logger away from the terminal the game
// draws on. Debug builds log to a file, everything else stays on stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	if !flagDebug {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".slingshot")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open debug log: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	return nil
}
