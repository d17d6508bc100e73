// aquarium is a terminal aquarium: fish, cephalopods, seaweed and divers
// drawn with emoji over a water gradient.
//
// Usage:
//
//	aquarium run               - Watch the aquarium in this terminal
//	aquarium serve             - Start SSH server for remote viewers
//	aquarium species           - List the species the tank can seed
//	aquarium census            - List recorded census runs
//	aquarium census show <id>  - Per-species statistics of a run
//	aquarium census export <id> - Dump a run's samples as CSV
//	aquarium census rm <id>    - Delete a run
//	aquarium census browse     - Browse runs interactively
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for a reproducible tank
//	--config <path>  - Set aquarium config YAML
//	--db <path>      - Set census database path (default: ~/.aquarium/census.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aquarium",
	Short: "TUI Aquarium - An emoji fish tank in your terminal",
	Long: `TUI Aquarium simulates a small underwater world in the terminal.
Fish swim and blow bubbles, octopuses hunt and ink, seaweed grows,
garden eels burrow and a diver drifts around looking at things.

Available commands:
  run      - Watch the aquarium here
  serve    - Start SSH server for remote viewers
  species  - List seedable species
  census   - Inspect recorded population samples

Examples:
  aquarium run
  aquarium run --seed 42 --fps 10
  aquarium serve --ssh :2222
  aquarium census show local-1712345678`,
	RunE: runAquarium,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom aquarium config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aquarium/census.db", "Path to census database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(censusCmd)
}
