package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aquarium/internal/tank"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List all species the tank knows",
	Long: `Shows every registered species. Seedable species may appear in the
population section of the config; the others only arise during a run.`,
	Run: runSpecies,
}

func runSpecies(_ *cobra.Command, _ []string) {
	species := tank.Species()

	if len(species) == 0 {
		fmt.Println("No species registered.")
		return
	}

	fmt.Println("Known species:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range species {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "Name", "Seedable", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "----", "--------", "-----")

	for _, s := range species {
		seed := "no"
		if s.Seedable {
			seed = "yes"
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, s.Name, seed, s.Title)
	}

	fmt.Println()
	fmt.Println("Set counts under 'population:' in aquarium.yaml to seed a tank.")
}
