package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-aquarium/internal/platform/tui"
	"github.com/vovakirdan/tui-aquarium/internal/storage"
)

var flagExportOut string

var censusCmd = &cobra.Command{
	Use:   "census",
	Short: "List recorded census runs",
	Long: `Every aquarium run samples its population into the census database.
Without a subcommand, lists the recorded runs, newest first.

Examples:
  aquarium census
  aquarium census show local-1712345678
  aquarium census export local-1712345678 --out run.csv
  aquarium census rm local-1712345678
  aquarium census browse`,
	Args: cobra.NoArgs,
	RunE: runCensusList,
}

var censusShowCmd = &cobra.Command{
	Use:   "show <run>",
	Short: "Show per-species statistics of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runCensusShow,
}

var censusExportCmd = &cobra.Command{
	Use:   "export <run>",
	Short: "Export a run's samples as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCensusExport,
}

var censusRmCmd = &cobra.Command{
	Use:   "rm <run>",
	Short: "Delete a run and its samples",
	Args:  cobra.ExactArgs(1),
	RunE:  runCensusRm,
}

var censusBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse census runs interactively",
	Args:  cobra.NoArgs,
	RunE:  runCensusBrowse,
}

func init() {
	censusExportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: stdout)")

	censusCmd.AddCommand(censusShowCmd)
	censusCmd.AddCommand(censusExportCmd)
	censusCmd.AddCommand(censusRmCmd)
	censusCmd.AddCommand(censusBrowseCmd)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening census database: %w", err)
	}
	return store, nil
}

func runCensusList(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No census recorded yet.")
		fmt.Println()
		fmt.Println("Run 'aquarium run' and let the tank live for a while.")
		return nil
	}

	maxIDLen := 3 // "Run" header
	for _, r := range runs {
		maxIDLen = max(maxIDLen, len(r.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-16s  %8s  %s\n", maxIDLen, "Run", "Size", "Started", "Samples", "Last tick")
	fmt.Printf("  %-*s  %-9s  %-16s  %8s  %s\n", maxIDLen, "---", "----", "-------", "-------", "---------")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Printf("  %-*s  %-9s  %-16s  %8d  %d\n",
			maxIDLen, r.ID, size, r.StartedAt.Local().Format("2006-01-02 15:04"), r.Samples, r.LastTick)
	}
	return nil
}

func runCensusShow(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Summary(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Census - %s\n", args[0])
	fmt.Println()

	maxNameLen := 7 // "Species" header
	for _, st := range stats {
		maxNameLen = max(maxNameLen, len(st.Species))
	}

	fmt.Printf("  %-*s  %8s  %8s  %5s  %5s  %5s\n", maxNameLen, "Species", "Mean", "StdDev", "Min", "Max", "Last")
	fmt.Printf("  %-*s  %8s  %8s  %5s  %5s  %5s\n", maxNameLen, "-------", "----", "------", "---", "---", "----")
	for _, st := range stats {
		fmt.Printf("  %-*s  %8.1f  %8.2f  %5d  %5d  %5d\n",
			maxNameLen, st.Species, st.Mean, st.StdDev, st.Min, st.Max, st.Last)
	}
	return nil
}

func runCensusExport(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var w io.Writer = os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		w = f
	}

	return store.ExportCSV(args[0], w)
}

func runCensusRm(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ClearRun(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted run %s\n", args[0])
	return nil
}

func runCensusBrowse(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunCensusBrowser(store, width, height)
}
