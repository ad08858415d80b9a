// LumenGrid — Horticulture Lighting Design Engine
//
// A command-line tool that turns a fixture layout into a photometric PPFD
// map, an NEC-style circuit schedule, and a financial comparison between
// two lighting systems.
//
// Build:
//
//	go build -o lumengrid ./cmd/lumengrid
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumengrid",
		Short: "Greenhouse lighting design engine: PPFD grid, circuits, payback",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(circuitsCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		out        string
		resolution float64
		workers    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run [design.json]",
		Short: "Run the full design pipeline and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDesign(args[0], out, resolution, workers, verbose)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the DesignResult as JSON to this path")
	cmd.Flags().Float64VarP(&resolution, "resolution", "r", 0, "Override the grid sampling step")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Grid worker goroutines (0 = all CPUs)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log phase timings")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [design.json]",
		Short: "Validate a design file without computing the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func circuitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuits [design.json]",
		Short: "Partition and size branch circuits only",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCircuits(args[0])
		},
	}
}

func importCmd() *cobra.Command {
	var (
		out    string
		height float64
	)

	cmd := &cobra.Command{
		Use:   "import [schedule.csv|schedule.xlsx|layout.dxf]",
		Short: "Import a fixture schedule or layout into a new design file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(args[0], out, height)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "design.json", "Design file to create")
	cmd.Flags().Float64Var(&height, "height", 0, "Default mounting height for imported fixtures (0 = app config default)")
	return cmd
}
