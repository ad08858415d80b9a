package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/piwi3910/LumenGrid/internal/engine"
	"github.com/piwi3910/LumenGrid/internal/importer"
	"github.com/piwi3910/LumenGrid/internal/project"
)

// newDiagnosticLogger builds the verbose-mode zap logger. Report output
// goes to stdout via fmt; diagnostics go to stderr so they can be split.
func newDiagnosticLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func runDesign(path, out string, resolution float64, workers int, verbose bool) error {
	log := newDiagnosticLogger(verbose)
	defer log.Sync()

	design, err := project.LoadDesign(path)
	if err != nil {
		return err
	}

	spec := design.Spec
	if resolution > 0 {
		spec.Resolution = resolution
	}

	runner := engine.New(engine.GridOptions{Workers: workers})

	start := time.Now()
	result, err := runner.Run(spec)
	if err != nil {
		return err
	}
	log.Info("design pipeline complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("grid_cells", len(result.Grid.Cells)),
		zap.Int("fixtures", len(spec.Fixtures)),
		zap.Int("circuits", len(result.Circuits)))

	printReport(design.Name, result)

	if out != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
		log.Info("result written", zap.String("path", out))
	}

	design.Result = &result
	if err := project.SaveDesign(path, design); err != nil {
		return err
	}

	return nil
}

func runValidate(path string) error {
	design, err := project.LoadDesign(path)
	if err != nil {
		return err
	}

	warnings, err := design.Spec.Validate()
	if err != nil {
		fmt.Printf("INVALID: %v\n", err)
		return err
	}
	if err := design.Spec.Electrical.Validate(); err != nil {
		fmt.Printf("INVALID: %v\n", err)
		return err
	}

	if len(warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}
	fmt.Printf("Result: VALID (%d fixtures, %.0f x %.0f room)\n",
		len(design.Spec.Fixtures), design.Spec.Room.Length, design.Spec.Room.Width)
	return nil
}

func runCircuits(path string) error {
	design, err := project.LoadDesign(path)
	if err != nil {
		return err
	}

	circuits, err := engine.PartitionCircuits(design.Spec.Fixtures, design.Spec.Electrical)
	if err != nil {
		return err
	}

	printCircuitSchedule(circuits, design.Spec.Electrical.CircuitVoltage)
	return nil
}

func runImport(path, out string, height float64) error {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	if height <= 0 {
		height = config.DefaultMountingHeight
	}

	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		res = importer.ImportCSV(path, height)
	case ".xlsx":
		res = importer.ImportExcel(path, height)
	case ".dxf":
		lib, err := project.LoadLibrary(project.DefaultLibraryPath())
		if err != nil {
			return err
		}
		if len(lib.Models) == 0 {
			return fmt.Errorf("fixture library is empty; DXF import needs a template model")
		}
		res = importer.ImportDXF(path, lib.Models[0], height)
	default:
		return fmt.Errorf("unsupported import format %q", filepath.Ext(path))
	}

	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range res.Errors {
		fmt.Printf("error: %s\n", e)
	}
	if len(res.Fixtures) == 0 {
		return fmt.Errorf("import produced no fixtures")
	}

	name := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	design := project.NewDesign(name, config)
	design.Spec.Fixtures = res.Fixtures

	if err := project.SaveDesign(out, design); err != nil {
		return err
	}

	fmt.Printf("Imported %d fixtures into %s (set room dimensions before running)\n",
		len(res.Fixtures), out)
	return nil
}
