// Package engine implements the lighting design pipeline: photometric grid
// calculation, metric aggregation, circuit partitioning, and financial
// comparison. Every function is pure and deterministic; the engine performs
// no I/O and holds no state between runs.
package engine

import (
	"math"
	"runtime"
	"sync"

	"github.com/piwi3910/LumenGrid/internal/model"
)

// GridOptions tunes the grid computation. The zero value is exact,
// single-threaded-equivalent behavior.
type GridOptions struct {
	// Workers bounds the number of goroutines computing grid rows.
	// <= 0 means runtime.NumCPU(). Worker count never changes results.
	Workers int

	// CutoffThreshold drops fixture contributions below this PPFD value
	// at a sample point. 0 means exact summation. A small threshold
	// (e.g. 0.01) speeds up very large layouts at a bounded cost in
	// accuracy.
	CutoffThreshold float64
}

// ComputeGrid samples the canopy plane and sums the inverse-square
// contribution of every fixture at every sample point:
//
//	PPFD(p) = sum_f ppf * K / (4*pi * d(p,f)^2)
//	d(p,f)  = sqrt((x-fx)^2 + (y-fy)^2 + mh^2)
//
// The room is tiled exactly: cols = ceil(length/resolution), and cells are
// sampled at their centers. Mounting height is validated positive upstream,
// so the distance term never reaches zero.
func ComputeGrid(spec model.FacilitySpec, opts GridOptions) (model.Grid, error) {
	cols := int(math.Ceil(spec.Room.Length / spec.Resolution))
	rows := int(math.Ceil(spec.Room.Width / spec.Resolution))
	if rows <= 0 || cols <= 0 {
		return model.Grid{}, &model.ComputationError{
			Stage:  "grid",
			Reason: "sampling produced zero cells",
		}
	}

	grid := model.Grid{
		Resolution: spec.Resolution,
		Rows:       rows,
		Cols:       cols,
		CellWidth:  spec.Room.Length / float64(cols),
		CellHeight: spec.Room.Width / float64(rows),
		Cells:      make([]model.Cell, rows*cols),
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}

	// Rows are independent, so they fan out over a bounded worker pool.
	// Each worker writes only its own rows; no result ordering depends on
	// scheduling.
	rowChan := make(chan int, rows)
	for r := 0; r < rows; r++ {
		rowChan <- r
	}
	close(rowChan)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range rowChan {
				computeRow(&grid, spec, opts.CutoffThreshold, r)
			}
		}()
	}
	wg.Wait()

	return grid, nil
}

// computeRow fills one grid row with PPFD samples.
func computeRow(grid *model.Grid, spec model.FacilitySpec, cutoff float64, row int) {
	k := spec.K()
	y := (float64(row) + 0.5) * grid.CellHeight

	for col := 0; col < grid.Cols; col++ {
		x := (float64(col) + 0.5) * grid.CellWidth

		var ppfd float64
		for _, f := range spec.Fixtures {
			dx := x - f.X
			dy := y - f.Y
			distSq := dx*dx + dy*dy + f.MountingHeight*f.MountingHeight
			contribution := f.PPF * k / (4 * math.Pi * distSq)
			if cutoff > 0 && contribution < cutoff {
				continue
			}
			ppfd += contribution
		}

		grid.Cells[row*grid.Cols+col] = model.Cell{
			X:        x,
			Y:        y,
			PPFD:     ppfd,
			Included: true,
		}
	}
}
