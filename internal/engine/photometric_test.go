package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/piwi3910/LumenGrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSpec builds the reference layout: a 66 x 22 ft room with 80 fixtures
// (16 x 5 array on 4 ft centers), 1700 PPF / 645 W each, hung 8 ft above
// the canopy.
func seedSpec() model.FacilitySpec {
	const cols, rows, spacing = 16, 5, 4.0
	room := model.Room{Length: 66, Width: 22, Height: 12}
	x0 := (room.Length - float64(cols-1)*spacing) / 2
	y0 := (room.Width - float64(rows-1)*spacing) / 2

	var fixtures []model.Fixture
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fixtures = append(fixtures, model.Fixture{
				ID:             fmt.Sprintf("F%02d-%02d", r+1, c+1),
				Label:          "LED Bar 645W",
				X:              x0 + float64(c)*spacing,
				Y:              y0 + float64(r)*spacing,
				MountingHeight: 8,
				PPF:            1700,
				Wattage:        645,
			})
		}
	}

	return model.FacilitySpec{
		Name:             "Seed Room",
		Room:             room,
		Fixtures:         fixtures,
		Resolution:       1.0,
		PhotoperiodHours: 12,
		Electrical:       model.DefaultElectricalConfig(),
	}
}

func TestComputeGrid_SingleFixtureExactValue(t *testing.T) {
	// One cell directly under one fixture: PPFD = ppf*K / (4*pi*h^2).
	spec := model.FacilitySpec{
		Room:             model.Room{Length: 1, Width: 1},
		Fixtures:         []model.Fixture{{ID: "f1", X: 0.5, Y: 0.5, MountingHeight: 2, PPF: 1000, Wattage: 400}},
		Resolution:       1.0,
		PhotoperiodHours: 12,
	}

	grid, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)
	require.Len(t, grid.Cells, 1)

	expected := 1000 * model.DefaultConversionFactor / (4 * math.Pi * 4)
	cell := grid.At(0, 0)
	assert.InDelta(t, expected, cell.PPFD, 1e-9)
	assert.Equal(t, 0.5, cell.X)
	assert.Equal(t, 0.5, cell.Y)
}

func TestComputeGrid_SeedLayoutDimensionsAndRange(t *testing.T) {
	grid, err := ComputeGrid(seedSpec(), GridOptions{})
	require.NoError(t, err)

	assert.Equal(t, 66, grid.Cols)
	assert.Equal(t, 22, grid.Rows)
	require.Len(t, grid.Cells, 66*22)

	for _, c := range grid.Cells {
		assert.GreaterOrEqual(t, c.PPFD, 0.0, "PPFD must never be negative")
		assert.True(t, c.Included)
	}
}

func TestComputeGrid_WorkerCountDoesNotChangeResults(t *testing.T) {
	spec := seedSpec()

	serial, err := ComputeGrid(spec, GridOptions{Workers: 1})
	require.NoError(t, err)
	parallel, err := ComputeGrid(spec, GridOptions{Workers: 8})
	require.NoError(t, err)

	require.Equal(t, len(serial.Cells), len(parallel.Cells))
	for i := range serial.Cells {
		assert.Equal(t, serial.Cells[i], parallel.Cells[i])
	}
}

func TestComputeGrid_ResolutionConvergence(t *testing.T) {
	// Halving the sampling step must barely move the average: the seed
	// layout converges to within a fraction of a percent.
	spec := seedSpec()

	spec.Resolution = 2.0
	coarse, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)
	coarseMetrics, err := AggregateMetrics(coarse, spec.Fixtures, spec.PhotoperiodHours)
	require.NoError(t, err)

	spec.Resolution = 1.0
	fine, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)
	fineMetrics, err := AggregateMetrics(fine, spec.Fixtures, spec.PhotoperiodHours)
	require.NoError(t, err)

	assert.InDelta(t, fineMetrics.AvgPPFD, coarseMetrics.AvgPPFD, 0.01*fineMetrics.AvgPPFD)
}

func TestComputeGrid_CutoffStaysWithinTolerance(t *testing.T) {
	spec := seedSpec()

	exact, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)
	approx, err := ComputeGrid(spec, GridOptions{CutoffThreshold: 0.01})
	require.NoError(t, err)

	for i := range exact.Cells {
		diff := exact.Cells[i].PPFD - approx.Cells[i].PPFD
		assert.GreaterOrEqual(t, diff, 0.0, "cutoff can only remove light")
		assert.Less(t, diff, 1.0, "cutoff deviation must stay below tolerance")
	}
}

func TestComputeGrid_RaisingPPFRaisesAverage(t *testing.T) {
	spec := seedSpec()
	base, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)
	baseMetrics, err := AggregateMetrics(base, spec.Fixtures, spec.PhotoperiodHours)
	require.NoError(t, err)

	// Boost a single fixture; holding positions fixed, avgPPFD must
	// strictly increase.
	boosted := seedSpec()
	boosted.Fixtures[40].PPF += 100
	grid, err := ComputeGrid(boosted, GridOptions{})
	require.NoError(t, err)
	boostedMetrics, err := AggregateMetrics(grid, boosted.Fixtures, boosted.PhotoperiodHours)
	require.NoError(t, err)

	assert.Greater(t, boostedMetrics.AvgPPFD, baseMetrics.AvgPPFD)
}

func TestAggregateMetrics_SeedLayoutKPIs(t *testing.T) {
	spec := seedSpec()
	grid, err := ComputeGrid(spec, GridOptions{})
	require.NoError(t, err)

	m, err := AggregateMetrics(grid, spec.Fixtures, spec.PhotoperiodHours)
	require.NoError(t, err)

	// Reference values for the seed layout at 1 ft sampling.
	assert.InDelta(t, 385.0, m.AvgPPFD, 2.0)
	assert.InDelta(t, 195.6, m.MinPPFD, 2.0)
	assert.InDelta(t, 490.2, m.MaxPPFD, 2.0)
	assert.InDelta(t, 16.63, m.DLI, 0.1)
	assert.InDelta(t, 2.6357, m.Efficacy, 0.001)

	assert.Greater(t, m.Uniformity, 0.0)
	assert.LessOrEqual(t, m.Uniformity, 1.0)
	assert.InDelta(t, m.MinPPFD/m.AvgPPFD, m.Uniformity, 1e-12)
}

func TestAggregateMetrics_ExcludedCellsIgnored(t *testing.T) {
	grid := model.Grid{
		Rows: 1, Cols: 3,
		Cells: []model.Cell{
			{PPFD: 100, Included: true},
			{PPFD: 900, Included: false}, // visualization-only cell
			{PPFD: 300, Included: true},
		},
	}
	fixtures := []model.Fixture{{PPF: 1700, Wattage: 645}}

	m, err := AggregateMetrics(grid, fixtures, 12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, m.MinPPFD)
	assert.Equal(t, 300.0, m.MaxPPFD)
	assert.Equal(t, 200.0, m.AvgPPFD)
}

func TestAggregateMetrics_NoIncludedCellsFails(t *testing.T) {
	grid := model.Grid{Rows: 1, Cols: 1, Cells: []model.Cell{{PPFD: 10}}}
	_, err := AggregateMetrics(grid, nil, 12)
	require.Error(t, err)
	var cerr *model.ComputationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "metrics", cerr.Stage)
}
