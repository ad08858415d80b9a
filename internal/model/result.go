package model

// Cell is one sample point on the canopy plane.
type Cell struct {
	X        float64 `json:"x"` // Sample coordinates (cell center)
	Y        float64 `json:"y"`
	PPFD     float64 `json:"ppfd"`     // umol/m2/s, never negative
	Included bool    `json:"included"` // Counted in aggregate statistics
}

// Grid is the sampled light-intensity map over the canopy plane.
// Cells are stored row-major: index = row*Cols + col.
type Grid struct {
	Resolution float64 `json:"resolution"` // Requested sampling step
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellWidth  float64 `json:"cell_width"` // Actual cell size after tiling the room
	CellHeight float64 `json:"cell_height"`
	Cells      []Cell  `json:"cells"`
}

// At returns the cell at the given row and column.
func (g Grid) At(row, col int) Cell {
	return g.Cells[row*g.Cols+col]
}

// Metrics are the scalar KPIs reduced from the grid and fixture list.
type Metrics struct {
	MinPPFD    float64 `json:"min_ppfd"`
	MaxPPFD    float64 `json:"max_ppfd"`
	AvgPPFD    float64 `json:"avg_ppfd"`
	Uniformity float64 `json:"uniformity"` // min/avg, in (0, 1]
	DLI        float64 `json:"dli"`        // mol/m2/day at the spec photoperiod
	Efficacy   float64 `json:"efficacy"`   // umol/J across all fixtures
}

// Circuit is one sized electrical branch circuit.
type Circuit struct {
	ID             string   `json:"id"` // "CKT-1", "CKT-2", ...
	FixtureIDs     []string `json:"fixture_ids"`
	ContinuousLoad float64  `json:"continuous_load"` // Amps
	BreakerRating  int      `json:"breaker_rating"`  // Amps
	WireGauge      string   `json:"wire_gauge"`
	WireAmpacity   float64  `json:"wire_ampacity"`
	ConduitSize    string   `json:"conduit_size"`
}

// YearCashFlow is one row of the cumulative cash-flow series.
type YearCashFlow struct {
	Year       int     `json:"year"` // 0 = capital outlay
	Cumulative float64 `json:"cumulative"`
}

// FinancialComparison is the outcome of comparing the proposed system
// against the baseline. When the proposed system never recovers its
// capital, BreaksEven is false and PaybackYears is zero; the comparator
// never reports a negative or NaN payback.
type FinancialComparison struct {
	Baseline             SystemSpec     `json:"baseline"`
	Proposed             SystemSpec     `json:"proposed"`
	BaselineAnnualKWh    float64        `json:"baseline_annual_kwh"`
	ProposedAnnualKWh    float64        `json:"proposed_annual_kwh"`
	BaselineAnnualEnergy float64        `json:"baseline_annual_energy"` // $/year
	ProposedAnnualEnergy float64        `json:"proposed_annual_energy"`
	AnnualSavings        float64        `json:"annual_savings"` // May be <= 0
	BreaksEven           bool           `json:"breaks_even"`
	PaybackYears         float64        `json:"payback_years,omitempty"`
	CashFlow             []YearCashFlow `json:"cash_flow,omitempty"`
}

// DesignResult is the complete output of one engine run.
type DesignResult struct {
	Spec      FacilitySpec         `json:"spec"`
	Grid      Grid                 `json:"grid"`
	Metrics   Metrics              `json:"metrics"`
	Circuits  []Circuit            `json:"circuits"`
	Financial *FinancialComparison `json:"financial,omitempty"`
	Warnings  []string             `json:"warnings,omitempty"` // Placement warnings, non-fatal
}

// TotalFixtures returns the number of fixtures across all circuits.
func (r DesignResult) TotalFixtures() int {
	var n int
	for _, c := range r.Circuits {
		n += len(c.FixtureIDs)
	}
	return n
}
