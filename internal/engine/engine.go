package engine

import (
	"github.com/piwi3910/LumenGrid/internal/model"
)

// Runner executes the full design pipeline against a facility snapshot.
type Runner struct {
	Options GridOptions
}

// New creates a Runner with the given grid options.
func New(opts GridOptions) *Runner {
	return &Runner{Options: opts}
}

// Run validates the spec and executes the forward pipeline:
// grid -> metrics, grid-independent circuit partition, and (when a
// financial scenario is supplied) the system comparison. On any error the
// zero DesignResult is returned; partial results are never produced.
func (r *Runner) Run(spec model.FacilitySpec) (model.DesignResult, error) {
	warnings, err := spec.Validate()
	if err != nil {
		return model.DesignResult{}, err
	}

	grid, err := ComputeGrid(spec, r.Options)
	if err != nil {
		return model.DesignResult{}, err
	}

	metrics, err := AggregateMetrics(grid, spec.Fixtures, spec.PhotoperiodHours)
	if err != nil {
		return model.DesignResult{}, err
	}

	circuits, err := PartitionCircuits(spec.Fixtures, spec.Electrical)
	if err != nil {
		return model.DesignResult{}, err
	}

	result := model.DesignResult{
		Spec:     spec,
		Grid:     grid,
		Metrics:  metrics,
		Circuits: circuits,
		Warnings: warnings,
	}

	if spec.Financial != nil {
		if err := spec.Financial.Validate(); err != nil {
			return model.DesignResult{}, err
		}
		cmp := CompareSystems(*spec.Financial)
		result.Financial = &cmp
	}

	return result, nil
}

// Run executes the pipeline with default grid options.
func Run(spec model.FacilitySpec) (model.DesignResult, error) {
	return New(GridOptions{}).Run(spec)
}
