package engine

import (
	"github.com/piwi3910/LumenGrid/internal/model"
)

// AggregateMetrics reduces a computed grid and the fixture list to the
// scalar KPIs. Only cells marked Included count toward the statistics;
// excluded cells exist purely for visualization continuity.
func AggregateMetrics(grid model.Grid, fixtures []model.Fixture, photoperiodHours float64) (model.Metrics, error) {
	var (
		sum      float64
		count    int
		min, max float64
	)
	for _, c := range grid.Cells {
		if !c.Included {
			continue
		}
		if count == 0 {
			min, max = c.PPFD, c.PPFD
		} else {
			if c.PPFD < min {
				min = c.PPFD
			}
			if c.PPFD > max {
				max = c.PPFD
			}
		}
		sum += c.PPFD
		count++
	}
	if count == 0 {
		return model.Metrics{}, &model.ComputationError{
			Stage:  "metrics",
			Reason: "no grid cells included in aggregation",
		}
	}

	avg := sum / float64(count)

	var uniformity float64
	if avg > 0 {
		uniformity = min / avg
	}

	var totalPPF, totalWatts float64
	for _, f := range fixtures {
		totalPPF += f.PPF
		totalWatts += f.Wattage
	}
	var efficacy float64
	if totalWatts > 0 {
		efficacy = totalPPF / totalWatts
	}

	return model.Metrics{
		MinPPFD:    min,
		MaxPPFD:    max,
		AvgPPFD:    avg,
		Uniformity: uniformity,
		// DLI integrates average PPFD over the photoperiod: umol/m2/s
		// times seconds per lit day, expressed in mol.
		DLI:      avg * photoperiodHours * 3600 / 1e6,
		Efficacy: efficacy,
	}, nil
}
