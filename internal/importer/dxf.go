package importer

import (
	"fmt"

	"github.com/piwi3910/LumenGrid/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ImportDXF imports fixture positions from a DXF layout drawing. Each
// fixture symbol (a CIRCLE or a closed LWPOLYLINE) becomes one fixture
// placed at the symbol's center. DXF carries geometry only, so the
// photometric attributes (PPF, wattage) come from the supplied library
// model, and defaultHeight sets the mounting height.
func ImportDXF(path string, template model.FixtureModel, defaultHeight float64) ImportResult {
	result := ImportResult{}

	if template.PPF <= 0 || template.Wattage <= 0 {
		result.Errors = append(result.Errors, "Import template must have positive PPF and wattage")
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	type position struct{ x, y float64 }
	var positions []position

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Circle:
			positions = append(positions, position{x: e.Center[0], y: e.Center[1]})

		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			// Use the bounding-box center of the symbol
			minX, minY := e.Vertices[0][0], e.Vertices[0][1]
			maxX, maxY := minX, minY
			for _, v := range e.Vertices[1:] {
				if v[0] < minX {
					minX = v[0]
				}
				if v[1] < minY {
					minY = v[1]
				}
				if v[0] > maxX {
					maxX = v[0]
				}
				if v[1] > maxY {
					maxY = v[1]
				}
			}
			positions = append(positions, position{x: (minX + maxX) / 2, y: (minY + maxY) / 2})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	if len(positions) == 0 {
		result.Errors = append(result.Errors, "No fixture symbols (CIRCLE or LWPOLYLINE) found in DXF file")
		return result
	}

	for i, p := range positions {
		f := template.ToFixture(p.x, p.y, defaultHeight)
		if f.Label == "" {
			f.Label = fmt.Sprintf("DXF Fixture %d", i+1)
		}
		result.Fixtures = append(result.Fixtures, f)
	}

	return result
}
