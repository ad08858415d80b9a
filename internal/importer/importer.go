// Package importer provides CSV, Excel, and DXF import functionality for
// fixture schedules and layouts. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/LumenGrid/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Fixtures []model.Fixture
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label   int
	X       int
	Y       int
	PPF     int
	Wattage int
	Height  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":   {"label", "name", "model", "fixture", "luminaire", "description", "desc"},
	"x":       {"x", "x pos", "x position", "pos x", "east"},
	"y":       {"y", "y pos", "y position", "pos y", "north"},
	"ppf":     {"ppf", "flux", "photon flux", "umol/s", "output"},
	"wattage": {"wattage", "watts", "w", "power", "draw"},
	"height":  {"height", "mounting height", "mount height", "z", "hang height"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the
		// first row. Only consider delimiters that produce more than 1
		// column.
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:   -1,
		X:       -1,
		Y:       -1,
		PPF:     -1,
		Wattage: -1,
		Height:  -1,
	}

	assign := func(role string, idx int) {
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = idx
			}
		case "x":
			if mapping.X == -1 {
				mapping.X = idx
			}
		case "y":
			if mapping.Y == -1 {
				mapping.Y = idx
			}
		case "ppf":
			if mapping.PPF == -1 {
				mapping.PPF = idx
			}
		case "wattage":
			if mapping.Wattage == -1 {
				mapping.Wattage = idx
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = idx
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, X, Y, PPF, Wattage, Height
		return ColumnMapping{
			Label:   0,
			X:       1,
			Y:       2,
			PPF:     3,
			Wattage: 4,
			Height:  5,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Fixture from a row using the given column mapping.
// The mounting height column is optional; defaultHeight fills the gap.
// Returns the fixture, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, fixtureCount int, defaultHeight float64) (model.Fixture, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Fixture %d", fixtureCount+1)
	}

	parse := func(name, raw string) (float64, string) {
		if raw == "" {
			return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, raw)
		}
		return v, ""
	}

	x, errMsg := parse("x", getCell(row, mapping.X))
	if errMsg != "" {
		return model.Fixture{}, errMsg, ""
	}
	y, errMsg := parse("y", getCell(row, mapping.Y))
	if errMsg != "" {
		return model.Fixture{}, errMsg, ""
	}
	ppf, errMsg := parse("ppf", getCell(row, mapping.PPF))
	if errMsg != "" {
		return model.Fixture{}, errMsg, ""
	}
	wattage, errMsg := parse("wattage", getCell(row, mapping.Wattage))
	if errMsg != "" {
		return model.Fixture{}, errMsg, ""
	}

	if ppf <= 0 || wattage <= 0 {
		return model.Fixture{}, fmt.Sprintf("%s: PPF and wattage must be positive", rowLabel), ""
	}

	height := defaultHeight
	var warning string
	if raw := getCell(row, mapping.Height); raw != "" {
		h, err := strconv.ParseFloat(raw, 64)
		if err != nil || h <= 0 {
			warning = fmt.Sprintf("%s: Invalid mounting height '%s', using default %.2f", rowLabel, raw, defaultHeight)
		} else {
			height = h
		}
	}

	return model.NewFixture(label, x, y, height, ppf, wattage), "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports fixtures from a CSV schedule file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, defaultHeight float64) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings, defaultHeight)
}

// ImportCSVFromReader imports fixtures from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already
// known.
func ImportCSVFromReader(reader io.Reader, delimiter rune, defaultHeight float64) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil, defaultHeight)
}

// ImportExcel imports fixtures from an Excel (.xlsx) schedule.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, defaultHeight float64) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil, defaultHeight)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into fixtures.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, defaultHeight float64) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if mapping.PPF == -1 {
			missing = append(missing, "PPF")
		}
		if mapping.Wattage == -1 {
			missing = append(missing, "Wattage")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the first row is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after label is not numeric - might be an
				// unrecognized header. Skip it but keep positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		fixture, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Fixtures), defaultHeight)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Fixtures = append(result.Fixtures, fixture)
	}

	return result
}
