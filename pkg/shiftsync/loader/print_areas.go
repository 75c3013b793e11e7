package loader

import (
	"strings"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the defined name Excel uses for a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// PrintAreas returns the print areas of a workbook keyed by sheet name.
func PrintAreas(f *excelize.File) map[string][]models.Region {
	result := make(map[string][]models.Region)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) && !strings.EqualFold(dn.Name, "Print_Area") {
			continue
		}

		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a reference such as 'Sheet Name'!$A$1:$D$10.
// Multiple areas are separated by commas. A bare range such as $A$1:$D$10
// has no sheet name; the caller resolves it from the name's scope.
func parsePrintAreaReference(ref string) (string, []models.Region) {
	var areas []models.Region
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
			if sheetName == "" {
				sheetName = sheet
			}
			rangeStr = part[idx+1:]
		}

		if area, ok := parseRangeToRegion(rangeStr); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRangeToRegion parses a range such as $A$1:$D$10.
func parseRangeToRegion(rangeStr string) (models.Region, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.Region{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Region{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Region{}, false
	}

	return models.Region{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, true
}

// RegionReference formats a region as an absolute reference on sheet,
// suitable for a print area defined name.
func RegionReference(sheet string, r models.Region) (string, error) {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	if err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + start + ":" + end, nil
}
