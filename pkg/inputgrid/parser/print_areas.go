package parser

import (
	"strings"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
	"github.com/xuri/excelize/v2"
)

// PrintArea returns the print area defined for sheet, if any.
func PrintArea(f *excelize.File, sheet string) (*models.PrintArea, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		name, area := parsePrintAreaReference(dn.RefersTo)
		if area == nil {
			continue
		}
		if name == sheet || (name == "" && dn.Scope == sheet) {
			return area, true
		}
	}
	return nil, false
}

// parsePrintAreaReference splits 'Sheet'!$A$1:$D$10 into the sheet name and
// its first area.
func parsePrintAreaReference(ref string) (string, *models.PrintArea) {
	first, _, _ := strings.Cut(ref, ",")
	first = strings.TrimSpace(first)

	var sheet string
	rangeStr := first
	if idx := strings.LastIndex(first, "!"); idx >= 0 {
		sheet = strings.Trim(first[:idx], "'")
		rangeStr = first[idx+1:]
	}
	return sheet, parseRangeToArea(rangeStr)
}

// parseRangeToArea parses $A$1:$D$10 into 1-based bounds.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	start, end, ok := strings.Cut(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if !ok {
		return nil
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return nil
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return nil
	}
	return &models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}
}
