package boards

import (
	"fmt"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/loader"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"github.com/xuri/excelize/v2"
)

const defaultColWidth = 16

// Write saves wb to path as an xlsx file. Every sheet gets a bold header,
// a frozen header row, an autofilter and a print area over its data.
func Write(wb *models.Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook %q has no sheets", wb.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return err
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet models.Sheet, headerStyle int) error {
	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for r, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}

	cols := len(sheet.Header)
	if cols == 0 {
		return nil
	}
	region := models.Region{R1: 1, C1: 1, R2: len(sheet.Rows) + 1, C2: cols}

	lastHeader, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i := 0; i < cols; i++ {
		width := float64(defaultColWidth)
		if i < len(sheet.Widths) && sheet.Widths[i] > 0 {
			width = sheet.Widths[i]
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if len(sheet.Rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(region.C2, region.R2)
		if err != nil {
			return err
		}
		if err := f.AutoFilter(sheet.Name, "A1:"+lastCell, nil); err != nil {
			return err
		}
	}

	ref, err := loader.RegionReference(sheet.Name, region)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     loader.PrintAreaName,
		RefersTo: ref,
		Scope:    sheet.Name,
	})
}
