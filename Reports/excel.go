package Reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Inspection Report"

// TableWorkbook writes RenderTable rows into an xlsx workbook,
// cell for cell. The areas header row gets a bold style; everything else
// is plain strings so the sheet round-trips without content changes.
func TableWorkbook(rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %v", err)
	}

	headerRow := -1
	for rowIndex, row := range rows {
		if len(row) > 0 && row[0] == "Areas Inspected" {
			headerRow = rowIndex + 1
		}
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return nil, fmt.Errorf("error computing cell name: %v", err)
			}
			if err := f.SetCellStr(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("error writing cell %s: %v", cell, err)
			}
		}
	}

	if headerRow > 0 {
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#E6E6FA"},
				Pattern: 1,
			},
		})
		if err == nil {
			f.SetRowStyle(sheetName, headerRow, headerRow, headerStyle)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "C", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}
	return buf, nil
}
