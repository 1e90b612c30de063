package Reports

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Writing the table and reading it back must yield identical string
// content in the same cells.
func TestTableWorkbookRoundTrip(t *testing.T) {
	report := sampleNormalized()
	feedback := "Back door was left unlocked."
	report.ClientFeedback = &feedback

	rows, err := RenderTable(report, samplePremise())
	if err != nil {
		t.Fatalf("RenderTable returned error: %v", err)
	}

	buf, err := TableWorkbook(rows)
	if err != nil {
		t.Fatalf("TableWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	for rowIndex, row := range rows {
		for colIndex, want := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.GetCellValue(sheetName, cell)
			if err != nil {
				t.Fatalf("reading %s: %v", cell, err)
			}
			if got != want {
				t.Errorf("cell %s = %q, want %q", cell, got, want)
			}
		}
	}
}

func TestTableWorkbookSheetName(t *testing.T) {
	rows, err := RenderTable(sampleNormalized(), samplePremise())
	if err != nil {
		t.Fatal(err)
	}
	buf, err := TableWorkbook(rows)
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if f.GetSheetName(0) != sheetName {
		t.Errorf("sheet name = %q, want %q", f.GetSheetName(0), sheetName)
	}
}
