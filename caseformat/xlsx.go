// xlsx.go writes the case as an Excel workbook: a case sheet with the
// baseMVA scalar plus one sheet per table with bold headers.

package caseformat

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/avaropoint/psse2case/parsers/psse"
)

func init() {
	Register(&xlsxWriter{})
}

type xlsxWriter struct{}

func (*xlsxWriter) Name() string {
	return "Excel workbook"
}

func (*xlsxWriter) Extensions() []string {
	return []string{".xlsx"}
}

func (*xlsxWriter) Write(w io.Writer, c *psse.Case) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "case"); err != nil {
		return fmt.Errorf("failed to rename case sheet: %w", err)
	}
	f.SetCellValue("case", "A1", "baseMVA")
	f.SetCellValue("case", "B1", c.BaseMVA)

	bus, gen, branch := tables(c)
	sheets := []struct {
		name    string
		columns []string
		rows    [][]float64
	}{
		{"bus", busColumns, bus},
		{"gen", genColumns, gen},
		{"branch", branchColumns, branch},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.columns, sh.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// writeSheet fills one worksheet with a styled header row and the table
// rows, sizing columns to their header names.
func writeSheet(f *excelize.File, name string, columns []string, rows [][]float64) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(name, cell, col)
	}

	// Style the header row (bold).
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(name, first, last, style)

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(name, cell, v)
		}
	}

	for i, col := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(col) + 4)
		if width < 10 {
			width = 10
		}
		f.SetColWidth(name, colName, colName, width)
	}
	return nil
}
