// csv.go writes the case as a single CSV file: a baseMVA row followed by
// one block per table, each introduced by its name and column headers.

package caseformat

import (
	"encoding/csv"
	"io"

	"github.com/avaropoint/psse2case/parsers/psse"
)

func init() {
	Register(&csvWriter{})
}

type csvWriter struct{}

func (*csvWriter) Name() string {
	return "CSV tables"
}

func (*csvWriter) Extensions() []string {
	return []string{".csv"}
}

func (*csvWriter) Write(w io.Writer, c *psse.Case) error {
	cw := csv.NewWriter(w)
	bus, gen, branch := tables(c)

	if err := cw.Write([]string{"baseMVA", num(c.BaseMVA)}); err != nil {
		return err
	}

	blocks := []struct {
		name    string
		columns []string
		rows    [][]float64
	}{
		{"bus", busColumns, bus},
		{"gen", genColumns, gen},
		{"branch", branchColumns, branch},
	}
	for _, blk := range blocks {
		if err := cw.Write([]string{blk.name}); err != nil {
			return err
		}
		if err := cw.Write(blk.columns); err != nil {
			return err
		}
		for _, row := range blk.rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = num(v)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
