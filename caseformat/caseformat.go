// Package caseformat defines the Writer interface and a registry of
// pluggable output writers for parsed cases. Writers register themselves
// from init functions and are selected by the output file's extension.
package caseformat

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/avaropoint/psse2case/parsers/psse"
)

// Writer serializes a case to a specific on-disk format.
type Writer interface {
	// Name returns a human-readable format name.
	Name() string

	// Extensions returns file extensions this writer handles,
	// including the leading dot (e.g. ".m", ".xlsx").
	Extensions() []string

	// Write serializes the case to w.
	Write(w io.Writer, c *psse.Case) error
}

var registry []Writer

// Register adds a writer to the global registry. Call this from an init
// function in the writer's file.
func Register(w Writer) {
	registry = append(registry, w)
}

// ForPath returns the writer matching the path's extension.
func ForPath(path string) (Writer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, w := range registry {
		for _, e := range w.Extensions() {
			if ext == e {
				return w, nil
			}
		}
	}
	var known []string
	for _, w := range registry {
		known = append(known, w.Extensions()...)
	}
	return nil, fmt.Errorf("no writer for %q (known extensions: %s)", ext, strings.Join(known, " "))
}

// All returns every registered writer.
func All() []Writer {
	return registry
}

// Column headers for the three tables, in Row() order.
var (
	busColumns = []string{
		"bus_i", "type", "Pd", "Qd", "Gs", "Bs", "area",
		"Vm", "Va", "baseKV", "zone", "Vmax", "Vmin",
	}
	genColumns = []string{
		"bus", "Pg", "Qg", "Qmax", "Qmin", "Vg", "mBase", "status",
		"Pmax", "Pmin", "Pc1", "Pc2", "Qc1min", "Qc1max", "Qc2min",
		"Qc2max", "ramp_agc", "ramp_10", "ramp_30", "ramp_q", "apf",
	}
	branchColumns = []string{
		"fbus", "tbus", "r", "x", "b", "rateA", "rateB", "rateC",
		"ratio", "angle", "status", "angmin", "angmax",
	}
)

// tables converts the case to three numeric matrices. The in-memory case
// cross-references buses by dense row index; on disk the tables follow the
// MATPOWER convention of external bus numbers, so the generator bus and
// branch endpoint columns are mapped back through the bus table.
func tables(c *psse.Case) (bus, gen, branch [][]float64) {
	for _, b := range c.Bus {
		bus = append(bus, b.Row())
	}
	for _, g := range c.Gen {
		row := g.Row()
		row[0] = float64(c.Bus[g.Bus].I)
		gen = append(gen, row)
	}
	for _, br := range c.Branch {
		row := br.Row()
		row[0] = float64(c.Bus[br.From].I)
		row[1] = float64(c.Bus[br.To].I)
		branch = append(branch, row)
	}
	return bus, gen, branch
}
