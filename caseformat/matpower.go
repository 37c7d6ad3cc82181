// matpower.go writes the case as a MATPOWER case file: a MATLAB function
// returning an mpc struct with the baseMVA scalar and the three matrices.

package caseformat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/avaropoint/psse2case/parsers/psse"
)

func init() {
	Register(&matpowerWriter{})
}

type matpowerWriter struct{}

func (*matpowerWriter) Name() string {
	return "MATPOWER case"
}

func (*matpowerWriter) Extensions() []string {
	return []string{".m"}
}

func (*matpowerWriter) Write(w io.Writer, c *psse.Case) error {
	bw := bufio.NewWriter(w)
	bus, gen, branch := tables(c)

	bw.WriteString("function mpc = mpc_case\n")
	bw.WriteString("%MPC_CASE  Power flow data converted from PSS/E RAW format.\n\n")
	bw.WriteString("%% MATPOWER Case Format : Version 2\nmpc.version = '2';\n\n")

	bw.WriteString("%% system MVA base\nmpc.baseMVA = " + num(c.BaseMVA) + ";\n\n")

	writeMatrix(bw, "bus", busColumns, bus)
	writeMatrix(bw, "gen", genColumns, gen)
	writeMatrix(bw, "branch", branchColumns, branch)

	return bw.Flush()
}

// writeMatrix emits one mpc matrix with its column-name comment line.
func writeMatrix(bw *bufio.Writer, name string, columns []string, rows [][]float64) {
	bw.WriteString("%% " + name + " data\n%\t")
	for i, col := range columns {
		if i > 0 {
			bw.WriteByte('\t')
		}
		bw.WriteString(col)
	}
	bw.WriteString("\nmpc." + name + " = [\n")
	for _, row := range rows {
		bw.WriteByte('\t')
		for i, v := range row {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(num(v))
		}
		bw.WriteString(";\n")
	}
	bw.WriteString("];\n\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
