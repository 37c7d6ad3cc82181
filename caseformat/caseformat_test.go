package caseformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/avaropoint/psse2case/parsers/psse"
)

// testCase is a two-bus case with one generator and one branch, wired the
// way the parser wires them: generator and branch columns hold dense row
// indices into Bus.
func testCase() *psse.Case {
	return &psse.Case{
		BaseMVA: 100,
		Bus: []psse.Bus{
			{I: 101, Type: psse.BusRef, BaseKV: 135, Area: 1, Zone: 1, Vm: 1.0, Vmax: 1.1, Vmin: 0.9},
			{I: 102, Type: psse.BusPQ, Pd: 90, Qd: 30, BaseKV: 135, Area: 1, Zone: 1, Vm: 1.0, Vmax: 1.1, Vmin: 0.9},
		},
		Gen: []psse.Gen{
			{Bus: 0, Pg: 50, Qmax: 30, Qmin: -30, Vg: 1.0, MBase: 100, Status: 1, Pmax: 200, Pmin: 20},
		},
		Branch: []psse.Branch{
			{From: 0, To: 1, R: 0.01, X: 0.05, B: 0.02, RateA: 100, Status: 1, AngMin: -360, AngMax: 360},
		},
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"case.m", "MATPOWER case"},
		{"out/case.M", "MATPOWER case"},
		{"case.csv", "CSV tables"},
		{"case.xlsx", "Excel workbook"},
	}
	for _, tt := range tests {
		w, err := ForPath(tt.path)
		if err != nil {
			t.Fatalf("ForPath(%q): %v", tt.path, err)
		}
		if w.Name() != tt.want {
			t.Errorf("ForPath(%q) = %s, want %s", tt.path, w.Name(), tt.want)
		}
	}
}

func TestForPathUnknown(t *testing.T) {
	_, err := ForPath("case.mat")
	if err == nil {
		t.Fatal("ForPath(case.mat) succeeded, want an error")
	}
	if !strings.Contains(err.Error(), ".m") {
		t.Errorf("error %q does not list the known extensions", err)
	}
}

func TestMatpowerWrite(t *testing.T) {
	w, err := ForPath("case.m")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := w.Write(&buf, testCase()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"function mpc = mpc_case",
		"mpc.version = '2';",
		"mpc.baseMVA = 100;",
		"mpc.bus = [",
		"mpc.gen = [",
		"mpc.branch = [",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Bus rows carry all 13 columns.
	busBlock := out[strings.Index(out, "mpc.bus = [") : strings.Index(out, "mpc.gen = [")]
	busRows := 0
	for _, line := range strings.Split(busBlock, "\n") {
		if !strings.HasPrefix(line, "\t") {
			continue
		}
		busRows++
		if n := len(strings.Fields(line)); n != 13 {
			t.Errorf("bus row has %d columns, want 13: %q", n, line)
		}
	}
	if busRows != 2 {
		t.Errorf("bus matrix has %d rows, want 2", busRows)
	}

	// Generator and branch endpoints are external bus numbers on disk.
	if !strings.Contains(out, "\t101\t50\t") {
		t.Error("generator row does not start with the external bus number")
	}
	if !strings.Contains(out, "\t101\t102\t0.01\t") {
		t.Error("branch row does not carry external endpoint numbers")
	}
}

func TestCSVWrite(t *testing.T) {
	w, err := ForPath("case.csv")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := w.Write(&buf, testCase()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "baseMVA,100\n") {
		t.Errorf("output does not start with the baseMVA row: %q", out[:min(len(out), 40)])
	}
	for _, want := range []string{"\nbus\n", "\ngen\n", "\nbranch\n", "bus_i,type,Pd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestXLSXWrite(t *testing.T) {
	w, err := ForPath("case.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := w.Write(&buf, testCase()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	for sheet, wantRows := range map[string]int{"bus": 3, "gen": 2, "branch": 2} {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("GetRows(%s): %v", sheet, err)
		}
		if len(rows) != wantRows {
			t.Errorf("sheet %s has %d rows, want %d (header + data)", sheet, len(rows), wantRows)
		}
	}

	v, err := f.GetCellValue("case", "B1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if v != "100" {
		t.Errorf("case!B1 = %q, want 100", v)
	}
}
