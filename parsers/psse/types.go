// Package psse parses PSS/E RAW power-flow data files (format revisions
// 29 through 32) into a normalized case: a system base power plus uniform
// bus, generator and branch tables. Sections the RAW format carries beyond
// those (transformers, shunts, areas, ...) are read past but not converted.
package psse

// Bus type codes as they appear in the unified bus table.
const (
	BusPQ       = 1 // load bus
	BusPV       = 2 // generator bus
	BusRef      = 3 // reference (swing) bus
	BusIsolated = 4
)

// Bus is one row of the unified bus table. Pd and Qd start at zero and are
// filled in from the load section; Vmax and Vmin have no RAW-format source
// and always carry the 1.1 / 0.9 p.u. defaults.
type Bus struct {
	I      int     // external bus number
	Type   int     // bus type code
	Pd     float64 // real power demand, MW
	Qd     float64 // reactive power demand, MVAr
	Gs     float64 // shunt conductance, MW at 1.0 p.u.
	Bs     float64 // shunt susceptance, MVAr at 1.0 p.u.
	Area   int
	Vm     float64 // voltage magnitude, p.u.
	Va     float64 // voltage angle, degrees
	BaseKV float64
	Zone   int
	Vmax   float64 // p.u.
	Vmin   float64 // p.u.
}

// Gen is one row of the unified generator table. Bus is the dense row index
// into Case.Bus, not the external bus number. The capability-curve and
// ramp-rate fields have no RAW-format source and stay zero.
type Gen struct {
	Bus    int     // row index into Case.Bus
	Pg     float64 // real power output, MW
	Qg     float64 // reactive power output, MVAr
	Qmax   float64
	Qmin   float64
	Vg     float64 // voltage setpoint, p.u.
	MBase  float64 // machine base, MVA
	Status int
	Pmax   float64
	Pmin   float64

	Pc1, Pc2        float64
	Qc1min, Qc1max  float64
	Qc2min, Qc2max  float64
	RampAGC, Ramp10 float64
	Ramp30, RampQ   float64
	APF             float64
}

// Branch is one row of the unified branch table. From and To are dense row
// indices into Case.Bus. Ratio and Angle stay zero for non-transformer
// branches; the angle limits carry the open +/-360 degree defaults.
type Branch struct {
	From   int     // row index into Case.Bus
	To     int     // row index into Case.Bus
	R      float64 // resistance, p.u.
	X      float64 // reactance, p.u.
	B      float64 // total line charging susceptance, p.u.
	RateA  float64 // MVA rating A
	RateB  float64
	RateC  float64
	Ratio  float64 // tap ratio, 0 for a line
	Angle  float64 // phase shift, degrees
	Status int
	AngMin float64 // degrees
	AngMax float64 // degrees
}

// Case is the parse result: the system base power and the three tables,
// each in first-seen input order.
type Case struct {
	BaseMVA float64
	Bus     []Bus
	Gen     []Gen
	Branch  []Branch
}

// Row returns the bus record as the standard 13-column numeric row
// (bus_i, type, Pd, Qd, Gs, Bs, area, Vm, Va, baseKV, zone, Vmax, Vmin).
func (b Bus) Row() []float64 {
	return []float64{
		float64(b.I), float64(b.Type), b.Pd, b.Qd, b.Gs, b.Bs,
		float64(b.Area), b.Vm, b.Va, b.BaseKV, float64(b.Zone),
		b.Vmax, b.Vmin,
	}
}

// Row returns the generator record as the standard 21-column numeric row.
func (g Gen) Row() []float64 {
	return []float64{
		float64(g.Bus), g.Pg, g.Qg, g.Qmax, g.Qmin, g.Vg, g.MBase,
		float64(g.Status), g.Pmax, g.Pmin,
		g.Pc1, g.Pc2, g.Qc1min, g.Qc1max, g.Qc2min, g.Qc2max,
		g.RampAGC, g.Ramp10, g.Ramp30, g.RampQ, g.APF,
	}
}

// Row returns the branch record as the standard 13-column numeric row.
func (br Branch) Row() []float64 {
	return []float64{
		float64(br.From), float64(br.To), br.R, br.X, br.B,
		br.RateA, br.RateB, br.RateC, br.Ratio, br.Angle,
		float64(br.Status), br.AngMin, br.AngMax,
	}
}
