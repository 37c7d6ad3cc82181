// layout.go maps RAW column positions onto the unified record fields for
// each supported format revision. Section readers never index rows with
// bare revision conditionals; they go through these tables.

package psse

// busLayout gives the source column for each revision-dependent bus field.
// Revisions 29-30 carry the bus shunt on the bus record itself; from 31 on
// it moved to the fixed shunt section, marked here with -1.
//
//	v29-30: I, 'NAME', BASKV, IDE, GL, BL, AREA, ZONE, VM, VA, OWNER
//	v31-32: I, 'NAME', BASKV, IDE, AREA, ZONE, OWNER, VM, VA
type busLayout struct {
	gs, bs int // -1 when absent from the bus record
	area   int
	zone   int
	vm, va int
}

// Columns shared by every supported revision's bus record.
const (
	busNumCol    = 0
	busNameCol   = 1
	busBaseKVCol = 2
	busTypeCol   = 3
)

var busLayouts = map[int]busLayout{
	29: {gs: 4, bs: 5, area: 6, zone: 7, vm: 8, va: 9},
	30: {gs: 4, bs: 5, area: 6, zone: 7, vm: 8, va: 9},
	31: {gs: -1, bs: -1, area: 4, zone: 5, vm: 7, va: 8},
	32: {gs: -1, bs: -1, area: 4, zone: 5, vm: 7, va: 8},
}

// loadLayout gives the source columns of a load record. Identical across
// revisions 29-31; revision 32 appends the SCALE flag.
//
//	v29-31: I, ID, STATUS, AREA, ZONE, PL, QL, IP, IQ, YP, YQ, OWNER
//	v32:    I, ID, STATUS, AREA, ZONE, PL, QL, IP, IQ, YP, YQ, OWNER, SCALE
type loadLayout struct {
	status int
	pl, ql int
	ip, iq int
	yp, yq int
	scale  int // -1 when absent
}

var loadLayouts = map[int]loadLayout{
	29: {status: 2, pl: 5, ql: 6, ip: 7, iq: 8, yp: 9, yq: 10, scale: -1},
	30: {status: 2, pl: 5, ql: 6, ip: 7, iq: 8, yp: 9, yq: 10, scale: -1},
	31: {status: 2, pl: 5, ql: 6, ip: 7, iq: 8, yp: 9, yq: 10, scale: -1},
	32: {status: 2, pl: 5, ql: 6, ip: 7, iq: 8, yp: 9, yq: 10, scale: 12},
}

// Generator record columns. The captured fields sit at the same positions
// in all supported revisions (31-32 only append wind-machine fields after
// the owner list).
//
//	I, ID, PG, QG, QT, QB, VS, IREG, MBASE, ZR, ZX, RT, XT, GTAP, STAT,
//	RMPCT, PT, PB, O1, F1, ..., O4, F4 [, WMOD, WPF]
const (
	genBusCol    = 0
	genPgCol     = 2
	genQgCol     = 3
	genQmaxCol   = 4
	genQminCol   = 5
	genVgCol     = 6
	genMBaseCol  = 8
	genStatusCol = 14
	genPmaxCol   = 16
	genPminCol   = 17
)

// Non-transformer branch record columns. The captured fields sit at the
// same positions in all supported revisions (31-32 insert MET after ST).
//
//	I, J, CKT, R, X, B, RATEA, RATEB, RATEC, GI, BI, GJ, BJ, ST [, MET], LEN, ...
const (
	brFromCol   = 0
	brToCol     = 1
	brRCol      = 3
	brXCol      = 4
	brBCol      = 5
	brRateACol  = 6
	brRateBCol  = 7
	brRateCCol  = 8
	brStatusCol = 13
)
