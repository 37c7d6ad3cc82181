// sections.go holds the per-section readers. Each one loops over the shared
// cursor, stops at the section terminator, and appends (or, for loads,
// mutates) normalized records. Rows that reference a bus missing from the
// bus index table are dropped with an error log, never fatally.

package psse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// parser carries the state shared by the section readers: the single
// cursor, the active revision, the bus index table and the logger.
type parser struct {
	cur    *cursor
	rev    int
	log    *zap.SugaredLogger
	busIdx map[string]int
}

// fields wraps one data row with sticky error handling so section readers
// can extract a whole record before checking a single conversion error.
type fields struct {
	row     []string
	line    int
	section string
	err     error
}

func (f *fields) fail(col int, cause error) {
	if f.err == nil {
		f.err = fmt.Errorf("%s data on line %d, field %d: %w", f.section, f.line, col, cause)
	}
}

func (f *fields) str(col int) string {
	if col >= len(f.row) {
		f.fail(col, fmt.Errorf("row has only %d fields", len(f.row)))
		return ""
	}
	return f.row[col]
}

func (f *fields) float(col int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.str(col)), 64)
	if err != nil && f.err == nil {
		f.fail(col, err)
	}
	return v
}

func (f *fields) int(col int) int {
	// RAW integer fields occasionally appear with a decimal point.
	return int(f.float(col))
}

// nextRow reads one row for the named section, mapping EOF to a structural
// error: every section must end with its terminator.
func (p *parser) nextRow(section string) ([]string, error) {
	row, err := p.cur.next()
	if err == io.EOF {
		return nil, fmt.Errorf("unexpected end of file in %s data", section)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s data: %w", section, err)
	}
	return row, nil
}

// resolveBus maps a raw bus reference (number or quoted name) to its dense
// row index. A miss is logged and reported, not fatal.
func (p *parser) resolveBus(ref string) (int, bool) {
	key := strings.Trim(ref, "'")
	idx, ok := p.busIdx[key]
	if !ok {
		p.log.Errorf("Bus [%s] not found.", key)
	}
	return idx, ok
}

// parseHeader consumes the three header rows and returns the system base
// power. The first field of the first row must be the change-code literal
// "0" or "1"; anything else means the file is not RAW data.
func (p *parser) parseHeader() (float64, error) {
	h0, err := p.nextRow("header")
	if err != nil {
		return 0, err
	}
	for i := 0; i < 2; i++ {
		if _, err := p.nextRow("header"); err != nil {
			return 0, err
		}
	}

	f := &fields{row: h0, line: 1, section: "header"}
	if ic := f.str(0); ic != "0" && ic != "1" {
		return 0, &FormatError{Line: 1, Msg: fmt.Sprintf("expected change code 0 or 1, found [%s]", ic)}
	}
	baseMVA := f.float(1)
	if f.err != nil {
		return 0, f.err
	}
	return baseMVA, nil
}

// parseBuses reads the bus section, assigning each bus a dense row index
// and registering both its number and its quote-stripped name in the bus
// index table.
func (p *parser) parseBuses() ([]Bus, error) {
	lay := busLayouts[p.rev]
	var buses []Bus

	for {
		row, err := p.nextRow("bus")
		if err != nil {
			return nil, err
		}
		if isTerminator(row) {
			break
		}

		f := &fields{row: row, line: p.cur.line, section: "bus"}
		id := f.str(busNumCol)
		name := strings.Trim(f.str(busNameCol), "'")

		b := Bus{
			I:      f.int(busNumCol),
			Type:   f.int(busTypeCol),
			BaseKV: f.float(busBaseKVCol),
			Area:   f.int(lay.area),
			Zone:   f.int(lay.zone),
			Vm:     f.float(lay.vm),
			Va:     f.float(lay.va),
			Vmax:   1.1,
			Vmin:   0.9,
		}
		if lay.gs >= 0 {
			b.Gs = f.float(lay.gs)
			b.Bs = f.float(lay.bs)
		}
		if f.err != nil {
			return nil, f.err
		}

		p.busIdx[id] = len(buses)
		p.busIdx[name] = len(buses)
		buses = append(buses, b)
	}

	p.log.Infof("%d buses found.", len(buses))
	return buses, nil
}

// parseLoads reads the load section and writes each in-service load's PL/QL
// onto its bus record. Constant-current and constant-admittance components
// have no slot in the unified bus record and are dropped with a warning, as
// is a revision-32 scale flag that is neither 0 nor 1.
func (p *parser) parseLoads(buses []Bus) error {
	lay := loadLayouts[p.rev]
	count := 0

	for {
		row, err := p.nextRow("load")
		if err != nil {
			return err
		}
		if isTerminator(row) {
			break
		}
		count++

		f := &fields{row: row, line: p.cur.line, section: "load"}
		ref := f.str(0)
		status := strings.TrimSpace(f.str(lay.status))
		if f.err != nil {
			return f.err
		}
		inService := status != "" && status != "0"
		idx, ok := p.resolveBus(ref)
		if !inService || !ok {
			continue
		}

		pl := f.float(lay.pl)
		ql := f.float(lay.ql)
		ip, iq := f.float(lay.ip), f.float(lay.iq)
		yp, yq := f.float(lay.yp), f.float(lay.yq)
		if f.err != nil {
			return f.err
		}

		buses[idx].Pd = pl
		buses[idx].Qd = ql

		if ip != 0 || iq != 0 {
			p.log.Warnf("Constant current load of %.2fMW (%.2fMVAr) at bus %s (%d) ignored.", ip, iq, ref, idx)
		}
		if yp != 0 || yq != 0 {
			p.log.Warnf("Constant admittance load of %.2fMW (%.2fMVAr) at bus %s (%d) ignored.", yp, yq, ref, idx)
		}
		if lay.scale >= 0 {
			scale := f.float(lay.scale)
			if f.err != nil {
				return f.err
			}
			if scale != 0 && scale != 1 {
				p.log.Warnf("Load at bus %s (%d) not scaled by %.2f.", ref, idx, scale)
			}
		}
	}

	p.log.Infof("%d loads found.", count)
	return nil
}

// parseGenerators reads the generator section. Rows whose bus reference
// does not resolve are dropped.
func (p *parser) parseGenerators() ([]Gen, error) {
	var gens []Gen
	count := 0

	for {
		row, err := p.nextRow("generator")
		if err != nil {
			return nil, err
		}
		if isTerminator(row) {
			break
		}
		count++

		f := &fields{row: row, line: p.cur.line, section: "generator"}
		idx, ok := p.resolveBus(f.str(genBusCol))
		if !ok {
			continue
		}

		g := Gen{
			Bus:    idx,
			Pg:     f.float(genPgCol),
			Qg:     f.float(genQgCol),
			Qmax:   f.float(genQmaxCol),
			Qmin:   f.float(genQminCol),
			Vg:     f.float(genVgCol),
			MBase:  f.float(genMBaseCol),
			Status: f.int(genStatusCol),
			Pmax:   f.float(genPmaxCol),
			Pmin:   f.float(genPminCol),
		}
		if f.err != nil {
			return nil, f.err
		}
		gens = append(gens, g)
	}

	p.log.Infof("%d generators found.", count)
	return gens, nil
}

// parseBranches reads the non-transformer branch section. A row is kept
// only when both endpoint buses resolve; From and To carry the dense row
// indices, not the external bus numbers.
func (p *parser) parseBranches() ([]Branch, error) {
	var branches []Branch
	count := 0

	for {
		row, err := p.nextRow("branch")
		if err != nil {
			return nil, err
		}
		if isTerminator(row) {
			break
		}
		count++

		f := &fields{row: row, line: p.cur.line, section: "branch"}
		from, okFrom := p.resolveBus(f.str(brFromCol))
		to, okTo := p.resolveBus(f.str(brToCol))
		if !okFrom || !okTo {
			continue
		}

		br := Branch{
			From:   from,
			To:     to,
			R:      f.float(brRCol),
			X:      f.float(brXCol),
			B:      f.float(brBCol),
			RateA:  f.float(brRateACol),
			RateB:  f.float(brRateBCol),
			RateC:  f.float(brRateCCol),
			Status: f.int(brStatusCol),
			AngMin: -360,
			AngMax: 360,
		}
		if f.err != nil {
			return nil, f.err
		}
		branches = append(branches, br)
	}

	p.log.Infof("%d branches found.", count)
	return branches, nil
}

// skipSection reads and discards the named section up to its terminator so
// the shared cursor stays aligned for whatever follows. The trailing
// sections may legitimately run to end of file, so EOF ends the skip too.
func (p *parser) skipSection(section string) error {
	count := 0
	for {
		row, err := p.cur.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s data: %w", section, err)
		}
		if isTerminator(row) {
			break
		}
		count++
	}
	if count > 0 {
		p.log.Infof("%d %s records skipped (not converted).", count, section)
	}
	return nil
}
