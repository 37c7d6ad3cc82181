// psse.go is the parse entry point: it sniffs the delimiter and revision
// (unless supplied), rewinds, and runs the section readers in the fixed,
// revision-dependent order over one shared cursor.

package psse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Options controls a parse. Zero values mean "determine from the file":
// the delimiter and revision are sniffed from the first line, and logging
// is discarded.
type Options struct {
	// Revision forces a RAW format revision instead of sniffing one.
	// Values outside SupportedRevisions fall back to DefaultRevision
	// with a warning.
	Revision int

	// Delimiter forces the field separator (',' or ' ') instead of
	// sniffing one.
	Delimiter byte

	// Logger receives informational counts and the non-fatal warnings
	// (unresolved buses, unrepresentable load components, unsupported
	// revisions).
	Logger *zap.SugaredLogger
}

func (o *Options) logger() *zap.SugaredLogger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop().Sugar()
}

// ParseFile opens path and parses it. The file is closed on every return
// path.
func ParseFile(path string, opts *Options) (*Case, error) {
	log := opts.logger()
	log.Infof("Loading PSS/E RAW file [%s].", filepath.Base(path))

	fd, err := os.Open(path)
	if err != nil {
		log.Errorf("Error opening %s.", filepath.Base(path))
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fd.Close()

	return Parse(fd, opts)
}

// Parse reads a RAW data stream and returns the normalized case. The
// stream must be seekable: sniffing consumes the first line and the parse
// restarts from the beginning.
func Parse(r io.ReadSeeker, opts *Options) (*Case, error) {
	log := opts.logger()

	var (
		sep byte
		rev int
		err error
	)
	if opts != nil {
		sep, rev = opts.Delimiter, opts.Revision
	}
	if sep == 0 {
		if sep, err = sniffDelimiter(r, log); err != nil {
			return nil, err
		}
	}
	if rev == 0 {
		if rev, err = sniffRevision(r, sep, log); err != nil {
			return nil, err
		}
	} else if !revisionSupported(rev) {
		log.Warnf("Version %d data not currently supported. Supported versions are: %v "+
			"Attempting to parse file as version %d data.", rev, SupportedRevisions, DefaultRevision)
		rev = DefaultRevision
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	p := &parser{
		cur:    newCursor(r, sep),
		rev:    rev,
		log:    log,
		busIdx: make(map[string]int),
	}

	baseMVA, err := p.parseHeader()
	if err != nil {
		return nil, err
	}

	buses, err := p.parseBuses()
	if err != nil {
		return nil, err
	}
	if err := p.parseLoads(buses); err != nil {
		return nil, err
	}

	// From revision 31 on, bus shunts live in their own section between
	// loads and generators; before that, switched shunts trail the file.
	if rev >= 31 {
		if err := p.skipSection("fixed shunt"); err != nil {
			return nil, err
		}
	}

	gens, err := p.parseGenerators()
	if err != nil {
		return nil, err
	}
	branches, err := p.parseBranches()
	if err != nil {
		return nil, err
	}

	if err := p.skipSection("transformer"); err != nil {
		return nil, err
	}
	if rev <= 30 {
		if err := p.skipSection("switched shunt"); err != nil {
			return nil, err
		}
	}

	return &Case{
		BaseMVA: baseMVA,
		Bus:     buses,
		Gen:     gens,
		Branch:  branches,
	}, nil
}
