// sniff.go infers the field delimiter and the format revision from the
// first line of a RAW file, for callers that do not supply them.

package psse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultRevision is assumed when the header carries no usable revision.
const DefaultRevision = 30

// SupportedRevisions lists the RAW format revisions this package parses.
var SupportedRevisions = []int{29, 30, 31, 32}

func revisionSupported(rev int) bool {
	for _, r := range SupportedRevisions {
		if r == rev {
			return true
		}
	}
	return false
}

// firstLine rewinds the stream and returns its first line without the
// trailing newline.
func firstLine(r io.ReadSeeker) (string, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding input: %w", err)
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading header line: %w", err)
	}
	if line == "" {
		return "", &FormatError{Line: 1, Msg: "empty input"}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// sniffDelimiter determines whether data items are separated by a comma or
// by one or more blank spaces, using the first line.
//
//	v29-30: IC, SBASE, REV / COMMENT
//	v31-32: IC, SBASE, REV, XFRRAT, NXFRAT, BASFRQ / COMMENT
func sniffDelimiter(r io.ReadSeeker, log *zap.SugaredLogger) (byte, error) {
	line, err := firstLine(r)
	if err != nil {
		return 0, err
	}
	head, _, _ := strings.Cut(line, "/")
	if strings.Contains(head, ",") {
		log.Info("Found comma delimited data items.")
		return ',', nil
	}
	log.Info("Found data items separated by whitespace.")
	return ' ', nil
}

// sniffRevision determines the RAW format revision from the third field of
// the first line, falling back to DefaultRevision when the field is absent
// or names a revision this package does not support.
func sniffRevision(r io.ReadSeeker, sep byte, log *zap.SugaredLogger) (int, error) {
	line, err := firstLine(r)
	if err != nil {
		return 0, err
	}
	h0 := splitFields(line, sep)
	if len(h0) < 3 {
		log.Infof("No version info found, assuming version %d.", DefaultRevision)
		return DefaultRevision, nil
	}

	field := h0[2]
	if head, _, found := strings.Cut(field, "/"); found {
		field = strings.TrimSpace(head)
	}
	rev, err := strconv.Atoi(field)
	if err != nil {
		log.Warnf("Unreadable version field [%s], assuming version %d.", h0[2], DefaultRevision)
		return DefaultRevision, nil
	}
	log.Infof("Version %d data found.", rev)
	if !revisionSupported(rev) {
		log.Warnf("Version %d data not currently supported. Supported versions are: %v "+
			"Attempting to parse file as version %d data.", rev, SupportedRevisions, DefaultRevision)
		return DefaultRevision, nil
	}
	return rev, nil
}
