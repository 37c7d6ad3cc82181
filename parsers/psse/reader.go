// reader.go implements the shared row cursor that all section readers
// consume from, and the delimiter-aware field splitting.

package psse

import (
	"bufio"
	"io"
	"strings"
)

// cursor reads one delimited row at a time from the RAW file. There is
// exactly one cursor per parse; every section reader advances the same
// cursor so the sections stay aligned with the file.
type cursor struct {
	scanner *bufio.Scanner
	sep     byte
	line    int // 1-based number of the last row read
}

func newCursor(r io.Reader, sep byte) *cursor {
	return &cursor{scanner: bufio.NewScanner(r), sep: sep}
}

// next returns the fields of the next row, or io.EOF when the input is
// exhausted.
func (c *cursor) next() ([]string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	c.line++
	return splitFields(strings.TrimRight(c.scanner.Text(), "\r"), c.sep), nil
}

// splitFields splits one row into fields. Comma-delimited rows keep empty
// fields and have surrounding whitespace trimmed; whitespace-delimited rows
// collapse consecutive separators, since columns may be aligned with runs
// of spaces. Single-quoted values (PSS/E quotes names with ') group into a
// single field even when they contain the delimiter; the quotes are kept
// and stripped by the consumer.
func splitFields(line string, sep byte) []string {
	var fields []string
	var b strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case !inQuote && sep == ',' && ch == ',':
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		case !inQuote && sep != ',' && (ch == ' ' || ch == '\t'):
			if b.Len() > 0 {
				fields = append(fields, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(ch)
		}
	}

	if sep == ',' {
		fields = append(fields, strings.TrimSpace(b.String()))
	} else if b.Len() > 0 {
		fields = append(fields, b.String())
	}
	return fields
}

// isTerminator reports whether a row ends its section: the first field,
// with any trailing /-comment removed, is the literal "0".
func isTerminator(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first, _, _ := strings.Cut(row[0], "/")
	return strings.TrimSpace(first) == "0"
}
