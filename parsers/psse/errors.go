package psse

import "fmt"

// FormatError indicates the input does not have the structural shape of a
// PSS/E RAW file. It is fatal: the parse aborts immediately.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
