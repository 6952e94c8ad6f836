package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for a dataset path whose extension has no loader.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// DataFormatError reports a dataset that cannot be loaded as tourism records.
// Row is the 1-based data row (header excluded), 0 when the problem is not
// tied to a row.
type DataFormatError struct {
	Source string
	Row    int
	Column string
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %s", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DataFormatError) Unwrap() error { return e.Err }
