// Package source reads raw state export files into frames. Each reader
// handles one physical format; it knows nothing about any state's column
// semantics beyond the header row (or the lack of one).
package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/plainsdata/licenseprep/internal/frame"
)

// ReadDelimited reads a delimited text file whose first row is a header.
// Every cell is kept as a string; no type inference is performed.
func ReadDelimited(path string, sep rune) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = sep
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: no header row", path)
	}

	header := records[0]
	for i, h := range header {
		header[i] = CleanHeader(h)
	}

	f, err := frame.FromRows(header, records[1:])
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// CleanHeader normalizes a raw header cell: strips a UTF-8 BOM, surrounding
// whitespace, and the ="..." wrapper some spreadsheet exports emit.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	}
	return s
}
