package prep

import (
	"fmt"

	"github.com/plainsdata/licenseprep/internal/frame"
)

// SourceSchema declares a state's column contract statically: which raw
// columns must be present and are discarded, which are discarded only when
// a file happens to carry them, and how the rest map to standard names.
// Keeping the optional list explicit here beats existence checks scattered
// through each transform.
type SourceSchema struct {
	// Drop lists administrative columns every file of this state must
	// carry. A file missing one is malformed and fails the transform.
	Drop []string

	// DropIfPresent lists columns only some files carry (e.g. a sex or
	// email field). They are removed when present and ignored otherwise.
	DropIfPresent []string

	// Rename maps raw column names to standard names.
	Rename map[string]string
}

// Apply reshapes f in place according to the schema. A missing Drop or
// Rename column is a fatal mapping error: silently skipping it would
// produce a corpus with wrong columns.
func (s SourceSchema) Apply(f *frame.Frame) error {
	for _, col := range s.Drop {
		if err := f.Drop(col); err != nil {
			return fmt.Errorf("required column %q missing", col)
		}
	}
	f.DropIfPresent(s.DropIfPresent...)
	if err := f.Rename(s.Rename); err != nil {
		return fmt.Errorf("renaming columns: %w", err)
	}
	return nil
}
