package states

import (
	"github.com/plainsdata/licenseprep/internal/frame"
	"github.com/plainsdata/licenseprep/internal/prep"
	"github.com/plainsdata/licenseprep/internal/source"
)

func init() {
	prep.Register("Nebraska", Nebraska)
}

// nebraskaSchema maps Nebraska's tab-separated exports onto the standard
// column set. Files are categorized by folder, so the per-permit columns
// carry nothing the corpus needs; Sex and email show up in only some
// files.
var nebraskaSchema = prep.SourceSchema{
	Drop:          []string{"permitYear", "Permit Type", "FullName"},
	DropIfPresent: []string{"Sex", "email"},
	Rename: map[string]string{
		"firstName":  prep.ColFirstName,
		"middleName": prep.ColMiddleName,
		"lastName":   prep.ColLastName,
		"street":     prep.ColStreet,
		"city":       prep.ColCity,
		"state":      prep.ColState,
		"zip":        prep.ColZip,
	},
}

// Nebraska standardizes one Nebraska source file: tab-separated text with
// a header row.
func Nebraska(path string) (*frame.Frame, error) {
	f, err := source.ReadDelimited(path, '\t')
	if err != nil {
		return nil, err
	}
	if err := nebraskaSchema.Apply(f); err != nil {
		return nil, err
	}
	return prep.Finish(f, path)
}
