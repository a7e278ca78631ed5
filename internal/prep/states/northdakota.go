package states

import (
	"github.com/plainsdata/licenseprep/internal/frame"
	"github.com/plainsdata/licenseprep/internal/prep"
	"github.com/plainsdata/licenseprep/internal/source"
)

func init() {
	prep.Register("North Dakota", NorthDakota)
}

// North Dakota ships xlsx workbooks with no header row. Larger files are
// split across several sheets, ordered alphabetically by last name, each
// with the same seven columns.
var northDakotaColumns = []string{
	prep.ColLastName,
	prep.ColFirstName,
	prep.ColMiddleName,
	prep.ColStreet,
	prep.ColCity,
	prep.ColState,
	prep.ColZip,
}

// NorthDakota standardizes one North Dakota workbook, concatenating all of
// its sheets.
func NorthDakota(path string) (*frame.Frame, error) {
	f, err := source.ReadWorkbook(path, northDakotaColumns)
	if err != nil {
		return nil, err
	}
	return prep.Finish(f, path)
}
