// Package prep builds the standardized license-holder corpus. Each state's
// source files are reshaped by a registered transform, finished by a common
// cleanup pass, and folded into one dataset per state and then across
// states.
package prep

import "github.com/plainsdata/licenseprep/internal/frame"

// Standard column names. Every finished frame has exactly these columns,
// in the order of StandardColumns.
const (
	ColFirstName  = "FirstName"
	ColMiddleName = "MiddleName"
	ColLastName   = "LastName"
	ColSuffix     = "Suffix"
	ColStreet     = "Street"
	ColCity       = "City"
	ColState      = "State"
	ColZip        = "Zip"
	ColHunt       = "Hunt"
	ColFish       = "Fish"
)

// StandardColumns is the fixed output column order.
var StandardColumns = []string{
	ColFirstName, ColMiddleName, ColLastName, ColSuffix,
	ColStreet, ColCity, ColState, ColZip, ColHunt, ColFish,
}

// FlagSet is the value a Hunt or Fish cell takes when the record's source
// file sits under the matching category folder; otherwise the cell is empty.
const FlagSet = "Y"

// Transform reads one state's source file and returns a frame whose
// columns are already renamed to the standard name set. Implementations
// must delegate final shaping to Finish, passing the same path so records
// are categorized by the folder the file lives in.
type Transform func(path string) (*frame.Frame, error)
