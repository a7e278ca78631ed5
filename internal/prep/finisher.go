package prep

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/plainsdata/licenseprep/internal/frame"
)

// titleColumns are re-cased on every pass; sources disagree on casing and
// the corpus needs one convention.
var titleColumns = []string{ColFirstName, ColMiddleName, ColLastName, ColStreet, ColCity}

// titleCase uppercases every letter that follows a non-letter and
// lowercases the rest. The boundary rule matters for the surnames this
// data is full of: an apostrophe or hyphen starts a new word, so O'BRIEN
// becomes O'Brien and smith-jones becomes Smith-Jones. Word-segmentation
// casers (UAX#29) treat an apostrophe between letters as word-internal and
// would produce O'brien instead.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Finish applies the shared cleanup pass to a frame whose columns have
// already been renamed to the standard name set, and returns it shaped to
// exactly the ten standard columns:
//
//  1. strip leading/trailing whitespace from every cell
//  2. left-pad Zip with zeros to 5 characters
//  3. title-case name, street, and city columns
//  4. drop exact-duplicate rows within the frame
//  5. set Hunt/Fish from the source file's folder (see Categorize)
//  6. reindex to the fixed standard column order
//
// Every step is idempotent, so finishing already-finished data is a no-op.
// Hunt and Fish stay independent per file: a person holding both permit
// types shows up once per category folder, as two rows. An empty frame
// passes through as an empty, correctly-shaped frame.
func Finish(f *frame.Frame, path string) (*frame.Frame, error) {
	f.MapAll(strings.TrimSpace)

	if err := f.Map(ColZip, zipPad); err != nil {
		return nil, fmt.Errorf("finishing %s: %w", path, err)
	}
	for _, col := range titleColumns {
		if err := f.Map(col, titleCase); err != nil {
			return nil, fmt.Errorf("finishing %s: %w", path, err)
		}
	}

	f.DropDuplicates()

	cat := Categorize(path)
	f.SetColumn(ColHunt, flagValue(cat.Hunt))
	f.SetColumn(ColFish, flagValue(cat.Fish))

	// Reindex drops leftover extras and fills standard columns the source
	// never had (Suffix, for most states) with empty strings.
	f.Reindex(StandardColumns)
	return f, nil
}

func flagValue(set bool) string {
	if set {
		return FlagSet
	}
	return ""
}

// zipPad left-pads a zip code with zeros to 5 characters. Values of 5 or
// more characters pass through untouched; zips are strings, never numbers,
// and are never truncated or validated here.
func zipPad(zip string) string {
	for len(zip) < 5 {
		zip = "0" + zip
	}
	return zip
}
