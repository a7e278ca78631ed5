package prep

import "strings"

// Category holds the permit-type flags derived from a source file's
// location. The flags are independent: a path under a folder named for
// both categories sets both.
type Category struct {
	Hunt bool
	Fish bool
}

// Categorize derives a file's permit category from its path. The match is
// a plain substring test against the whole path, which is what the
// category-folder convention has always relied on. That means any path
// segment containing "Hunt" or "Fish" triggers the flag, not just the
// immediate category folder; a state root like "Hunterdon" would tag every
// file in it. Callers depend on the current behavior, so hardening the
// match (e.g. to the parent directory name only) has to happen here and
// nowhere else.
func Categorize(path string) Category {
	return Category{
		Hunt: strings.Contains(path, "Hunt"),
		Fish: strings.Contains(path, "Fish"),
	}
}
