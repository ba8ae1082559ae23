package elemid

import (
	"strconv"

	"github.com/docforge/elemid/types"
)

// ResolveUnique normalizes candidate and then searches the document's live
// identifier space for the first identifier that is either unassigned or
// already held by owner itself. owner may be nil, meaning generation is
// bound to the document rather than a concrete entity; every existing
// assignment then counts as a collision.
//
// Suffixes are tried in strictly increasing order starting at 1, with no gap
// filling, so repeated runs against an unchanged identifier space reproduce
// the same result. The search carries no upper bound; a lookup over a finite
// identifier space bounds it implicitly.
func ResolveUnique(candidate string, owner types.Entity, lookup types.Lookup, mode types.DocumentMode, fallback, separator string) string {
	base := Normalize(candidate, mode, fallback, separator)

	attempt := base
	for counter := 1; ; counter++ {
		holder := lookup(attempt)
		if holder == nil || (owner != nil && holder == owner) {
			return attempt
		}
		attempt = base + separator + strconv.Itoa(counter)
	}
}
