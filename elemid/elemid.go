// Package elemid generates deterministic, collision-free identifiers for
// elements of tree-structured documents.
//
// Two pure algorithms compose into the generation pipeline: Normalize
// projects an arbitrary candidate string onto the character set allowed by
// the owning document's schema, and ResolveUnique appends numeric suffixes
// until the identifier is free in the document's live identifier space.
// Generator layers option defaulting, eager validation and memoization on
// top of the two.
package elemid

import "github.com/docforge/elemid/types"

// Aliases for the shared capability types, so embedders can work against the
// elemid package alone.
type (
	Entity       = types.Entity
	Document     = types.Document
	Lookup       = types.Lookup
	DocumentMode = types.DocumentMode
)

// Mode constants re-exported from types.
const (
	ModeStrict = types.ModeStrict
	ModeLegacy = types.ModeLegacy
)

// Generation defaults applied when options leave the fields unset.
const (
	DefaultSeparator = "_"
	DefaultFallback  = "f"
)

// ChoiceKinds lists the element kinds whose declared value takes part in the
// identifier candidate: several sibling choices share one name and are told
// apart by their values.
var ChoiceKinds = map[string]bool{
	"radio":    true,
	"checkbox": true,
	"option":   true,
}

// GroupKinds lists the element kinds that lend their name to unnamed choice
// descendants.
var GroupKinds = map[string]bool{
	"group":    true,
	"optgroup": true,
	"fieldset": true,
}
