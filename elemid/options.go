package elemid

import (
	"strings"

	"github.com/docforge/elemid/internal/validation"
	"github.com/docforge/elemid/types"
)

// Options configures identifier generation. Zero values mean "derive from
// the owner": the kind comes from the element, the name from the element or
// its nearest enclosing group, and uniqueness from whether a concrete owner
// entity is present.
type Options struct {
	// Name overrides the element's declared name.
	Name string

	// Value overrides the element's declared value. Values only take part in
	// the candidate for choice kinds (see ChoiceKinds).
	Value string

	// Kind overrides the element kind.
	Kind string

	// Prefix is joined ahead of the name with the separator.
	Prefix string

	// Separator joins candidate parts and uniqueness suffixes. Must point at
	// one of "_", "-" or ""; nil selects DefaultSeparator.
	Separator *string

	// Fallback substitutes for candidates that sanitize to nothing, and
	// prefixes legacy identifiers that start with a non-letter. It must
	// itself be a legacy-valid identifier; "" selects DefaultFallback.
	Fallback string

	// Unique forces or suppresses uniqueness resolution. When nil, resolution
	// runs whenever a concrete owner entity is present or no name could be
	// derived.
	Unique *bool
}

// resolved is the fully-derived generation configuration. All defaulting
// happens once, in resolveOptions; nothing is recomputed afterwards.
type resolved struct {
	name      string
	value     string
	kind      string
	prefix    string
	separator string
	fallback  string
	unique    bool
	doc       types.Document
	owner     types.Entity // nil when generation is document-bound
}

// resolveOptions classifies the owner, fills every defaulted field and
// validates the configuration. Errors surface here, at construction time.
func resolveOptions(owner interface{}, opts Options) (resolved, error) {
	doc, entity, err := validation.ClassifyOwner(owner)
	if err != nil {
		return resolved{}, err
	}

	separator := DefaultSeparator
	if opts.Separator != nil {
		separator = *opts.Separator
	}
	if err := validation.ValidateSeparator(separator); err != nil {
		return resolved{}, err
	}

	fallback := opts.Fallback
	if fallback == "" {
		fallback = DefaultFallback
	}
	if err := validation.ValidateFallback(fallback); err != nil {
		return resolved{}, err
	}

	kind := opts.Kind
	if kind == "" && entity != nil {
		kind = entity.Kind()
	}

	name := opts.Name
	if name == "" && entity != nil {
		name = entity.Name()
	}
	if name == "" && entity != nil && ChoiceKinds[kind] {
		name = groupName(entity)
	}

	value := opts.Value
	if value == "" && entity != nil {
		value = entity.Value()
	}

	unique := entity != nil || name == ""
	if opts.Unique != nil {
		unique = *opts.Unique
	}

	return resolved{
		name:      name,
		value:     value,
		kind:      kind,
		prefix:    opts.Prefix,
		separator: separator,
		fallback:  fallback,
		unique:    unique,
		doc:       doc,
		owner:     entity,
	}, nil
}

// candidate joins the semantic parts into the raw candidate string. The
// value participates only for choice kinds, where siblings share a name and
// differ by value.
func (r resolved) candidate() string {
	parts := make([]string, 0, 3)
	if r.prefix != "" {
		parts = append(parts, r.prefix)
	}
	if r.name != "" {
		parts = append(parts, r.name)
	}
	if r.value != "" && ChoiceKinds[r.kind] {
		parts = append(parts, r.value)
	}
	return strings.Join(parts, r.separator)
}

// groupName walks up the parent chain to the nearest group-kind ancestor and
// borrows its name. The walk terminates at the document root with "".
func groupName(e types.Entity) string {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if GroupKinds[p.Kind()] {
			return p.Name()
		}
	}
	return ""
}
