package types

// Entity is a document element that can hold a generated identifier.
// Implementations must be pointer types so that two references to the same
// element compare equal; the uniqueness resolver relies on identity
// comparison to recognize an identifier already held by its own owner.
type Entity interface {
	// Kind reports the element kind, e.g. "text", "radio" or "group".
	Kind() string

	// Name reports the declared element name, or "" when it has none.
	Name() string

	// Value reports the declared element value, or "" when it has none.
	Value() string

	// Parent returns the enclosing entity, or nil at the document root.
	Parent() Entity

	// Document returns the owning document, or nil for a detached entity.
	Document() Document
}

// Lookup reports the entity currently holding an identifier, or nil when the
// identifier is unassigned. A Lookup must reflect the live state of the
// owning document at call time; results are never cached across calls.
type Lookup func(id string) Entity

// Document exposes the document-level capabilities consumed by identifier
// generation.
type Document interface {
	// Mode classifies the document's schema declaration.
	Mode() DocumentMode

	// Owner is the document's live identifier lookup.
	Owner(id string) Entity

	// Labels returns all entities declaring an association ("for this
	// identifier") with id, in document order.
	Labels(id string) []Entity
}
