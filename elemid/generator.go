package elemid

import "github.com/docforge/elemid/types"

// Generator produces one identifier for one owner. Configuration is resolved
// and validated eagerly at construction; the identifier itself is computed on
// the first call to ID against the document's live identifier space and
// memoized, after which the generator is frozen. A generator carries no
// setters, so there is no mutation to guard against once resolution has
// happened.
//
// Generation is synchronous and expected to run on the goroutine that also
// mutates the document; callers needing concurrent generation must serialize
// it externally.
type Generator struct {
	cfg      resolved
	id       string
	resolved bool
}

// New builds a generator for owner, which must be a Document (generation
// bound to the document only) or an Entity attached to a document. All
// configuration errors and owner type mismatches surface here, never at
// generation time.
func New(owner interface{}, opts Options) (*Generator, error) {
	cfg, err := resolveOptions(owner, opts)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate is a one-shot convenience wrapper around New and Generator.ID.
func Generate(owner interface{}, opts Options) (string, error) {
	g, err := New(owner, opts)
	if err != nil {
		return "", err
	}
	return g.ID(), nil
}

// ID returns the generated identifier. The first call runs the full pipeline
// and memoizes its result; later calls return the same string without
// consulting the document again, even if the identifier space has changed in
// between.
func (g *Generator) ID() string {
	if g.resolved {
		return g.id
	}

	cfg := g.cfg
	candidate := cfg.candidate()
	if cfg.unique {
		g.id = ResolveUnique(candidate, cfg.owner, cfg.doc.Owner, cfg.doc.Mode(), cfg.fallback, cfg.separator)
	} else {
		g.id = Normalize(candidate, cfg.doc.Mode(), cfg.fallback, cfg.separator)
	}
	g.resolved = true
	return g.id
}

// Owner returns the concrete entity the identifier is generated for, or nil
// when generation is bound to the document only.
func (g *Generator) Owner() types.Entity {
	return g.cfg.owner
}

// Document returns the owning document.
func (g *Generator) Document() types.Document {
	return g.cfg.doc
}
