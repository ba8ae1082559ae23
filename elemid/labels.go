package elemid

import "github.com/docforge/elemid/types"

// LabelsFor returns the entities in doc declaring an association with id, in
// document order.
func LabelsFor(doc types.Document, id string) []types.Entity {
	return doc.Labels(id)
}

// Labels returns the entities declaring an association with the generated
// identifier. Calling Labels resolves the identifier if it has not been
// resolved yet.
func (g *Generator) Labels() []types.Entity {
	return g.cfg.doc.Labels(g.ID())
}
