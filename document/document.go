// Package document provides an in-memory tree document implementing the
// capabilities consumed by identifier generation: a live identifier lookup,
// schema-mode classification from the doctype, parent traversal for group
// name borrowing, and label association.
package document

import (
	"strings"

	"github.com/docforge/elemid/types"
)

// canonicalSchemaName is the schema name whose bare declaration selects
// strict mode.
const canonicalSchemaName = "html"

// Doctype is the declared schema of a Document.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// Mode classifies the doctype: strict only for a bare canonical declaration
// with no public or system identifiers, legacy for everything else,
// including an absent doctype.
func (d Doctype) Mode() types.DocumentMode {
	if strings.EqualFold(d.Name, canonicalSchemaName) && d.PublicID == "" && d.SystemID == "" {
		return types.ModeStrict
	}
	return types.ModeLegacy
}

// Document owns a node tree and, through the identifiers assigned to its
// nodes, an identifier space. The document is mutable and externally owned;
// identifier generation takes a fresh view of it on every lookup.
//
// A document is not safe for concurrent use. Generation is expected to run
// on the goroutine that also mutates the tree; callers needing more must
// serialize access externally.
type Document struct {
	doctype Doctype
	root    *Node
}

// New creates an empty document with the given doctype. The root node is a
// structural container and never holds an identifier.
func New(doctype Doctype) *Document {
	d := &Document{doctype: doctype}
	d.root = NewNode("root")
	d.root.doc = d
	return d
}

// Doctype returns the document's declared schema.
func (d *Document) Doctype() Doctype { return d.doctype }

// Root returns the document's root node.
func (d *Document) Root() *Node { return d.root }

// Mode classifies the document's schema declaration.
func (d *Document) Mode() types.DocumentMode { return d.doctype.Mode() }

// Owner walks the live tree for the node currently holding id, or nil. Every
// call reflects the tree as it stands; nothing is cached between calls.
func (d *Document) Owner(id string) types.Entity {
	if id == "" {
		return nil
	}
	var found *Node
	d.root.walk(func(n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return found
}

// Labels returns the nodes declaring an association with id, in document
// order.
func (d *Document) Labels(id string) []types.Entity {
	if id == "" {
		return nil
	}
	var out []types.Entity
	d.root.walk(func(n *Node) bool {
		if n.For() == id {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Elements returns every node of the document except the root, in document
// order.
func (d *Document) Elements() []*Node {
	var out []*Node
	d.root.walk(func(n *Node) bool {
		if n != d.root {
			out = append(out, n)
		}
		return true
	})
	return out
}
