package document

import (
	"github.com/google/uuid"

	"github.com/docforge/elemid/types"
)

// Node is an element of a Document tree. Nodes implement types.Entity and,
// being pointers, compare by identity as the uniqueness resolver requires.
type Node struct {
	uuid     string
	kind     string
	name     string
	value    string
	attrs    map[string]string
	id       string
	doc      *Document
	parent   *Node
	children []*Node
}

// NewNode creates a detached node of the given kind.
func NewNode(kind string) *Node {
	return &Node{
		uuid:  uuid.NewString(),
		kind:  kind,
		attrs: make(map[string]string),
	}
}

// UUID returns the node's stable internal identifier. It never changes and
// is unrelated to the generated identifier.
func (n *Node) UUID() string { return n.uuid }

// Kind reports the element kind.
func (n *Node) Kind() string { return n.kind }

// Name reports the declared element name, or "".
func (n *Node) Name() string { return n.name }

// SetName sets the declared element name.
func (n *Node) SetName(name string) { n.name = name }

// Value reports the declared element value, or "".
func (n *Node) Value() string { return n.value }

// SetValue sets the declared element value.
func (n *Node) SetValue(value string) { n.value = value }

// ID returns the identifier currently assigned to the node, or "".
func (n *Node) ID() string { return n.id }

// SetID assigns an identifier to the node, making it the owner of that
// identifier in the document's identifier space. An empty id releases the
// node's identifier.
func (n *Node) SetID(id string) { n.id = id }

// Attr returns the named attribute, or "".
func (n *Node) Attr(key string) string { return n.attrs[key] }

// SetAttr sets the named attribute.
func (n *Node) SetAttr(key, value string) { n.attrs[key] = value }

// For reports the identifier this node declares an association with, or "".
func (n *Node) For() string { return n.attrs["for"] }

// SetFor declares an association with the given identifier.
func (n *Node) SetFor(id string) { n.attrs["for"] = id }

// Parent returns the enclosing entity, or nil at the document root.
func (n *Node) Parent() types.Entity {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Document returns the owning document, or nil for a detached node.
func (n *Node) Document() types.Document {
	if n.doc == nil {
		return nil
	}
	return n.doc
}

// Children returns the node's direct children in document order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first. The child subtree joins n's document. Returns the
// child for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	child.Detach()
	child.parent = n
	child.adopt(n.doc)
	n.children = append(n.children, child)
	return child
}

// Detach removes the node from its parent and document. Identifiers held by
// the detached subtree leave the document's identifier space immediately.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.adopt(nil)
}

// adopt propagates document ownership through the subtree.
func (n *Node) adopt(doc *Document) {
	n.doc = doc
	for _, c := range n.children {
		c.adopt(doc)
	}
}

// walk visits n and its descendants depth-first in document order. Returning
// false from fn stops the walk.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
