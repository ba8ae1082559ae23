package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// docSpec is the YAML form of a document.
type docSpec struct {
	Doctype doctypeSpec `yaml:"doctype"`
	Nodes   []nodeSpec  `yaml:"nodes"`
}

type doctypeSpec struct {
	Name     string `yaml:"name,omitempty"`
	PublicID string `yaml:"public,omitempty"`
	SystemID string `yaml:"system,omitempty"`
}

// nodeSpec mirrors a Node in YAML. Only the kind is required.
type nodeSpec struct {
	Kind  string            `yaml:"kind"`
	Name  string            `yaml:"name,omitempty"`
	Value string            `yaml:"value,omitempty"`
	ID    string            `yaml:"id,omitempty"`
	For   string            `yaml:"for,omitempty"`
	Attrs map[string]string `yaml:"attrs,omitempty"`
	Nodes []nodeSpec        `yaml:"nodes,omitempty"`
}

// Load parses a YAML document tree.
func Load(data []byte) (*Document, error) {
	var spec docSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := New(Doctype{
		Name:     spec.Doctype.Name,
		PublicID: spec.Doctype.PublicID,
		SystemID: spec.Doctype.SystemID,
	})
	for _, ns := range spec.Nodes {
		node, err := buildNode(ns)
		if err != nil {
			return nil, err
		}
		doc.root.AppendChild(node)
	}
	return doc, nil
}

func buildNode(spec nodeSpec) (*Node, error) {
	if spec.Kind == "" {
		return nil, fmt.Errorf("node is missing a kind")
	}
	n := NewNode(spec.Kind)
	n.SetName(spec.Name)
	n.SetValue(spec.Value)
	n.SetID(spec.ID)
	for k, v := range spec.Attrs {
		n.SetAttr(k, v)
	}
	if spec.For != "" {
		n.SetFor(spec.For)
	}
	for _, child := range spec.Nodes {
		cn, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		n.AppendChild(cn)
	}
	return n, nil
}

// Dump serializes the document back to YAML, including any identifiers
// assigned since loading.
func (d *Document) Dump() ([]byte, error) {
	spec := docSpec{
		Doctype: doctypeSpec{
			Name:     d.doctype.Name,
			PublicID: d.doctype.PublicID,
			SystemID: d.doctype.SystemID,
		},
	}
	for _, child := range d.root.children {
		spec.Nodes = append(spec.Nodes, dumpNode(child))
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

func dumpNode(n *Node) nodeSpec {
	spec := nodeSpec{
		Kind:  n.kind,
		Name:  n.name,
		Value: n.value,
		ID:    n.id,
		For:   n.For(),
	}
	for k, v := range n.attrs {
		if k == "for" {
			continue
		}
		if spec.Attrs == nil {
			spec.Attrs = make(map[string]string)
		}
		spec.Attrs[k] = v
	}
	for _, child := range n.children {
		spec.Nodes = append(spec.Nodes, dumpNode(child))
	}
	return spec
}
