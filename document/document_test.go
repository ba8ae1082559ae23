package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docforge/elemid/types"
)

func TestDoctypeMode(t *testing.T) {
	tests := []struct {
		name    string
		doctype Doctype
		want    types.DocumentMode
	}{
		{"bare canonical name", Doctype{Name: "html"}, types.ModeStrict},
		{"canonical name case-insensitive", Doctype{Name: "HTML"}, types.ModeStrict},
		{"public identifier present", Doctype{Name: "html", PublicID: "-//W3C//DTD HTML 4.01//EN"}, types.ModeLegacy},
		{"system identifier present", Doctype{Name: "html", SystemID: "http://www.w3.org/TR/html4/strict.dtd"}, types.ModeLegacy},
		{"non-canonical name", Doctype{Name: "svg"}, types.ModeLegacy},
		{"absent doctype", Doctype{}, types.ModeLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doctype.Mode(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOwnerReflectsLiveTree(t *testing.T) {
	doc := New(Doctype{Name: "html"})
	field := doc.Root().AppendChild(NewNode("text"))

	if got := doc.Owner("username"); got != nil {
		t.Fatalf("expected no owner before assignment, got %v", got)
	}

	field.SetID("username")
	if got := doc.Owner("username"); got != types.Entity(field) {
		t.Errorf("expected field to own %q, got %v", "username", got)
	}

	field.SetID("login")
	if got := doc.Owner("username"); got != nil {
		t.Errorf("expected %q to be released after reassignment, got %v", "username", got)
	}
	if got := doc.Owner("login"); got != types.Entity(field) {
		t.Errorf("expected field to own %q, got %v", "login", got)
	}

	field.Detach()
	if got := doc.Owner("login"); got != nil {
		t.Errorf("expected detached node to leave the identifier space, got %v", got)
	}

	doc.Root().AppendChild(field)
	if got := doc.Owner("login"); got != types.Entity(field) {
		t.Errorf("expected re-attached node to rejoin the identifier space, got %v", got)
	}

	if got := doc.Owner(""); got != nil {
		t.Errorf("expected empty identifier to have no owner, got %v", got)
	}
}

func TestAppendChildReparents(t *testing.T) {
	doc := New(Doctype{Name: "html"})
	a := doc.Root().AppendChild(NewNode("group"))
	b := doc.Root().AppendChild(NewNode("group"))
	child := a.AppendChild(NewNode("text"))

	b.AppendChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("expected old parent to lose the child, still has %d", len(a.Children()))
	}
	if child.Parent() != types.Entity(b) {
		t.Errorf("expected new parent to be b, got %v", child.Parent())
	}
	if child.Document() != types.Document(doc) {
		t.Errorf("expected child to stay in the document")
	}
}

func TestLabels(t *testing.T) {
	doc := New(Doctype{Name: "html"})
	form := doc.Root().AppendChild(NewNode("form"))
	field := form.AppendChild(NewNode("text"))
	field.SetID("username")

	first := form.AppendChild(NewNode("label"))
	first.SetFor("username")
	second := form.AppendChild(NewNode("label"))
	second.SetFor("username")
	other := form.AppendChild(NewNode("label"))
	other.SetFor("password")

	labels := doc.Labels("username")
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0] != types.Entity(first) || labels[1] != types.Entity(second) {
		t.Errorf("expected labels in document order")
	}

	if got := doc.Labels("missing"); len(got) != 0 {
		t.Errorf("expected no labels for unknown identifier, got %d", len(got))
	}
	if got := doc.Labels(""); got != nil {
		t.Errorf("expected no labels for empty identifier, got %v", got)
	}
}

func TestElementsDocumentOrder(t *testing.T) {
	doc := New(Doctype{Name: "html"})
	form := doc.Root().AppendChild(NewNode("form"))
	form.AppendChild(NewNode("text"))
	group := form.AppendChild(NewNode("group"))
	group.AppendChild(NewNode("radio"))
	form.AppendChild(NewNode("label"))

	var kinds []string
	for _, n := range doc.Elements() {
		kinds = append(kinds, n.Kind())
	}
	want := []string{"form", "text", "group", "radio", "label"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("element order mismatch (-want +got):\n%s", diff)
	}
}
