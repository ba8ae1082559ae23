// Package testutil provides the shared fixture document used across package
// tests.
package testutil

import (
	"testing"

	"github.com/docforge/elemid/document"
)

// Universe provides typed access to the fixture document: a strict-mode
// form-like tree with a named text field, an unnamed radio cluster inside a
// named group, and a label.
type Universe struct {
	Doc *document.Document

	Form     *document.Node // container under the root
	Username *document.Node // text field, name "username"
	Password *document.Node // text field, name "password"

	ColorGroup *document.Node // group, name "color"
	RedRadio   *document.Node // unnamed radio, value "red"
	GreenRadio *document.Node // unnamed radio, value "green"

	UsernameLabel *document.Node // label with for="username"
}

// NewUniverse builds the fixture document in strict mode.
func NewUniverse(t *testing.T) *Universe {
	t.Helper()
	return buildUniverse(document.Doctype{Name: "html"})
}

// NewLegacyUniverse builds the same fixture under a legacy doctype.
func NewLegacyUniverse(t *testing.T) *Universe {
	t.Helper()
	return buildUniverse(document.Doctype{
		Name:     "html",
		PublicID: "-//W3C//DTD HTML 4.01//EN",
		SystemID: "http://www.w3.org/TR/html4/strict.dtd",
	})
}

func buildUniverse(doctype document.Doctype) *Universe {
	doc := document.New(doctype)

	form := doc.Root().AppendChild(document.NewNode("form"))

	username := form.AppendChild(document.NewNode("text"))
	username.SetName("username")

	password := form.AppendChild(document.NewNode("text"))
	password.SetName("password")

	colorGroup := form.AppendChild(document.NewNode("group"))
	colorGroup.SetName("color")

	red := colorGroup.AppendChild(document.NewNode("radio"))
	red.SetValue("red")

	green := colorGroup.AppendChild(document.NewNode("radio"))
	green.SetValue("green")

	label := form.AppendChild(document.NewNode("label"))
	label.SetFor("username")

	return &Universe{
		Doc:           doc,
		Form:          form,
		Username:      username,
		Password:      password,
		ColorGroup:    colorGroup,
		RedRadio:      red,
		GreenRadio:    green,
		UsernameLabel: label,
	}
}
