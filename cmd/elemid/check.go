package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/elemid/document"
	"github.com/docforge/elemid/elemid"
)

var checkCmd = &cobra.Command{
	Use:   "check <document.yaml>",
	Short: "Validate a document and the generation configuration",
	Long:  "Load a YAML document, report its detected schema mode, and verify that the configured separator and fallback token are usable.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	// Constructing a generator runs every eager configuration check.
	if _, err := elemid.New(doc, genOptions()); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	dt := doc.Doctype()
	fmt.Printf("doctype: %s\n", describeDoctype(dt))
	fmt.Printf("mode: %s\n", doc.Mode())
	fmt.Printf("elements: %d\n", len(doc.Elements()))
	fmt.Println("configuration ok")
	return nil
}

func describeDoctype(dt document.Doctype) string {
	if dt.Name == "" {
		return "(none)"
	}
	out := dt.Name
	if dt.PublicID != "" {
		out += fmt.Sprintf(" PUBLIC %q", dt.PublicID)
	}
	if dt.SystemID != "" {
		out += fmt.Sprintf(" SYSTEM %q", dt.SystemID)
	}
	return out
}
