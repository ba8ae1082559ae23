package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docforge/elemid/document"
	"github.com/docforge/elemid/elemid"
)

var assignCmd = &cobra.Command{
	Use:   "assign <document.yaml>",
	Short: "Generate identifiers for every element of a document",
	Long:  "Load a YAML document, generate an identifier for each element in document order, and print the assignments. With --write, persist the annotated document back under a file lock.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().BoolVarP(&write, "write", "w", false, "write assigned identifiers back to the document file")
}

func runAssign(cmd *cobra.Command, args []string) error {
	path := args[0]

	if write {
		lock := document.NewFileLock(path)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := lock.Lock(ctx); err != nil {
			return err
		}
		defer func() { _ = lock.Unlock() }()
	}

	doc, err := document.LoadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("document loaded", "path", path, "mode", doc.Mode().String())

	opts := genOptions()
	for _, node := range doc.Elements() {
		// Labels reference identifiers, they do not hold them.
		if node.Kind() == "label" {
			continue
		}
		id, err := elemid.Generate(node, opts)
		if err != nil {
			return fmt.Errorf("failed to generate identifier for %s: %w", nodePath(node), err)
		}
		node.SetID(id)
		fmt.Printf("%s\t%s\n", nodePath(node), id)
	}

	if write {
		if err := doc.SaveFile(path); err != nil {
			return err
		}
		slog.Info("document written", "path", path)
	}
	return nil
}

// nodePath renders a readable location like "form/group[color]/radio".
func nodePath(n *document.Node) string {
	var parts []string
	for e := elemid.Entity(n); e != nil; e = e.Parent() {
		if e.Kind() == "root" {
			break
		}
		part := e.Kind()
		if e.Name() != "" {
			part = fmt.Sprintf("%s[%s]", part, e.Name())
		} else if e.Value() != "" {
			part = fmt.Sprintf("%s[=%s]", part, e.Value())
		}
		parts = append(parts, part)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}
