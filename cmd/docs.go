package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// newDocsCmd is for writing Markdown documentation for every command under root.
func newDocsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown documentation for each command",
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "./docs"
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %v", dir, err)
			}

			order := navOrder(root)
			prepender := func(filename string) string {
				return filePrepender(root.Name(), order, filename)
			}
			links := func(filename string) string {
				return linkHandler(root.Name(), filename)
			}
			return doc.GenMarkdownTreeCustom(root, dir, prepender, links)
		},
	}
}

// navOrder maps each doc page's base name to its position in the navigation,
// ex: "dnakit_gc-content" -> 2
func navOrder(root *cobra.Command) map[string]int {
	order := map[string]int{root.Name(): 0}
	for i, c := range root.Commands() {
		order[root.Name()+"_"+c.Name()] = i
	}
	return order
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(rootName string, order map[string]int, filename string) string {
	base := baseName(filename)
	if base == rootName {
		return fmt.Sprintf(rootDoc, rootName, 0)
	}
	title := strings.TrimPrefix(base, rootName+"_")
	return fmt.Sprintf(childDoc, title, rootName, order[base])
}

// linkHandler returns the URL to a documentation page
func linkHandler(rootName, filename string) string {
	base := baseName(filename)
	if base == rootName {
		return "/"
	}
	return base
}

func baseName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
