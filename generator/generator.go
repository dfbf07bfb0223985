// Package generator converts extracted databases to Graphviz DOT documents.
//
// Basic usage:
//
//	output, err := generator.Generate(databases, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(output)
//
// All databases are rendered into a single digraph. Tables become nodes with
// HTML-like record labels and references become edges. Nodes are always
// written before edges, and the output depends only on the order of the
// input slices.
package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasefe/lightmap/schema"
)

const defaultGraphName = "main"

// Generate converts databases into DOT-formatted bytes using style, or
// DefaultStyle when style is nil.
//
// The graph is named after the first database and labelled with its path.
// References to tables that were not extracted are still emitted as edges.
// The error is currently always nil; it is reserved for writers that can fail.
func Generate(dbs []schema.Database, style *Style) ([]byte, error) {
	if style == nil {
		style = DefaultStyle()
	}

	var builder strings.Builder

	name, path := defaultGraphName, ""
	if len(dbs) > 0 {
		name, path = dbs[0].Name, dbs[0].Path
	}

	builder.WriteString(fmt.Sprintf("digraph %s {\n", ID(name)))
	for _, attr := range style.Graph {
		builder.WriteString(fmt.Sprintf("  %s=%s;\n", attr.Key, quote(attr.Value)))
	}
	builder.WriteString(fmt.Sprintf("  label=<%s>;\n", Bold(path)))
	builder.WriteString(fmt.Sprintf("node[%s];\n", attributeList(style.Node)))
	builder.WriteString(fmt.Sprintf("edge[%s];\n", attributeList(style.Edge)))

	for _, db := range dbs {
		for _, table := range db.Tables {
			generateTable(&builder, table)
		}
	}

	for _, db := range dbs {
		for _, ref := range db.References {
			generateReference(&builder, ref)
		}
	}

	builder.WriteString("}\n")

	return []byte(builder.String()), nil
}

// GenerateString is a convenience wrapper that returns the DOT document as a string.
func GenerateString(dbs []schema.Database, style *Style) (string, error) {
	result, err := Generate(dbs, style)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

func generateTable(builder *strings.Builder, table schema.Table) {
	builder.WriteString(fmt.Sprintf("  %s [\n", ID(table.Name)))
	builder.WriteString(fmt.Sprintf("    label=<%s>\n", Label(table.Name, table.Columns)))
	builder.WriteString("  ];\n")
}

func generateReference(builder *strings.Builder, ref schema.Reference) {
	builder.WriteString(fmt.Sprintf("%s->%s[]\n", ID(ref.Source), ID(ref.Sink)))
}

func attributeList(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, quote(attr.Value)))
	}
	return strings.Join(parts, ", ")
}

var plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var keywords = map[string]bool{
	"node":     true,
	"edge":     true,
	"graph":    true,
	"digraph":  true,
	"subgraph": true,
	"strict":   true,
}

// ID returns name as a DOT identifier. Plain names are returned unchanged;
// anything else, including DOT keywords, is quoted.
func ID(name string) string {
	if plainID.MatchString(name) && !keywords[strings.ToLower(name)] {
		return name
	}
	return quote(name)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(value string) string {
	return `"` + quoteEscaper.Replace(value) + `"`
}
