package generator

import (
	"github.com/lucasefe/lightmap/markup"
	"github.com/lucasefe/lightmap/schema"
)

const primaryKeyMarker = "*"

// Label renders the HTML-like record label of a table: a bold title followed
// by one row per column, in the order given.
func Label(name string, columns []schema.Column) string {
	return markup.Render(markup.Fragment{
		labelTitle(name),
		markup.Text("|"),
		labelBody(columns),
	})
}

// Bold renders value as bold markup.
func Bold(value string) string {
	return markup.Render(markup.E("b").Append(markup.Text(value)))
}

func labelTitle(name string) markup.Node {
	return markup.E("table", markup.A("border", "0"), markup.A("cellspacing", "0.4")).Append(
		markup.E("tr").Append(
			markup.E("td", markup.A("align", "left"), markup.A("height", "24"), markup.A("valign", "bottom")).Append(
				markup.E("b").Append(markup.Text(name)),
			),
		),
	)
}

func labelBody(columns []schema.Column) markup.Node {
	body := markup.E("table", markup.A("border", "0"), markup.A("cellspacing", "0.4"), markup.A("width", "136"))
	for _, column := range columns {
		body.Append(labelField(column))
	}
	return body
}

func labelField(column schema.Column) markup.Node {
	name := column.Name
	if column.PrimaryKey {
		name += primaryKeyMarker
	}

	return markup.E("tr").Append(
		markup.E("td", markup.A("align", "left")).Append(
			markup.Text(name),
			markup.Text(" "),
			markup.E("b").Append(markup.Text(column.Datatype)),
		),
	)
}
