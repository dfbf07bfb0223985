package generator

import "fmt"

// Attribute is a DOT attribute assignment.
type Attribute struct {
	Key   string
	Value string
}

// Style holds the presentation defaults written at the top of every document.
// Attributes are emitted in slice order.
type Style struct {
	// Graph holds graph-level layout attributes (rankdir, splines, fonts...).
	Graph []Attribute
	// Node holds the default node attributes.
	Node []Attribute
	// Edge holds the default edge attributes.
	Edge []Attribute
}

// Attribute kinds accepted by Override.
const (
	KindGraph = "graph"
	KindNode  = "node"
	KindEdge  = "edge"
)

// DefaultStyle returns the standard left-to-right layout.
func DefaultStyle() *Style {
	return &Style{
		Graph: []Attribute{
			{"rankdir", "LR"},
			{"ranksep", "0.8"},
			{"nodesep", "0.6"},
			{"overlap", "false"},
			{"sep", "+16"},
			{"splines", "compound"},
			{"concentrate", "true"},
			{"pad", "0.4,0.4"},
			{"fontname", "Helvetica"},
			{"fontsize", "12"},
		},
		Node: []Attribute{
			{"shape", "Mrecord"},
			{"fontsize", "12"},
			{"fontname", "Helvetica"},
			{"margin", "0.07,0.04"},
			{"penwidth", "1.0"},
		},
		Edge: []Attribute{
			{"arrowsize", "0.8"},
			{"fontsize", "10"},
			{"style", "solid"},
			{"penwidth", "0.9"},
			{"fontname", "Helvetica"},
			{"labelangle", "33"},
			{"labeldistance", "2.0"},
		},
	}
}

// Clone returns a deep copy of the style.
func (s *Style) Clone() *Style {
	return &Style{
		Graph: append([]Attribute(nil), s.Graph...),
		Node:  append([]Attribute(nil), s.Node...),
		Edge:  append([]Attribute(nil), s.Edge...),
	}
}

// Override sets an attribute of the given kind. An existing key keeps its
// position; a new key is appended.
func (s *Style) Override(kind, key, value string) error {
	var attrs *[]Attribute
	switch kind {
	case KindGraph:
		attrs = &s.Graph
	case KindNode:
		attrs = &s.Node
	case KindEdge:
		attrs = &s.Edge
	default:
		return fmt.Errorf("unknown attribute kind %q", kind)
	}

	for i := range *attrs {
		if (*attrs)[i].Key == key {
			(*attrs)[i].Value = value
			return nil
		}
	}
	*attrs = append(*attrs, Attribute{Key: key, Value: value})
	return nil
}
