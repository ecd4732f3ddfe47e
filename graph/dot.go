package graph

import (
	"fmt"
	"strings"

	"github.com/librescoot/automata"
)

// DOT renders a as a Graphviz digraph
func DOT(a *automata.Automaton) string {
	return New(a).DOT()
}

// DOT renders the graph as a Graphviz digraph. The current state is filled,
// dangling targets are drawn dashed.
func (g *Graph) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")

	for _, n := range g.Nodes {
		label := escapeLabel(n.Name)
		if n.Description != "" {
			label += "|" + escapeLabel(n.Description)
		}
		attrs := fmt.Sprintf("label=\"%s\"", label)
		if n.Name == g.Current || (g.Current == automata.DefaultState && n.Initial) {
			attrs += ", style=filled"
		}
		sb.WriteString(fmt.Sprintf("\"%s\" [%s];\n", escapeLabel(n.Name), attrs))
	}

	written := make(map[string]bool)
	for _, e := range g.Edges {
		if e.Dangling && !written[e.To] {
			written[e.To] = true
			sb.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\", style=dashed];\n", escapeLabel(e.To), escapeLabel(e.To)))
		}
	}

	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("\"%s\" -> \"%s\";\n", escapeLabel(e.From), escapeLabel(e.To)))
	}

	if g.Initial != "" {
		sb.WriteString(" init [label=\"\", shape=point];\n")
		sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]\n", escapeLabel(g.Initial)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	return strings.ReplaceAll(label, "\"", "\\\"")
}
