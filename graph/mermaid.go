package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/librescoot/automata"
)

// Mermaid renders a as a Mermaid state diagram
func Mermaid(a *automata.Automaton) string {
	return New(a).Mermaid()
}

// Mermaid renders the graph as a Mermaid state diagram. State names that
// Mermaid cannot use as ids are sanitized, with a numeric suffix when two
// names sanitize to the same id.
func (g *Graph) Mermaid() string {
	ids := g.mermaidIDs()

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	for _, n := range g.Nodes {
		id := ids[n.Name]
		switch {
		case n.Description != "":
			sb.WriteString(fmt.Sprintf("\n\t%s : %s", id, escapeDescription(n.Description)))
		case id != n.Name:
			sb.WriteString(fmt.Sprintf("\n\t%s : %s", id, escapeDescription(n.Name)))
		}
	}

	if g.Initial != "" {
		sb.WriteString(fmt.Sprintf("\n\t[*] --> %s", ids[g.Initial]))
	}

	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("\n\t%s --> %s", ids[e.From], ids[e.To]))
	}

	sb.WriteString("\n")
	return sb.String()
}

// mermaidIDs maps every state name in the graph to a unique Mermaid id
func (g *Graph) mermaidIDs() map[string]string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, n := range g.Nodes {
		add(n.Name)
	}
	for _, e := range g.Edges {
		add(e.From)
		add(e.To)
	}

	ids := make(map[string]string, len(names))
	taken := make(map[string]bool, len(names))

	// Names that need no sanitizing keep their id
	for _, name := range names {
		if sanitizeStateName(name) == name {
			ids[name] = name
			taken[name] = true
		}
	}

	for _, name := range names {
		if _, ok := ids[name]; ok {
			continue
		}
		base := sanitizeStateName(name)
		id := base
		for count := 1; id == "" || taken[id]; count++ {
			id = fmt.Sprintf("%s_%d", base, count)
		}
		ids[name] = id
		taken[id] = true
	}
	return ids
}

// sanitizeStateName removes characters that would cause invalid Mermaid graphs
func sanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// escapeDescription keeps a description on a single line
func escapeDescription(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
