// Package graph renders the declared transitions of an automaton as
// Mermaid, Graphviz DOT or JSON.
package graph

import (
	"github.com/librescoot/automata"
)

// Node is a registered state
type Node struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Initial     bool   `json:"initial,omitempty"`
}

// Edge is a declared transition. Dangling is set when the target is not a
// registered state.
type Edge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Dangling bool   `json:"dangling,omitempty"`
}

// Graph is a snapshot of the states and declared transitions of an automaton
type Graph struct {
	Current string `json:"current"`
	Initial string `json:"initial,omitempty"`
	Nodes   []Node `json:"nodes"`
	Edges   []Edge `json:"edges"`
}

// New takes a snapshot of a
func New(a *automata.Automaton) *Graph {
	g := &Graph{Current: a.Current()}

	if def, ok := a.Default(); ok {
		g.Initial = def.Name()
	}

	known := make(map[string]bool)
	for _, name := range a.States() {
		s, ok := a.State(name)
		if !ok {
			continue
		}
		known[name] = true
		g.Nodes = append(g.Nodes, Node{
			Name:        name,
			Description: s.Description(),
			Initial:     name == g.Initial,
		})
	}

	for _, t := range a.Transitions() {
		g.Edges = append(g.Edges, Edge{From: t.From, To: t.To, Dangling: !known[t.To]})
	}

	return g
}
