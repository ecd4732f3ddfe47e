package graph

import (
	"github.com/goccy/go-json"

	"github.com/librescoot/automata"
)

// JSON encodes a snapshot of a
func JSON(a *automata.Automaton) ([]byte, error) {
	return json.Marshal(New(a))
}

// Parse decodes a snapshot produced by JSON
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
