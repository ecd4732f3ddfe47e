package automata

import "slices"

// State binds a name to a behavior and the names it declares as legal
// next states. A State is immutable once created.
type State struct {
	name        string
	allowed     []string
	description string
	behavior    Behavior
	parent      *Automaton
}

// NewState creates a state owned by parent
func NewState(parent *Automaton, name string, allowed []string, behavior Behavior, opts ...StateOption) *State {
	s := &State{
		name:     name,
		allowed:  slices.Clone(allowed),
		behavior: behavior,
		parent:   parent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the registry key of the state
func (s *State) Name() string {
	return s.name
}

// Allowed returns a copy of the declared transition targets
func (s *State) Allowed() []string {
	return slices.Clone(s.allowed)
}

// Description returns the optional human readable description
func (s *State) Description() string {
	return s.description
}

// Permits reports whether name is one of the declared transition targets
func (s *State) Permits(name string) bool {
	return slices.Contains(s.allowed, name)
}

// Execute runs the behavior with the owning automaton
func (s *State) Execute() error {
	if s.behavior == nil {
		return nil
	}
	return s.behavior(s.parent)
}

// StateOption is a functional option for configuring a State
type StateOption func(*State)

// WithAllowed appends declared transition targets
func WithAllowed(names ...string) StateOption {
	return func(s *State) {
		s.allowed = append(s.allowed, names...)
	}
}

// WithDescription sets a description, shown in rendered graphs
func WithDescription(text string) StateOption {
	return func(s *State) {
		s.description = text
	}
}
