package automata

import (
	"fmt"
)

type stateDef struct {
	name     string
	behavior Behavior
	opts     []StateOption
}

// Definition describes the states of an automaton before building it
type Definition struct {
	states       []stateDef
	index        map[string]int
	defaultState string
}

// NewDefinition creates a new automaton definition builder
func NewDefinition() *Definition {
	return &Definition{
		index: make(map[string]int),
	}
}

// State adds a state to the definition. Defining the same name again
// replaces the earlier definition.
func (d *Definition) State(name string, behavior Behavior, opts ...StateOption) *Definition {
	def := stateDef{name: name, behavior: behavior, opts: opts}
	if i, ok := d.index[name]; ok {
		d.states[i] = def
		return d
	}
	d.index[name] = len(d.states)
	d.states = append(d.states, def)
	return d
}

// Default sets the state aliased by DefaultState
func (d *Definition) Default(name string) *Definition {
	d.defaultState = name
	return d
}

// Validate checks the definition for errors
func (d *Definition) Validate() error {
	for _, def := range d.states {
		if def.name == "" {
			return ErrInvalidState
		}
		if def.name == DefaultState {
			return ErrReservedName
		}
	}

	if d.defaultState != "" {
		if _, ok := d.index[d.defaultState]; !ok {
			return fmt.Errorf("default state: %w", &UnknownStateError{Name: d.defaultState})
		}
	}

	// Check all declared targets are defined
	for _, def := range d.states {
		probe := NewState(nil, def.name, nil, nil, def.opts...)
		for _, to := range probe.allowed {
			if _, ok := d.index[to]; !ok {
				return fmt.Errorf("state %q allows undefined target: %w", def.name, &UnknownStateError{Name: to})
			}
		}
	}

	return nil
}

// Build creates an Automaton from the definition
func (d *Definition) Build(opts ...Option) (*Automaton, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	a := New(opts...)
	for _, def := range d.states {
		if err := a.AddState(NewState(a, def.name, nil, def.behavior, def.opts...)); err != nil {
			return nil, err
		}
	}

	if d.defaultState != "" {
		if err := a.SetDefault(d.defaultState); err != nil {
			return nil, err
		}
	}

	return a, nil
}
