package automata

import "sort"

// Transition is a declared edge between two states. It describes what a
// state allows, not what has happened.
type Transition struct {
	From string
	To   string
}

// Transitions returns every declared edge of the registered states, sorted
// by source then target. The default alias is skipped.
func (a *Automaton) Transitions() []Transition {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var transitions []Transition
	for name, s := range a.states {
		if name == DefaultState {
			continue
		}
		for _, to := range s.allowed {
			transitions = append(transitions, Transition{From: name, To: to})
		}
	}

	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].From != transitions[j].From {
			return transitions[i].From < transitions[j].From
		}
		return transitions[i].To < transitions[j].To
	})
	return transitions
}
