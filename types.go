package automata

import "log/slog"

// DefaultState is the reserved registry key aliasing the initial state
const DefaultState = "DEFAULT"

// Behavior is the function bound to a state. It receives the owning
// Automaton so it can inspect it or change its current state.
type Behavior func(a *Automaton) error

// Logger is the default logger used when none is provided
var Logger = slog.Default()
