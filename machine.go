package automata

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Automaton is a registry of named states with a pointer to the active one.
// It only moves when a behavior (or the caller) calls ChangeState.
type Automaton struct {
	id      string
	states  map[string]*State
	current string
	mu      sync.RWMutex

	strictTransitions  bool
	strictRegistration bool

	logger              *slog.Logger
	stateChangeCallback func(from, to string)
}

// Option is a functional option for configuring an Automaton
type Option func(*Automaton)

// WithLogger sets the logger for the automaton
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStrictTransitions makes ChangeState reject targets that the current
// state does not list as allowed
func WithStrictTransitions() Option {
	return func(a *Automaton) {
		a.strictTransitions = true
	}
}

// WithStrictRegistration makes AddState fail on duplicate names instead of
// replacing the earlier state
func WithStrictRegistration() Option {
	return func(a *Automaton) {
		a.strictRegistration = true
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(from, to string)) Option {
	return func(a *Automaton) {
		a.stateChangeCallback = fn
	}
}

// New creates an empty automaton. Its current state is DefaultState, so it
// becomes ready as soon as a default is set.
func New(opts ...Option) *Automaton {
	a := &Automaton{
		id:      uuid.New().String(),
		states:  make(map[string]*State),
		current: DefaultState,
		logger:  Logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("automaton", a.id)
	return a
}

// ID returns the unique identifier of this automaton
func (a *Automaton) ID() string {
	return a.id
}

// OnStateChange sets a callback invoked after each state change
func (a *Automaton) OnStateChange(fn func(from, to string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stateChangeCallback = fn
}

// AddState inserts s under its name. An existing state with the same name
// is replaced unless strict registration is enabled.
func (a *Automaton) AddState(s *State) error {
	if s == nil || s.name == "" {
		return ErrInvalidState
	}
	if s.name == DefaultState {
		return ErrReservedName
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if old, exists := a.states[s.name]; exists {
		if a.strictRegistration {
			return &DuplicateStateError{Name: s.name}
		}
		a.logger.Debug("replacing state", "state", s.name)
		// The default alias follows the replacement
		if a.states[DefaultState] == old {
			a.states[DefaultState] = s
		}
	}
	a.states[s.name] = s
	a.logger.Debug("added state", "state", s.name, "allowed", s.allowed)
	return nil
}

// SetDefault aliases DefaultState to the already registered state name.
// Passing DefaultState itself is a no-op once a default is set.
func (a *Automaton) SetDefault(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.states[name]
	if !ok {
		return &UnknownStateError{Name: name}
	}
	a.states[DefaultState] = s
	a.logger.Debug("set default state", "state", name)
	return nil
}

// Default returns the state aliased by DefaultState
func (a *Automaton) Default() (*State, bool) {
	return a.State(DefaultState)
}

// State looks up a registered state by name
func (a *Automaton) State(name string) (*State, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.states[name]
	return s, ok
}

// States returns the sorted names of all registered states, without the
// default alias
func (a *Automaton) States() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.states))
	for name := range a.states {
		if name == DefaultState {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the name of the active state
func (a *Automaton) Current() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// ChangeState points the automaton at name. The name is not checked against
// the registry; an unknown name only fails on the next Trigger. With strict
// transitions, name must be declared by the current state.
func (a *Automaton) ChangeState(name string) error {
	a.mu.Lock()
	from := a.current

	if a.strictTransitions {
		if s, ok := a.states[from]; ok && !s.Permits(name) {
			a.mu.Unlock()
			a.logger.Debug("rejected transition", "from", from, "to", name)
			return &IllegalTransitionError{From: from, To: name, Allowed: s.Allowed()}
		}
	}

	a.current = name
	callback := a.stateChangeCallback
	a.mu.Unlock()

	a.logger.Debug("changed state", "from", from, "to", name)

	if callback != nil && from != name {
		callback(from, name)
	}
	return nil
}

// MustChangeState is like ChangeState but panics on error
func (a *Automaton) MustChangeState(name string) {
	if err := a.ChangeState(name); err != nil {
		panic(err)
	}
}

// Reset points the automaton back at its default state
func (a *Automaton) Reset() error {
	a.mu.Lock()
	if _, ok := a.states[DefaultState]; !ok {
		a.mu.Unlock()
		return &UnknownStateError{Name: DefaultState}
	}
	from := a.current
	a.current = DefaultState
	callback := a.stateChangeCallback
	a.mu.Unlock()

	a.logger.Debug("reset state", "from", from)

	if callback != nil && from != DefaultState {
		callback(from, DefaultState)
	}
	return nil
}

// Trigger executes the behavior of the current state once. The lock is not
// held while the behavior runs, so it may call back into the automaton.
func (a *Automaton) Trigger() error {
	a.mu.RLock()
	name := a.current
	s, ok := a.states[name]
	a.mu.RUnlock()

	if !ok {
		return &UnknownStateError{Name: name}
	}

	a.logger.Debug("triggering state", "state", name, "resolved", s.name)

	if err := s.Execute(); err != nil {
		return fmt.Errorf("state %q: %w", s.name, err)
	}
	return nil
}
