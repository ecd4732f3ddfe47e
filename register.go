package automata

// RegisterOption configures Register
type RegisterOption func(*registerConfig)

type registerConfig struct {
	asDefault bool
	stateOpts []StateOption
}

// AsDefault also aliases the registered state as DefaultState
func AsDefault() RegisterOption {
	return func(c *registerConfig) {
		c.asDefault = true
	}
}

// WithStateOptions applies additional options to the created state
func WithStateOptions(opts ...StateOption) RegisterOption {
	return func(c *registerConfig) {
		c.stateOpts = append(c.stateOpts, opts...)
	}
}

// Register creates a state named name from behavior and adds it to the
// automaton. The returned function runs the behavior directly with the
// automaton bound, bypassing the current state pointer.
func (a *Automaton) Register(name string, allowed []string, behavior Behavior, opts ...RegisterOption) (func() error, error) {
	cfg := &registerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := NewState(a, name, allowed, behavior, cfg.stateOpts...)
	if err := a.AddState(s); err != nil {
		return nil, err
	}
	if cfg.asDefault {
		if err := a.SetDefault(s.name); err != nil {
			return nil, err
		}
	}

	return s.Execute, nil
}

// MustRegister is like Register but panics on error
func (a *Automaton) MustRegister(name string, allowed []string, behavior Behavior, opts ...RegisterOption) func() error {
	fn, err := a.Register(name, allowed, behavior, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}
