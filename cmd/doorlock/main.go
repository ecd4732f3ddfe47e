package main

import (
	"fmt"
	"os"

	"github.com/librescoot/automata"
	"github.com/librescoot/automata/graph"
	"github.com/librescoot/automata/internal/doorlock"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "doorlock:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg, os.Stderr)

	opts := []automata.Option{
		automata.WithLogger(logger),
		automata.WithStateChangeCallback(func(from, to string) {
			logger.Info("door state changed", "from", from, "to", to)
		}),
	}
	if cfg.StrictTransitions {
		opts = append(opts, automata.WithStrictTransitions())
	}

	door, err := doorlock.New(os.Stdin, os.Stdout, cfg.PIN, opts...)
	if err != nil {
		return fmt.Errorf("build door: %w", err)
	}

	if cfg.PrintGraph {
		fmt.Println(graph.Mermaid(door.Automaton()))
	}

	return door.Run()
}
