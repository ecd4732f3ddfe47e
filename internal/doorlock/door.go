// Package doorlock is a PIN protected door built on an automaton.
package doorlock

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/librescoot/automata"
)

// State names
const (
	Locked   = "locked"
	Unlock   = "unlock"
	Unlocked = "unlocked"
	Lock     = "_lock"
)

// DefaultPIN is used when no PIN is configured
const DefaultPIN = "1234"

// Door reads PIN attempts from in and reports to out
type Door struct {
	fsm *automata.Automaton
	in  *bufio.Reader
	out io.Writer
	pin string
}

// New builds a door starting in the locked state
func New(in io.Reader, out io.Writer, pin string, opts ...automata.Option) (*Door, error) {
	if pin == "" {
		pin = DefaultPIN
	}

	d := &Door{
		fsm: automata.New(opts...),
		in:  bufio.NewReader(in),
		out: out,
		pin: pin,
	}

	if _, err := d.fsm.Register(Locked, []string{Unlock}, d.locked,
		automata.AsDefault(),
		automata.WithStateOptions(automata.WithDescription("door is locked")),
	); err != nil {
		return nil, err
	}
	if _, err := d.fsm.Register(Unlock, []string{Unlocked, Locked}, d.unlock,
		automata.WithStateOptions(automata.WithDescription("waiting for PIN")),
	); err != nil {
		return nil, err
	}
	if _, err := d.fsm.Register(Unlocked, []string{Lock}, d.unlocked,
		automata.WithStateOptions(automata.WithDescription("door is unlocked")),
	); err != nil {
		return nil, err
	}
	if _, err := d.fsm.Register(Lock, []string{Locked}, d.lock,
		automata.WithStateOptions(automata.WithDescription("locking")),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Automaton returns the underlying automaton
func (d *Door) Automaton() *automata.Automaton {
	return d.fsm
}

// Run plays the demo sequence: show the locked door, attempt to unlock it,
// wait for enter, then lock it again.
func (d *Door) Run() error {
	if err := d.fsm.Trigger(); err != nil {
		return err
	}
	if err := d.fsm.ChangeState(Unlock); err != nil {
		return err
	}
	if err := d.fsm.Trigger(); err != nil {
		return err
	}
	if err := d.fsm.Trigger(); err != nil {
		return err
	}

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "press enter to continue...")
	if _, err := d.readLine(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if err := d.fsm.ChangeState(Lock); err != nil {
		if automata.IsIllegalTransitionError(err) {
			fmt.Fprintln(d.out, "The door is not unlocked.")
			return nil
		}
		return err
	}
	if err := d.fsm.Trigger(); err != nil {
		return err
	}
	return d.fsm.Trigger()
}

func (d *Door) locked(*automata.Automaton) error {
	fmt.Fprintln(d.out, "The current state is LOCKED.")
	return nil
}

func (d *Door) unlock(a *automata.Automaton) error {
	fmt.Fprintln(d.out, "You are unlocking. Please enter the PIN.")
	fmt.Fprint(d.out, "PIN: >")

	pin, err := d.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read pin: %w", err)
	}

	if pin == d.pin {
		fmt.Fprintln(d.out, "Correct PIN. Unlocking...")
		return a.ChangeState(Unlocked)
	}
	fmt.Fprintln(d.out, "Incorrect PIN. The state is still LOCKED.")
	return a.ChangeState(Locked)
}

func (d *Door) unlocked(*automata.Automaton) error {
	fmt.Fprintln(d.out, "The state is UNLOCKED.")
	return nil
}

func (d *Door) lock(a *automata.Automaton) error {
	fmt.Fprintln(d.out, "Changing the state to LOCKED...")
	return a.ChangeState(Locked)
}

func (d *Door) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
