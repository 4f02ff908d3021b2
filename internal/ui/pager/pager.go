// Package pager shows long text full-screen in the ov pager, handing the
// terminal over from Bubble Tea for the duration.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ErrNoProgram is returned when the pager is used before SetProgram
var ErrNoProgram = errors.New("program not set")

// Terminal is the part of *tea.Program the pager needs
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Pager runs ov over the Bubble Tea program's terminal
type Pager struct {
	term Terminal
	run  func(r io.Reader) error
}

// New creates a pager. SetProgram must be called before Show.
func New() *Pager {
	return &Pager{run: runOviewer}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(prog *tea.Program) {
	if prog == nil {
		p.term = nil
		return
	}
	p.term = prog
}

// SetTerminal is SetProgram for anything that can release the terminal
func (p *Pager) SetTerminal(t Terminal) { p.term = t }

// Show displays content until the user quits the pager
func (p *Pager) Show(content string) error {
	if p.term == nil {
		return ErrNoProgram
	}

	// Release terminal control to run ov
	if err := p.term.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.term.RestoreTerminal()
	}()

	return p.run(strings.NewReader(content))
}

// Cmd wraps Show for use from Update. The result arrives as ClosedMsg.
func (p *Pager) Cmd(content string) tea.Cmd {
	return func() tea.Msg {
		return ClosedMsg{Err: p.Show(content)}
	}
}

// ClosedMsg is sent when the pager exits
type ClosedMsg struct {
	Err error
}

func runOviewer(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return runLess(r, err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// runLess is used when ov cannot start, e.g. on terminals tcell does not know
func runLess(r io.Reader, cause error) error {
	if _, err := exec.LookPath("less"); err != nil {
		return fmt.Errorf("ov failed (%v) and less not found in PATH", cause)
	}
	lessCmd := exec.Command("less", "-R")
	lessCmd.Stdin = r
	lessCmd.Stdout = os.Stdout
	lessCmd.Stderr = os.Stderr
	return lessCmd.Run()
}
