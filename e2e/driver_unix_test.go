//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "coinmind_e2e"

const (
	scrollback  = 1 << 20
	waitTimeout = 3 * time.Second
	pollEvery   = 25 * time.Millisecond
)

const (
	KeyEnter  = "\r"
	KeyCtrlC  = "\x03"
	KeyEscape = "\x1b"
	KeyDown   = "\x1b[B"
)

// ansiRe matches the terminal control sequences bubbletea emits
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// Driver runs coinmind in a pseudo terminal against an isolated home
// directory and records everything it draws.
type Driver struct {
	t       *testing.T
	home    string
	baseURL string

	cmd  *exec.Cmd
	ptmx *os.File

	mu  sync.Mutex
	out []byte
}

// NewDriver creates a driver whose home directory is removed with the test
func NewDriver(t *testing.T) *Driver {
	d := &Driver{t: t, home: t.TempDir()}
	t.Cleanup(d.stop)
	return d
}

// ConfigPath is the config file passed with --config
func (d *Driver) ConfigPath() string { return filepath.Join(d.home, "config.toml") }

// UseBackend points the app at url through --base-url
func (d *Driver) UseBackend(url string) { d.baseURL = url }

// Args builds the command line for a run of the binary
func (d *Driver) Args(extra ...string) []string {
	args := []string{"--config", d.ConfigPath()}
	if d.baseURL != "" {
		args = append(args, "--base-url", d.baseURL)
	}
	return append(args, extra...)
}

// Env is the environment every run of the binary gets
func (d *Driver) Env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+d.home,
		"XDG_CONFIG_HOME="+filepath.Join(d.home, ".config"),
	)
}

// Start launches the app in a 120x40 terminal
func (d *Driver) Start(extra ...string) error {
	d.cmd = exec.Command(binPath, d.Args(extra...)...)
	d.cmd.Env = d.Env()

	ptmx, err := pty.StartWithSize(d.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", binPath, err)
	}
	d.ptmx = ptmx
	go d.record()
	return nil
}

// record appends terminal output until the pty closes, keeping the newest
// scrollback bytes
func (d *Driver) record() {
	chunk := make([]byte, 8192)
	for {
		n, err := d.ptmx.Read(chunk)
		d.mu.Lock()
		d.out = append(d.out, chunk[:n]...)
		if len(d.out) > scrollback {
			d.out = d.out[len(d.out)-scrollback:]
		}
		d.mu.Unlock()
		if err != nil {
			return
		}
	}
}

// Wait blocks until the app exits or timeout passes
func (d *Driver) Wait(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- d.cmd.Wait() }()
	select {
	case err := <-done:
		d.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("app still running after %s", timeout)
	}
}

func (d *Driver) stop() {
	if d.t.Failed() {
		d.saveScreen()
	}
	if d.ptmx != nil {
		_ = d.ptmx.Close()
	}
	if d.cmd != nil && d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
		_, _ = d.cmd.Process.Wait()
	}
}

// saveScreen keeps the last screenful of output next to the test logs
func (d *Driver) saveScreen() {
	s := d.Plain()
	if len(s) > 8192 {
		s = s[len(s)-8192:]
	}
	name := strings.NewReplacer("/", "_", " ", "_").Replace(d.t.Name()) + ".screen.txt"
	path := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		d.t.Logf("could not save screen: %v", err)
		return
	}
	d.t.Logf("screen saved to %s", path)
}

// Raw returns the recorded output including control sequences
func (d *Driver) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.out)
}

// Plain returns the recorded output with control sequences removed
func (d *Driver) Plain() string {
	return ansiRe.ReplaceAllString(d.Raw(), "")
}

// Send writes keys to the terminal
func (d *Driver) Send(keys string) error {
	_, err := d.ptmx.Write([]byte(keys))
	return err
}

func (d *Driver) Enter() error { return d.Send(KeyEnter) }
func (d *Driver) Down() error  { return d.Send(KeyDown) }
func (d *Driver) CtrlC() error { return d.Send(KeyCtrlC) }

// Escape sends Esc and pauses so it is not read as the start of a sequence
func (d *Driver) Escape() error {
	if err := d.Send(KeyEscape); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

// Type sends text one rune at a time
func (d *Driver) Type(text string) error {
	for _, r := range text {
		if err := d.Send(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// Until polls cond until it holds, failing with the screen tail otherwise
func (d *Driver) Until(cond func() bool, what string) error {
	deadline := time.Now().Add(waitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			tail := d.Plain()
			if len(tail) > 2048 {
				tail = tail[len(tail)-2048:]
			}
			return fmt.Errorf("timed out waiting for %s\n--- screen ---\n%s", what, tail)
		}
		time.Sleep(pollEvery)
	}
	return nil
}

// Expect waits until text is on screen
func (d *Driver) Expect(text string) error {
	return d.Until(func() bool {
		return strings.Contains(d.Plain(), text)
	}, fmt.Sprintf("%q", text))
}
