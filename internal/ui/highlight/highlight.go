// Package highlight keeps the short-lived "key pressed" flags that drive the
// on-screen key indicators.
package highlight

import (
	"sync"
	"time"
)

// Flag names one on-screen indicator
type Flag int

const (
	Left Flag = iota
	Right
	Center
	Up
	Down
	LeftArrowKey
	RightArrowKey

	flagCount
)

var flagNames = [...]string{"left", "right", "center", "up", "down", "leftArrowKey", "rightArrowKey"}

func (f Flag) String() string {
	if f < 0 || f >= flagCount {
		return "unknown"
	}
	return flagNames[f]
}

// Flags lists every flag in display order
func Flags() []Flag {
	out := make([]Flag, 0, flagCount)
	for f := Flag(0); f < flagCount; f++ {
		out = append(out, f)
	}
	return out
}

// DefaultDuration is how long a pulse keeps its flag on
const DefaultDuration = 200 * time.Millisecond

// Timer is the part of *time.Timer the store needs
type Timer interface {
	Stop() bool
}

// Clock schedules reset callbacks
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock uses time.AfterFunc
var RealClock Clock = realClock{}

// ChangeFunc is called whenever a flag flips. It runs on the caller's
// goroutine for Pulse and on the timer goroutine for resets.
type ChangeFunc func(flag Flag, on bool)

// Snapshot is a copy of every flag
type Snapshot [flagCount]bool

// On reports the state of one flag in the snapshot
func (s Snapshot) On(f Flag) bool {
	if f < 0 || f >= flagCount {
		return false
	}
	return s[f]
}

// Store holds the flags. A pulse turns a flag on and schedules it off after
// the configured duration; pulsing again restarts the countdown.
type Store struct {
	mu       sync.Mutex
	duration time.Duration
	clock    Clock
	onChange ChangeFunc

	on     Snapshot
	timers [flagCount]Timer
	gen    [flagCount]uint64
	closed bool
}

// New creates a store. d <= 0 selects DefaultDuration, a nil clock the real one.
func New(d time.Duration, clock Clock) *Store {
	if d <= 0 {
		d = DefaultDuration
	}
	if clock == nil {
		clock = RealClock
	}
	return &Store{duration: d, clock: clock}
}

// OnChange registers the change callback, replacing any previous one
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Pulse turns flag on and (re)starts its reset countdown
func (s *Store) Pulse(flag Flag) {
	if flag < 0 || flag >= flagCount {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if t := s.timers[flag]; t != nil {
		t.Stop()
	}
	s.gen[flag]++
	gen := s.gen[flag]
	wasOn := s.on[flag]
	s.on[flag] = true
	s.timers[flag] = s.clock.AfterFunc(s.duration, func() { s.expire(flag, gen) })
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil && !wasOn {
		notify(flag, true)
	}
}

// expire resets flag unless a newer pulse superseded the timer that fired
func (s *Store) expire(flag Flag, gen uint64) {
	s.mu.Lock()
	if s.closed || s.gen[flag] != gen {
		s.mu.Unlock()
		return
	}
	s.on[flag] = false
	s.timers[flag] = nil
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(flag, false)
	}
}

// On reports whether flag is currently on
func (s *Store) On(flag Flag) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on.On(flag)
}

// Snapshot returns a copy of every flag
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Close cancels every pending reset. Later pulses and expirations are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for i, t := range s.timers {
		if t != nil {
			t.Stop()
			s.timers[i] = nil
		}
	}
}
