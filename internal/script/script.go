package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"marios/internal/wm"
)

var (
	// ErrInvalidStep is returned for a step that names zero or several actions.
	ErrInvalidStep = errors.New("invalid step")
	// ErrExpectationFailed is returned when an expect step does not match.
	ErrExpectationFailed = errors.New("expectation failed")
)

// Script is a recorded sequence of desktop input.
//
//	name: open about and cycle
//	viewport: {width: 120, height: 40}
//	steps:
//	  - click: about
//	  - key: alt+tab
//	  - press: {x: 15, y: 4}
//	  - move: {x: 30, y: 10}
//	  - release: true
//	  - expect: {active: terminal-main}
type Script struct {
	Name     string  `yaml:"name,omitempty"`
	Viewport wm.Size `yaml:"viewport,omitempty"`
	Mobile   bool    `yaml:"mobile,omitempty"`
	Strict   bool    `yaml:"strict,omitempty"`
	Steps    []Step  `yaml:"steps"`
}

// Step is one input event or one expectation.
type Step struct {
	// Click taps a launcher.
	Click string `yaml:"click,omitempty"`
	// ClickAt clicks whatever is at the point, e.g. a title bar button.
	ClickAt *wm.Point `yaml:"clickAt,omitempty"`
	// Key presses a key combination such as "alt+tab".
	Key string `yaml:"key,omitempty"`
	// Press pushes the pointer button down at the point.
	Press *wm.Point `yaml:"press,omitempty"`
	// Move moves the pointer.
	Move *wm.Point `yaml:"move,omitempty"`
	// Release lets the pointer button go.
	Release bool `yaml:"release,omitempty"`
	// Control presses a title bar button by name.
	Control *ControlStep `yaml:"control,omitempty"`
	// Resize changes the viewport.
	Resize *wm.Size `yaml:"resize,omitempty"`
	// Orientation flips the device orientation.
	Orientation bool `yaml:"orientation,omitempty"`
	// Expect checks the state instead of sending input.
	Expect *Expectation `yaml:"expect,omitempty"`
}

// ControlStep names a window and one of minimize, maximize or close.
type ControlStep struct {
	Window string `yaml:"window"`
	Action string `yaml:"action"`
}

// Load reads a script from a YAML file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Apply sets the script's viewport and device overrides on opts.
func (s Script) Apply(opts wm.Options) wm.Options {
	if s.Viewport != (wm.Size{}) {
		opts.Viewport = s.Viewport
	}
	if s.Mobile {
		opts.Hints.ForceMobile = true
	}
	if s.Strict {
		opts.Strict = true
	}
	return opts
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Click != "",
		s.ClickAt != nil,
		s.Key != "",
		s.Press != nil,
		s.Move != nil,
		s.Release,
		s.Control != nil,
		s.Resize != nil,
		s.Orientation,
		s.Expect != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s Step) validate() error {
	if n := s.actions(); n != 1 {
		return fmt.Errorf("%w: expected exactly one action, got %d", ErrInvalidStep, n)
	}
	if s.Key != "" {
		if _, err := wm.ParseKey(s.Key); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
	}
	if s.Control != nil {
		if _, err := parseControl(s.Control.Action); err != nil {
			return err
		}
	}
	return nil
}

// String describes the step for trace output.
func (s Step) String() string {
	switch {
	case s.Click != "":
		return "click " + s.Click
	case s.ClickAt != nil:
		return fmt.Sprintf("click at %d,%d", s.ClickAt.X, s.ClickAt.Y)
	case s.Key != "":
		return "key " + s.Key
	case s.Press != nil:
		return fmt.Sprintf("press %d,%d", s.Press.X, s.Press.Y)
	case s.Move != nil:
		return fmt.Sprintf("move %d,%d", s.Move.X, s.Move.Y)
	case s.Release:
		return "release"
	case s.Control != nil:
		return s.Control.Action + " " + s.Control.Window
	case s.Resize != nil:
		return fmt.Sprintf("resize %dx%d", s.Resize.W, s.Resize.H)
	case s.Orientation:
		return "orientation change"
	case s.Expect != nil:
		return "expect"
	}
	return "empty step"
}

func parseControl(action string) (wm.Control, error) {
	for _, c := range []wm.Control{wm.ControlMinimize, wm.ControlMaximize, wm.ControlClose} {
		if c.String() == action {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown control %q", ErrInvalidStep, action)
}
