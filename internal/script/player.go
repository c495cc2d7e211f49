package script

import (
	"context"
	"fmt"

	"marios/internal/wm"
	"marios/pkg/logging"
)

const subsystem = "Replay"

// Observer is told about every executed step and the state after it.
type Observer func(index int, step Step, snapshot wm.Snapshot)

// Player replays a script against a window manager.
type Player struct {
	m        *wm.Manager
	observer Observer
}

// NewPlayer creates a player for m. observer may be nil.
func NewPlayer(m *wm.Manager, observer Observer) *Player {
	return &Player{m: m, observer: observer}
}

// Run executes every step in order and returns the final state. It stops at
// the first failing step or expectation, or when ctx is done.
func (p *Player) Run(ctx context.Context, s Script) (wm.Snapshot, error) {
	logging.Info(subsystem, "Replaying %q (%d steps)", s.Name, len(s.Steps))
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return p.m.Snapshot(), err
		}
		if err := p.step(step); err != nil {
			return p.m.Snapshot(), fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if p.observer != nil {
			p.observer(i, step, p.m.Snapshot())
		}
	}
	return p.m.Snapshot(), nil
}

func (p *Player) step(s Step) error {
	if s.Expect != nil {
		return s.Expect.Check(p.m.Snapshot())
	}
	ev, err := p.event(s)
	if err != nil {
		return err
	}
	handled, err := p.m.Dispatch(ev)
	if err != nil {
		return err
	}
	if !handled {
		logging.Debug(subsystem, "Step %q was not handled", s)
	}
	return nil
}

// event turns a step into a window manager event. Pointer presses and
// clicks at a point are resolved against the current layout.
func (p *Player) event(s Step) (wm.Event, error) {
	switch {
	case s.Click != "":
		return wm.Click{Target: wm.Target{Kind: wm.TargetLauncher, Launcher: s.Click}}, nil
	case s.ClickAt != nil:
		return wm.Click{Target: p.m.HitTest(*s.ClickAt)}, nil
	case s.Key != "":
		k, err := wm.ParseKey(s.Key)
		if err != nil {
			return nil, err
		}
		return k, nil
	case s.Press != nil:
		return wm.PointerDown{Target: p.m.HitTest(*s.Press), Position: *s.Press}, nil
	case s.Move != nil:
		return wm.PointerMove{Position: *s.Move}, nil
	case s.Release:
		return wm.PointerUp{}, nil
	case s.Control != nil:
		c, err := parseControl(s.Control.Action)
		if err != nil {
			return nil, err
		}
		return wm.Click{Target: wm.Target{Kind: wm.TargetControl, Window: s.Control.Window, Control: c}}, nil
	case s.Resize != nil:
		return wm.Resize{Width: s.Resize.W, Height: s.Resize.H}, nil
	case s.Orientation:
		return wm.OrientationChange{}, nil
	}
	return nil, fmt.Errorf("%w: no action", ErrInvalidStep)
}
