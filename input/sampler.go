// Package input tracks logical key codes reported by device adapters and
// turns them into per-frame control intents.
package input

import "github.com/automoto/summit/config"

// Sampler keeps a press depth per code, so several physical sources mapped to
// the same code (a key and an on-screen button, say) hold it together, and a
// per-frame latch of codes that went from released to held.
type Sampler struct {
	controls config.ControlsConfig
	tracked  map[string]struct{}
	counts   map[string]int
	pressed  map[string]struct{}
}

// NewSampler creates a sampler recognizing the codes bound in controls.
func NewSampler(controls config.ControlsConfig) *Sampler {
	s := &Sampler{
		controls: controls,
		tracked:  make(map[string]struct{}),
		counts:   make(map[string]int),
		pressed:  make(map[string]struct{}),
	}
	for a := config.ActionNone + 1; a < config.ActionCount; a++ {
		for _, code := range controls.Group(a) {
			s.tracked[code] = struct{}{}
		}
	}
	return s
}

// Tracks reports whether code is bound to any action.
func (s *Sampler) Tracks(code string) bool {
	_, ok := s.tracked[code]
	return ok
}

// SetKeyDown records one source asserting or releasing code. Only the
// transition from depth 0 to 1 sets the pressed latch, so a code that is
// already held never re-triggers. Untracked codes are ignored.
func (s *Sampler) SetKeyDown(code string, down bool) {
	if !s.Tracks(code) {
		return
	}
	current := s.counts[code]
	if down {
		s.counts[code] = current + 1
		if current == 0 {
			s.pressed[code] = struct{}{}
		}
		return
	}
	if current <= 1 {
		delete(s.counts, code)
	} else {
		s.counts[code] = current - 1
	}
}

// IsDown reports whether code is currently held by any source.
func (s *Sampler) IsDown(code string) bool {
	return s.counts[code] > 0
}

// WasPressed reports whether code went down since the last EndFrame.
func (s *Sampler) WasPressed(code string) bool {
	_, ok := s.pressed[code]
	return ok
}

// AnyDown reports whether any code in the group is held.
func (s *Sampler) AnyDown(codes []string) bool {
	for _, c := range codes {
		if s.IsDown(c) {
			return true
		}
	}
	return false
}

// AnyPressed reports whether any code in the group went down this frame.
func (s *Sampler) AnyPressed(codes []string) bool {
	for _, c := range codes {
		if s.WasPressed(c) {
			return true
		}
	}
	return false
}

// EndFrame clears the pressed latches. Call it exactly once per frame, after
// update and render.
func (s *Sampler) EndFrame() {
	clear(s.pressed)
}

// Reset drops every hold and latch, as when the window loses focus.
func (s *Sampler) Reset() {
	clear(s.counts)
	clear(s.pressed)
}

// Intent is the control snapshot the simulation consumes each frame.
type Intent struct {
	MoveX          int // -1 left, 1 right
	MoveY          int // -1 up, 1 down
	JumpPressed    bool
	JumpHeld       bool
	DashPressed    bool
	RestartPressed bool
}

// Sample reads the current intent.
func (s *Sampler) Sample() Intent {
	return Intent{
		MoveX:          axis(s.AnyDown(s.controls.Left), s.AnyDown(s.controls.Right)),
		MoveY:          axis(s.AnyDown(s.controls.Up), s.AnyDown(s.controls.Down)),
		JumpPressed:    s.AnyPressed(s.controls.Jump),
		JumpHeld:       s.AnyDown(s.controls.Jump),
		DashPressed:    s.AnyPressed(s.controls.Dash),
		RestartPressed: s.AnyPressed(s.controls.Restart),
	}
}

func axis(neg, pos bool) int {
	v := 0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
