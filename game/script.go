package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/summit/config"
)

var ErrBadScript = errors.New("bad input script")

var actionNames = map[string]cfg.ActionID{
	"left":    cfg.ActionMoveLeft,
	"right":   cfg.ActionMoveRight,
	"up":      cfg.ActionMoveUp,
	"down":    cfg.ActionMoveDown,
	"jump":    cfg.ActionJump,
	"dash":    cfg.ActionDash,
	"restart": cfg.ActionRestart,
}

// Hold keeps an action down for frames [Start, End).
type Hold struct {
	Action     cfg.ActionID
	Start, End int
}

// Script is scripted input for headless runs.
type Script []Hold

// ParseScript reads a comma separated list of holds. "right:0-120" holds
// right from frame 0 up to frame 120, "jump:30" taps jump on frame 30.
func ParseScript(s string) (Script, error) {
	var script Script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, frames, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%q: missing frames: %w", part, ErrBadScript)
		}
		action, ok := actionNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%q: unknown action %q: %w", part, name, ErrBadScript)
		}

		from, to, isRange := strings.Cut(frames, "-")
		start, err := strconv.Atoi(from)
		if err != nil || start < 0 {
			return nil, fmt.Errorf("%q: bad start frame: %w", part, ErrBadScript)
		}
		end := start + 1
		if isRange {
			end, err = strconv.Atoi(to)
			if err != nil || end <= start {
				return nil, fmt.Errorf("%q: bad end frame: %w", part, ErrBadScript)
			}
		}
		script = append(script, Hold{Action: action, Start: start, End: end})
	}
	return script, nil
}

// Down reports whether action is held on frame.
func (s Script) Down(action cfg.ActionID, frame int) bool {
	for _, h := range s {
		if h.Action == action && frame >= h.Start && frame < h.End {
			return true
		}
	}
	return false
}

// Result summarizes a headless run.
type Result struct {
	Frames    int
	Time      float64
	Won       bool
	Deaths    int
	Collected int
	Total     int
}

// RunScript ticks g for frames frames of dt seconds, pressing and releasing
// the first control bound to each action as the script says. Adjacent holds
// of the same action merge into one press.
func RunScript(g *Game, s Script, frames int, dt float64) Result {
	down := make(map[cfg.ActionID]bool)
	for frame := 0; frame < frames; frame++ {
		for action := cfg.ActionMoveLeft; action < cfg.ActionCount; action++ {
			codes := cfg.Controls.Group(action)
			if len(codes) == 0 {
				continue
			}
			want := s.Down(action, frame)
			if want != down[action] {
				g.SetKeyDown(codes[0], want)
				down[action] = want
			}
		}
		g.Tick(dt, nil)
	}

	return Result{
		Frames:    frames,
		Time:      g.DisplayTime(),
		Won:       g.Won(),
		Deaths:    g.Deaths(),
		Collected: g.Collected(),
		Total:     g.TotalCollectibles(),
	}
}
