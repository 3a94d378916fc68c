package scenes

import (
	"sort"

	cfg "github.com/automoto/summit/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyCodes names the physical keys the game listens to with the logical
// codes used by the control mapping.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyA:          "KeyA",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyW:          "KeyW",
	ebiten.KeyS:          "KeyS",
	ebiten.KeyZ:          "KeyZ",
	ebiten.KeyC:          "KeyC",
	ebiten.KeyX:          "KeyX",
	ebiten.KeyJ:          "KeyJ",
	ebiten.KeyK:          "KeyK",
	ebiten.KeyR:          "KeyR",
	ebiten.KeySpace:      "Space",
	ebiten.KeyShiftLeft:  "ShiftLeft",
	ebiten.KeyShiftRight: "ShiftRight",
	ebiten.KeyEnter:      "Enter",
}

var padCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftLeft:    "PadLeft",
	ebiten.StandardGamepadButtonLeftRight:   "PadRight",
	ebiten.StandardGamepadButtonLeftTop:     "PadUp",
	ebiten.StandardGamepadButtonLeftBottom:  "PadDown",
	ebiten.StandardGamepadButtonRightBottom: "PadSouth",
	ebiten.StandardGamepadButtonRightLeft:   "PadWest",
	ebiten.StandardGamepadButtonCenterRight: "PadStart",
}

// Devices polls keyboard and gamepads once per frame and reports every
// code whose held state changed since the previous poll.
type Devices struct {
	held       map[string]bool
	gamepadIDs []ebiten.GamepadID
}

func NewDevices() *Devices {
	return &Devices{held: map[string]bool{}}
}

// Poll reads the devices and calls sink for each transition.
func (d *Devices) Poll(sink func(code string, down bool)) {
	current := map[string]bool{}
	for key, code := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			current[code] = true
		}
	}

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for btn, code := range padCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				current[code] = true
			}
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, code := range stickCodes(h, v, cfg.Controls.AnalogDeadzone) {
			current[code] = true
		}
	}

	d.held = transitions(d.held, current, sink)
}

// Release reports every held code as released, e.g. when the window loses
// focus and key-up events would be missed.
func (d *Devices) Release(sink func(code string, down bool)) {
	d.held = transitions(d.held, map[string]bool{}, sink)
}

func stickCodes(h, v, deadzone float64) []string {
	var codes []string
	if h < -deadzone {
		codes = append(codes, "PadLeft")
	}
	if h > deadzone {
		codes = append(codes, "PadRight")
	}
	if v < -deadzone {
		codes = append(codes, "PadUp")
	}
	if v > deadzone {
		codes = append(codes, "PadDown")
	}
	return codes
}

// transitions reports presses then releases between two held sets, each in
// code order, and returns current as the new held set.
func transitions(prev, current map[string]bool, sink func(code string, down bool)) map[string]bool {
	var pressed, released []string
	for code := range current {
		if !prev[code] {
			pressed = append(pressed, code)
		}
	}
	for code := range prev {
		if !current[code] {
			released = append(released, code)
		}
	}
	sort.Strings(pressed)
	sort.Strings(released)
	for _, code := range pressed {
		sink(code, true)
	}
	for _, code := range released {
		sink(code, false)
	}
	return current
}
