package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// ControlsConfig maps each action to the logical key codes that assert it.
// Codes are device independent strings; keyboard codes follow the
// KeyboardEvent.code naming ("ArrowLeft", "KeyA", "Space") and gamepad
// buttons use a "Pad" prefix.
type ControlsConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Jump    []string `yaml:"jump"`
	Dash    []string `yaml:"dash"`
	Restart []string `yaml:"restart"`

	// Left stick travel (0..1) before it counts as a direction.
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
}

// Controls is the global control mapping
var Controls ControlsConfig

// Group returns the codes bound to an action.
func (c ControlsConfig) Group(action ActionID) []string {
	switch action {
	case ActionMoveLeft:
		return c.Left
	case ActionMoveRight:
		return c.Right
	case ActionMoveUp:
		return c.Up
	case ActionMoveDown:
		return c.Down
	case ActionJump:
		return c.Jump
	case ActionDash:
		return c.Dash
	case ActionRestart:
		return c.Restart
	}
	return nil
}

func defaultControls() ControlsConfig {
	return ControlsConfig{
		Left:    []string{"ArrowLeft", "KeyA", "PadLeft"},
		Right:   []string{"ArrowRight", "KeyD", "PadRight"},
		Up:      []string{"ArrowUp", "KeyW", "PadUp"},
		Down:    []string{"ArrowDown", "KeyS", "PadDown"},
		Jump:    []string{"Space", "KeyZ", "KeyC", "PadSouth"},
		Dash:    []string{"KeyX", "ShiftLeft", "ShiftRight", "PadWest"},
		Restart: []string{"KeyR", "Enter", "PadStart"},

		AnalogDeadzone: 0.35,
	}
}
