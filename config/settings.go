package config

// SettingsConfig contains the persisted user settings defaults and choices.
type SettingsConfig struct {
	AppName      string
	Scales       []int
	DefaultScale int
	VolumeSteps  []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:      "summit",
		Scales:       []int{1, 2, 3, 4},
		DefaultScale: 2,
		VolumeSteps:  []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
