package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tuning is the on-disk layout of a tuning overlay. Every section is
// optional; keys that are absent keep their current value.
type tuning struct {
	Physics     *PhysicsConfig     `yaml:"physics"`
	Player      *PlayerConfig      `yaml:"player"`
	Pickup      *PickupConfig      `yaml:"pickup"`
	Camera      *CameraConfig      `yaml:"camera"`
	ScreenShake *ScreenShakeConfig `yaml:"screen_shake"`
	Particles   *ParticleConfig    `yaml:"particles"`
	Run         *RunConfig         `yaml:"run"`
	Controls    *ControlsConfig    `yaml:"controls"`
}

// Load overlays a YAML tuning file onto the current configuration.
// Search order: customPath -> ~/.summit/tuning.yaml -> built-in defaults.
// It returns the path that was applied, or "" when only defaults are in use.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := Apply(data); err != nil {
				return "", fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return userCfgPath, nil
		}
	}

	return "", nil
}

// Apply overlays a YAML document onto the current configuration. Unknown keys
// are rejected and nothing is changed when the document fails to decode.
func Apply(data []byte) error {
	physics, player, pickup, camera := Physics, Player, Pickup, Camera
	shake, particles, run, controls := ScreenShake, Particles, Run, Controls

	doc := tuning{
		Physics:     &physics,
		Player:      &player,
		Pickup:      &pickup,
		Camera:      &camera,
		ScreenShake: &shake,
		Particles:   &particles,
		Run:         &run,
		Controls:    &controls,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if physics.MaxDashes < 0 {
		return fmt.Errorf("physics.max_dashes must not be negative, got %d", physics.MaxDashes)
	}
	if run.FrameClamp <= 0 {
		return fmt.Errorf("run.frame_clamp must be positive, got %g", run.FrameClamp)
	}

	Physics, Player, Pickup, Camera = physics, player, pickup, camera
	ScreenShake, Particles, Run, Controls = shake, particles, run, controls
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".summit", filename)
}
