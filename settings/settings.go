// Package settings persists player preferences between sessions.
package settings

import (
	"encoding/json"
	"slices"

	cfg "github.com/automoto/summit/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Saved is the settings document stored on disk.
type Saved struct {
	Scale       int     `json:"scale"`
	SFXVolume   float64 `json:"sfxVolume"`
	ScreenShake bool    `json:"screenShake"`
	Fullscreen  bool    `json:"fullscreen"`
	BestTime    float64 `json:"bestTime,omitempty"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Saved {
	return Saved{
		Scale:       cfg.Settings.DefaultScale,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		ScreenShake: true,
	}
}

// Normalize clamps out of range values back into the allowed choices.
func (s *Saved) Normalize() {
	if !slices.Contains(cfg.Settings.Scales, s.Scale) {
		s.Scale = cfg.Settings.DefaultScale
	}
	s.SFXVolume = min(max(s.SFXVolume, 0), 1)
	if s.BestTime < 0 {
		s.BestTime = 0
	}
}

// NextVolume steps to the next volume choice, wrapping around.
func (s *Saved) NextVolume() {
	steps := cfg.Settings.VolumeSteps
	for i, v := range steps {
		if v > s.SFXVolume+1e-9 {
			s.SFXVolume = steps[i]
			return
		}
	}
	s.SFXVolume = steps[0]
}

// RecordTime keeps t if it beats the stored best. It reports whether it did.
func (s *Saved) RecordTime(t float64) bool {
	if t <= 0 || (s.BestTime > 0 && t >= s.BestTime) {
		return false
	}
	s.BestTime = t
	return true
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Saved. A Store without a backend keeps everything
// in memory, so a missing data directory never blocks play.
type Store struct {
	items  itemStore
	logger *log.Logger
}

// Open opens the per-user data directory for the app.
func Open(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	m, err := gdata.Open(gdata.Config{AppName: cfg.Settings.AppName})
	if err != nil {
		logger.Warn("settings persistence unavailable", "err", err)
		return &Store{logger: logger}
	}
	return &Store{items: m, logger: logger}
}

// Load returns the saved settings, or Defaults when none are stored or the
// stored document cannot be read.
func (s *Store) Load() Saved {
	saved := Defaults()
	if s.items == nil {
		return saved
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		s.logger.Warn("could not load settings", "err", err)
		return saved
	}
	if len(data) == 0 {
		return saved
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("could not parse saved settings", "err", err)
		return Defaults()
	}
	saved.Normalize()
	return saved
}

// Save writes the settings.
func (s *Store) Save(saved Saved) error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		s.logger.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}
