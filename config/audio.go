package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundWallJump
	SoundDash
	SoundLand
	SoundDeath
	SoundBerry
	SoundCrystal
	SoundCheckpoint
	SoundWin
)

// Tone describes a short synthesized sound: a frequency sweep with a linear
// fade out.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64
	Square   bool
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]Tone
}

var Audio AudioConfig

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Tones: map[SoundID]Tone{
			SoundJump:       {StartHz: 420, EndHz: 760, Duration: 0.09, Volume: 0.35, Square: true},
			SoundWallJump:   {StartHz: 380, EndHz: 880, Duration: 0.11, Volume: 0.35, Square: true},
			SoundDash:       {StartHz: 900, EndHz: 260, Duration: 0.14, Volume: 0.3},
			SoundLand:       {StartHz: 140, EndHz: 70, Duration: 0.07, Volume: 0.4},
			SoundDeath:      {StartHz: 520, EndHz: 90, Duration: 0.35, Volume: 0.45, Square: true},
			SoundBerry:      {StartHz: 880, EndHz: 1320, Duration: 0.12, Volume: 0.3},
			SoundCrystal:    {StartHz: 660, EndHz: 1480, Duration: 0.16, Volume: 0.3},
			SoundCheckpoint: {StartHz: 520, EndHz: 1040, Duration: 0.25, Volume: 0.3},
			SoundWin:        {StartHz: 440, EndHz: 1760, Duration: 0.6, Volume: 0.35},
		},
	}
}
