package sfx

import (
	"sync"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ebiten allows a single audio context per process.
var (
	globalContext *audio.Context
	contextOnce   sync.Once
)

func audioContext() *audio.Context {
	contextOnce.Do(func() {
		globalContext = audio.NewContext(config.Audio.SampleRate)
	})
	return globalContext
}

// Sound returns the effect played for a gameplay event, or SoundNone.
func Sound(kind systems.EventKind) config.SoundID {
	switch kind {
	case systems.EventJump:
		return config.SoundJump
	case systems.EventWallJump:
		return config.SoundWallJump
	case systems.EventDash:
		return config.SoundDash
	case systems.EventLand:
		return config.SoundLand
	case systems.EventDeath:
		return config.SoundDeath
	case systems.EventBerryCollected:
		return config.SoundBerry
	case systems.EventCrystalUsed:
		return config.SoundCrystal
	case systems.EventCheckpointActivated:
		return config.SoundCheckpoint
	case systems.EventWon:
		return config.SoundWin
	}
	return config.SoundNone
}

// Player turns gameplay events into short synthesized sound effects.
type Player struct {
	volume float64
	cache  map[config.SoundID][]byte
	logger *log.Logger
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{volume: volume, cache: map[config.SoundID][]byte{}, logger: logger}
}

// Volume returns the current effect volume.
func (p *Player) Volume() float64 { return p.volume }

// SetVolume changes the effect volume and drops the rendered samples.
func (p *Player) SetVolume(v float64) {
	if v == p.volume {
		return
	}
	p.volume = v
	clear(p.cache)
}

// Preload renders every configured tone so the first play does not stall.
func (p *Player) Preload() {
	for id := range config.Audio.Tones {
		p.samples(id)
	}
}

// OnEvent plays the sound mapped to ev, if any.
func (p *Player) OnEvent(ev systems.GameEvent) {
	p.Play(Sound(ev.Kind))
}

// Play starts the sound id; overlapping plays mix.
func (p *Player) Play(id config.SoundID) {
	if id == config.SoundNone || p.volume <= 0 {
		return
	}
	pcm := p.samples(id)
	if len(pcm) == 0 {
		return
	}
	player := audioContext().NewPlayerFromBytes(pcm)
	player.Play()
	p.logger.Debug("sfx", "sound", id)
}

func (p *Player) samples(id config.SoundID) []byte {
	if pcm, ok := p.cache[id]; ok {
		return pcm
	}
	pcm := Synthesize(id, p.volume)
	p.cache[id] = pcm
	return pcm
}
