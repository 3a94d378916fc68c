package sfx

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/summit/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a single oscillator gliding linearly from one frequency to another
// while fading out.
type sweep struct {
	tone     cfg.Tone
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

func newSweep(t cfg.Tone, rate beep.SampleRate) *sweep {
	return &sweep{
		tone:  t,
		rate:  rate,
		total: rate.N(time.Duration(t.Duration * float64(time.Second))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.tone.StartHz + (s.tone.EndHz-s.tone.StartHz)*progress

		var val float64
		if s.tone.Square {
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		} else {
			val = math.Sin(2 * math.Pi * s.phase)
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Streamer returns a beep streamer that plays t at the given volume.
func Streamer(t cfg.Tone, rate int, volume float64) beep.Streamer {
	return gain(newSweep(t, beep.SampleRate(rate)), t.Volume*volume)
}

// math.Log2(0) is -Inf, so silence gets its own flag.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PCM drains s into interleaved 16-bit little endian stereo samples, the
// layout ebiten's audio players consume.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Synthesize renders the tone for id at the given volume.
func Synthesize(id cfg.SoundID, volume float64) []byte {
	t, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil
	}
	return PCM(Streamer(t, cfg.Audio.SampleRate, volume))
}
