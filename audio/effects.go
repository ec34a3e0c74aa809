package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides exponentially from start to end
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	rate       beep.SampleRate
}

// NewSweep creates a gliding sine, used for the falling explosion rumble
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: start, end: end, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		p := float64(s.position) / float64(s.duration)
		freq := s.start * math.Pow(s.end/s.start, p)
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCockSound generates the dry click of an empty grenade pouch
func CreateCockSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewOscillator(1800, parameter.CockSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(click, parameter.CockSoundDuration, parameter.CockSoundAttack, parameter.CockSoundRelease, rate)

	return newVolume(shaped, 0.3*cfg.EffectVolumes[core.SoundCock]*cfg.MasterVolume)
}

// CreateThrowSound generates a short airy whoosh
func CreateThrowSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ThrowSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ThrowSoundDuration, parameter.ThrowSoundAttack, parameter.ThrowSoundRelease, rate)

	return newVolume(shaped, 0.4*cfg.EffectVolumes[core.SoundThrow]*cfg.MasterVolume)
}

// CreateBounceSound generates a metallic tick
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tick := NewOscillator(640, parameter.BounceSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(tick, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	return newVolume(shaped, 0.5*cfg.EffectVolumes[core.SoundBounce]*cfg.MasterVolume)
}

// CreateExplosionSound layers a noise burst over a falling rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ExplosionSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(2*parameter.ExplosionRumbleFreq, parameter.ExplosionRumbleFreq/2, d, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundExplosion]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil if unknown
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundCock:
		return CreateCockSound(cfg)
	case core.SoundThrow:
		return CreateThrowSound(cfg)
	case core.SoundBounce:
		return CreateBounceSound(cfg)
	case core.SoundExplosion:
		return CreateExplosionSound(cfg)
	default:
		return nil
	}
}
