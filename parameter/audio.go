package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Cock Sound (empty grenade supply click)
const (
	CockSoundDuration = 60 * time.Millisecond
	CockSoundAttack   = 2 * time.Millisecond
	CockSoundRelease  = 30 * time.Millisecond
)

// Throw Sound
const (
	ThrowSoundDuration = 120 * time.Millisecond
	ThrowSoundAttack   = 10 * time.Millisecond
	ThrowSoundRelease  = 60 * time.Millisecond
)

// Bounce Sound
const (
	BounceSoundDuration = 50 * time.Millisecond
	BounceSoundAttack   = 1 * time.Millisecond
	BounceSoundRelease  = 35 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 700 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 550 * time.Millisecond
	ExplosionRumbleFreq    = 55.0
)
