package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCock      SoundType = iota // Empty grenade supply click
	SoundExplosion                  // Grenade detonation
	SoundBounce                     // Grenade striking a wall or character
	SoundThrow                      // Grenade released
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundCock:      "cock",
	SoundExplosion: "explosion",
	SoundBounce:    "bounce",
	SoundThrow:     "throw",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundPlayer plays named effects fire-and-forget
// Errors are informational; callers log them and carry on
type SoundPlayer interface {
	Play(SoundType) error
}

// SilentPlayer discards every sound
type SilentPlayer struct{}

// Play implements SoundPlayer
func (SilentPlayer) Play(SoundType) error { return nil }

// TriggerInput reports whether the throw control is currently held
type TriggerInput interface {
	TriggerHeld() bool
}

// HeldTrigger is a fixed TriggerInput
type HeldTrigger bool

// TriggerHeld implements TriggerInput
func (h HeldTrigger) TriggerHeld() bool { return bool(h) }
