package parameter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is wrapped by every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// GrenadeTuning holds projectile constants
type GrenadeTuning struct {
	Fuse         float64 `toml:"fuse"`
	ThrowSpeed   float64 `toml:"throw_speed"`
	Drag         float64 `toml:"drag"`
	HitRadius    float64 `toml:"hit_radius"`
	HoldDistance float64 `toml:"hold_distance"`
}

// ExplosionTuning holds blast constants
type ExplosionTuning struct {
	Range         float64 `toml:"range"`
	LethalRange   float64 `toml:"lethal_range"`
	HighDamage    float64 `toml:"high_damage"`
	LowDamage     float64 `toml:"low_damage"`
	Penetration   float64 `toml:"penetration"`
	Lifetime      float64 `toml:"lifetime"`
	ExpandingTime float64 `toml:"expanding_time"`
	MeshRays      int     `toml:"mesh_rays"`
	UVJitter      float64 `toml:"uv_jitter"`
}

// SimTuning holds stepping constants
type SimTuning struct {
	Delta      float64 `toml:"delta"`
	MaxCatchUp int     `toml:"max_catch_up"`
}

// Tuning is the substitutable set of physics constants
// Values are passed explicitly so tests can shift thresholds
type Tuning struct {
	Grenade   GrenadeTuning   `toml:"grenade"`
	Explosion ExplosionTuning `toml:"explosion"`
	Sim       SimTuning       `toml:"sim"`
}

// DefaultTuning returns the constants the game ships with
func DefaultTuning() Tuning {
	return Tuning{
		Grenade: GrenadeTuning{
			Fuse:         GrenadeFuse,
			ThrowSpeed:   GrenadeThrowSpeed,
			Drag:         GrenadeDrag,
			HitRadius:    GrenadeHitRadius,
			HoldDistance: GrenadeHoldDistance,
		},
		Explosion: ExplosionTuning{
			Range:         ExplosionRange,
			LethalRange:   ExplosionLethalRange,
			HighDamage:    ExplosionHighDamage,
			LowDamage:     ExplosionLowDamage,
			Penetration:   ExplosionPenetration,
			Lifetime:      ExplosionLifetime,
			ExpandingTime: ExplosionExpandingTime,
			MeshRays:      ExplosionMeshRays,
			UVJitter:      ExplosionUVJitter,
		},
		Sim: SimTuning{
			Delta:      Delta,
			MaxCatchUp: MaxCatchUpTicks,
		},
	}
}

// ParseTuning decodes TOML over the defaults; keys not present keep their default
func ParseTuning(data string) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.Decode(data, &t)
	if err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	return t, finishDecode(t, md)
}

// LoadTuning reads a TOML tuning file
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return t, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, finishDecode(t, md)
}

func finishDecode(t Tuning, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidTuning, strings.Join(keys, ", "))
	}
	return t.Validate()
}

// Validate checks ranges the simulation relies on
func (t Tuning) Validate() error {
	g, e, s := t.Grenade, t.Explosion, t.Sim
	switch {
	case g.Fuse <= 0:
		return fmt.Errorf("%w: grenade.fuse must be positive", ErrInvalidTuning)
	case g.Drag < 0:
		return fmt.Errorf("%w: grenade.drag must not be negative", ErrInvalidTuning)
	case g.HitRadius <= 0:
		return fmt.Errorf("%w: grenade.hit_radius must be positive", ErrInvalidTuning)
	case e.Range <= 0 || e.LethalRange < 0 || e.LethalRange > e.Range:
		return fmt.Errorf("%w: explosion ranges need 0 <= lethal_range <= range, range > 0", ErrInvalidTuning)
	case e.Penetration < 0 || e.Penetration > 1:
		return fmt.Errorf("%w: explosion.penetration must be in [0, 1]", ErrInvalidTuning)
	case e.Lifetime <= 0 || e.ExpandingTime < 0 || e.ExpandingTime >= e.Lifetime:
		return fmt.Errorf("%w: explosion needs 0 <= expanding_time < lifetime", ErrInvalidTuning)
	case e.MeshRays < 3 || e.MeshRays > 1<<16-2:
		return fmt.Errorf("%w: explosion.mesh_rays must be in [3, 65534]", ErrInvalidTuning)
	case s.Delta <= 0:
		return fmt.Errorf("%w: sim.delta must be positive", ErrInvalidTuning)
	case s.MaxCatchUp < 1:
		return fmt.Errorf("%w: sim.max_catch_up must be at least 1", ErrInvalidTuning)
	}
	return nil
}
