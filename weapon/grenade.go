package weapon

import (
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/logger"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/physics"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// timeEpsilon absorbs accumulated float error in fuse and age counters
const timeEpsilon = 1e-6

// State is the grenade lifecycle: Armed -> Flying -> Detonated
// Only the types in this package implement it
type State interface {
	grenadeState()
}

// Armed is held by the wielder; Fuse is remaining seconds
type Armed struct{ Fuse float64 }

// Flying is thrown and moving on its own; Fuse is remaining seconds
type Flying struct{ Fuse float64 }

// Detonated lingers for drawing; Mesh is immutable once built
type Detonated struct {
	Age  float64
	Mesh *core.Mesh
}

func (Armed) grenadeState()     {}
func (Flying) grenadeState()    {}
func (Detonated) grenadeState() {}

// Update is the observable outcome of one grenade tick
type Update interface {
	grenadeUpdate()
}

// UpdateNone means nothing the owner must act on; Bounced is set when the
// grenade struck a wall or character this tick
type UpdateNone struct{ Bounced bool }

// UpdateThrown is emitted once, when the trigger is released
type UpdateThrown struct{ Fuse float64 }

// UpdateExplosion is emitted once, on the detonation tick
type UpdateExplosion struct{ Blast Blast }

// UpdateDead means the owner should remove the grenade
type UpdateDead struct{}

func (UpdateNone) grenadeUpdate()      {}
func (UpdateThrown) grenadeUpdate()    {}
func (UpdateExplosion) grenadeUpdate() {}
func (UpdateDead) grenadeUpdate()      {}

// Env is everything a grenade may touch during one tick
// Player is the wielder; Player and Enemies are mutated by blasts
type Env struct {
	Grid    *world.Grid
	Player  *core.Actor
	Enemies []core.Actor
	Trigger core.TriggerInput
	Rand    *rand.Rand
	DT      float64
}

// Grenade is a projectile owning its pose, velocity and lifecycle state
type Grenade struct {
	Obj   core.Object
	Vel   vmath.Vec2
	State State

	tuning *parameter.Tuning
	log    *logrus.Entry
}

// Utilities is a character's throwable supply
type Utilities struct {
	Grenades uint8
}

// GrenadeMaker is a grenade taken from the supply, ready to be armed
type GrenadeMaker struct {
	speed float64
}

// CockGrenade takes one grenade from the supply
// With none left the empty click is played and false returned; sound errors are only logged
func (u *Utilities) CockGrenade(sound core.SoundPlayer, tuning *parameter.Tuning) (GrenadeMaker, bool) {
	if u.Grenades == 0 {
		if sound != nil {
			if err := sound.Play(core.SoundCock); err != nil {
				logger.Component("weapon").WithError(err).Debug("cock sound failed")
			}
		}
		return GrenadeMaker{}, false
	}
	u.Grenades--
	return GrenadeMaker{speed: tuning.Grenade.ThrowSpeed}, true
}

// Make arms a grenade at obj's pose; velocity follows obj's heading and the
// grenade's own rotation starts at 0
func (m GrenadeMaker) Make(obj core.Object, tuning *parameter.Tuning) *Grenade {
	vel := obj.Heading().Mul(m.speed)
	obj.Rot = 0
	return &Grenade{
		Obj:    obj,
		Vel:    vel,
		State:  Armed{Fuse: tuning.Grenade.Fuse},
		tuning: tuning,
		log:    logger.Component("grenade"),
	}
}

// Fuse returns the remaining fuse, false once detonated
func (g *Grenade) Fuse() (float64, bool) {
	switch s := g.State.(type) {
	case Armed:
		return s.Fuse, true
	case Flying:
		return s.Fuse, true
	}
	return 0, false
}

// Update advances the grenade by env.DT
func (g *Grenade) Update(env *Env) Update {
	switch s := g.State.(type) {
	case Armed:
		return g.updateArmed(env, s)
	case Flying:
		return g.updateFlying(env, s)
	case Detonated:
		s.Age += env.DT
		g.State = s
		if s.Age >= g.tuning.Explosion.Lifetime-timeEpsilon {
			return UpdateDead{}
		}
		return UpdateNone{}
	}
	return UpdateNone{}
}

// burn decrements a fuse; a depleted fuse is pinned to exactly 0
func burn(fuse, dt float64) (float64, bool) {
	fuse -= dt
	if fuse <= timeEpsilon {
		return 0, true
	}
	return fuse, false
}

func (g *Grenade) updateArmed(env *Env, s Armed) Update {
	if w := env.Player; w != nil {
		heading := w.Obj.Heading()
		// Held in front of the wielder but never inside a wall
		g.Obj.Pos = env.Grid.RayCast(w.Obj.Pos, heading.Mul(g.tuning.Grenade.HoldDistance), true).Point
		g.Vel = heading.Mul(g.Vel.Len())
	}

	fuse, out := burn(s.Fuse, env.DT)
	if out {
		g.State = Armed{Fuse: 0}
		return g.detonate(env)
	}
	if env.Trigger == nil || !env.Trigger.TriggerHeld() {
		g.State = Flying{Fuse: fuse}
		g.log.WithField("fuse", fuse).Debug("thrown")
		return UpdateThrown{Fuse: fuse}
	}
	g.State = Armed{Fuse: fuse}
	return UpdateNone{}
}

func (g *Grenade) updateFlying(env *Env, s Flying) Update {
	start := g.Obj.Pos
	dpos := physics.Integrate(&g.Vel, g.tuning.Grenade.Drag, env.DT)

	fuse, out := burn(s.Fuse, env.DT)
	if out {
		g.State = Flying{Fuse: 0}
		return g.detonate(env)
	}
	g.State = Flying{Fuse: fuse}

	if g.bounceOffCharacter(env, start, dpos) {
		return UpdateNone{Bounced: true}
	}

	pos, vel, hit := physics.WallBounce(env.Grid, start, dpos, g.Vel)
	g.Obj.Pos, g.Vel = pos, vel
	return UpdateNone{Bounced: hit}
}

// bounceOffCharacter reflects off the first character, player first, whose
// hit circle the travel segment approaches with a clear line from start
func (g *Grenade) bounceOffCharacter(env *Env, start, dpos vmath.Vec2) bool {
	try := func(a *core.Actor) bool {
		b, ok := physics.CircleBounce(start, dpos, g.Vel, a.Obj.Pos, g.tuning.Grenade.HitRadius)
		if !ok || !env.Grid.LineOfSight(start, b.Contact) {
			return false
		}
		g.Vel = b.Vel
		g.Obj.Pos = env.Grid.RayCast(b.Contact, b.Overshoot, true).Point
		return true
	}

	if env.Player != nil && try(env.Player) {
		return true
	}
	for i := range env.Enemies {
		if try(&env.Enemies[i]) {
			return true
		}
	}
	return false
}

func (g *Grenade) detonate(env *Env) Update {
	blast := ResolveExplosion(g.Obj.Pos, env.Grid, env.Player, env.Enemies, &g.tuning.Explosion)
	g.State = Detonated{
		Mesh: BuildBlastMesh(g.Obj.Pos, env.Grid, &g.tuning.Explosion, env.Rand),
	}
	g.log.WithFields(logrus.Fields{
		"pos":     g.Obj.Pos,
		"player":  blast.PlayerHit,
		"enemies": len(blast.EnemyHits),
	}).Debug("detonated")
	return UpdateExplosion{Blast: blast}
}

// Drawable describes the grenade for the renderer
// The blast mesh scales up while expanding, then fades with a cosine tint
func (g *Grenade) Drawable() core.Drawable {
	s, ok := g.State.(Detonated)
	if !ok {
		return g.Obj.Drawable(parameter.GrenadeSprite)
	}

	e := &g.tuning.Explosion
	d := core.Drawable{
		Mesh:  s.Mesh,
		Pos:   g.Obj.Pos,
		Scale: 1,
		Tint:  core.White,
	}
	if s.Age <= e.ExpandingTime {
		d.Scale = s.Age / e.ExpandingTime
	} else {
		c := math.Cos(math.Pi / 2 * (s.Age - e.ExpandingTime) / (e.Lifetime - e.ExpandingTime))
		c = max(c, 0)
		d.Tint = core.Tint{R: c, G: c, B: c, A: 0.5 + 0.5*c}
	}
	return d
}
