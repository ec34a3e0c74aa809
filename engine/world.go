package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/logger"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/weapon"
	"github.com/lixenwraith/tds/world"
)

// Stats counts notable simulation events since the world was created
type Stats struct {
	Ticks       uint64
	Thrown      int
	Detonations int
	Kills       int
	PlayerHits  int
}

// World owns the level state for the duration of every tick: grid, player,
// enemies and live grenades. Grenades are updated in creation order
type World struct {
	Grid     *world.Grid
	Player   core.Actor
	Supply   weapon.Utilities
	Enemies  []core.Actor
	Grenades []*weapon.Grenade
	Stats    Stats

	spawn  world.Spawn
	tuning *parameter.Tuning
	sound  core.SoundPlayer
	rng    *rand.Rand
	held   *weapon.Grenade
	log    *logrus.Entry
}

// NewWorld populates a world from a level; sound may be nil
func NewWorld(level *world.Level, tuning *parameter.Tuning, sound core.SoundPlayer, seed uint64) *World {
	if sound == nil {
		sound = core.SilentPlayer{}
	}
	w := &World{
		Grid:   level.Grid,
		Supply: weapon.Utilities{Grenades: parameter.PlayerStartGrenades},
		spawn:  level.PlayerStart,
		tuning: tuning,
		sound:  sound,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:    logger.Component("world"),
	}
	w.Player = newCharacter(level.PlayerStart, parameter.PlayerArmour)
	for _, s := range level.Enemies {
		w.Enemies = append(w.Enemies, newCharacter(s, parameter.EnemyArmour))
	}
	return w
}

func newCharacter(s world.Spawn, armour float64) core.Actor {
	return core.Actor{
		Obj:    core.Object{Pos: s.Pos, Rot: s.Rot},
		Health: core.Health{HP: parameter.CharacterHealth, Armour: armour},
	}
}

// Tuning returns the constants the world simulates with
func (w *World) Tuning() *parameter.Tuning {
	return w.tuning
}

// Holding reports whether the player has an armed grenade in hand
func (w *World) Holding() bool {
	return w.held != nil
}

// Cock arms a grenade in the player's hand; false when one is already held
// or the supply is empty
func (w *World) Cock() bool {
	if w.held != nil {
		return false
	}
	maker, ok := w.Supply.CockGrenade(w.sound, w.tuning)
	if !ok {
		w.log.Debug("grenade supply empty")
		return false
	}
	g := maker.Make(w.Player.Obj, w.tuning)
	w.Grenades = append(w.Grenades, g)
	w.held = g
	w.play(core.SoundCock)
	w.log.WithField("left", w.Supply.Grenades).Debug("grenade cocked")
	return true
}

// MovePlayer walks the player for one step; dir need not be normalised
func (w *World) MovePlayer(dir vmath.Vec2) {
	w.Player.Obj.MoveOnGrid(dir, parameter.PlayerMoveSpeed, w.tuning.Sim.Delta, w.Grid)
}

// TurnPlayer rotates the player by delta radians
func (w *World) TurnPlayer(delta float64) {
	w.Player.Obj.Rot += delta
}

// Tick advances every grenade by one fixed step
func (w *World) Tick(trigger core.TriggerInput) {
	w.Stats.Ticks++

	live := w.Grenades[:0]
	for _, g := range w.Grenades {
		env := weapon.Env{
			Grid:    w.Grid,
			Player:  &w.Player,
			Enemies: w.Enemies,
			Trigger: trigger,
			Rand:    w.rng,
			DT:      w.tuning.Sim.Delta,
		}
		if g != w.held {
			// Only the grenade in hand listens to the trigger
			env.Trigger = core.HeldTrigger(false)
		}

		switch u := g.Update(&env).(type) {
		case weapon.UpdateNone:
			if u.Bounced {
				w.play(core.SoundBounce)
			}
		case weapon.UpdateThrown:
			w.Stats.Thrown++
			w.releaseHeld(g)
			w.play(core.SoundThrow)
		case weapon.UpdateExplosion:
			w.releaseHeld(g)
			w.explode(g, u.Blast)
		case weapon.UpdateDead:
			continue
		}
		live = append(live, g)
	}
	clear(w.Grenades[len(live):])
	w.Grenades = live

	if w.Player.Health.IsDead() {
		w.respawn()
	}
}

func (w *World) releaseHeld(g *weapon.Grenade) {
	if w.held == g {
		w.held = nil
	}
}

// explode plays the blast and removes enemies it killed
// Hits arrive in descending index order, so deletion never shifts a pending index
func (w *World) explode(g *weapon.Grenade, b weapon.Blast) {
	w.Stats.Detonations++
	w.play(core.SoundExplosion)

	kills := 0
	for _, i := range b.EnemyHits {
		if w.Enemies[i].Health.IsDead() {
			w.Enemies = slices.Delete(w.Enemies, i, i+1)
			kills++
		}
	}
	w.Stats.Kills += kills
	if b.PlayerHit {
		w.Stats.PlayerHits++
	}

	w.log.WithFields(logrus.Fields{
		"pos":    g.Obj.Pos,
		"hits":   b.Hits(),
		"kills":  kills,
		"player": b.PlayerHit,
	}).Info("grenade detonated")
}

func (w *World) respawn() {
	w.log.WithField("pos", w.Player.Obj.Pos).Info("player killed, respawning")
	w.Player = newCharacter(w.spawn, parameter.PlayerArmour)
	w.Supply.Grenades = max(w.Supply.Grenades, parameter.PlayerStartGrenades)
}

func (w *World) play(s core.SoundType) {
	if err := w.sound.Play(s); err != nil {
		w.log.WithError(err).WithField("sound", s.String()).Debug("sound failed")
	}
}

// Drawables lists everything above the grid in draw order
func (w *World) Drawables() []core.Drawable {
	out := make([]core.Drawable, 0, len(w.Enemies)+len(w.Grenades)+1)
	for i := range w.Enemies {
		out = append(out, w.Enemies[i].Obj.Drawable(core.SpriteEnemy))
	}
	out = append(out, w.Player.Obj.Drawable(core.SpritePlayer))
	for _, g := range w.Grenades {
		out = append(out, g.Drawable())
	}
	return out
}

// Level snapshots the world for saving; grenades are transient and omitted
func (w *World) Level() *world.Level {
	l := &world.Level{
		Grid:        w.Grid,
		PlayerStart: world.Spawn{Pos: w.Player.Obj.Pos, Rot: w.Player.Obj.Rot},
	}
	for _, e := range w.Enemies {
		l.Enemies = append(l.Enemies, world.Spawn{Pos: e.Obj.Pos, Rot: e.Obj.Rot})
	}
	return l
}

// AddEnemy places an enemy at pos
func (w *World) AddEnemy(pos vmath.Vec2) {
	w.Enemies = append(w.Enemies, newCharacter(world.Spawn{Pos: pos}, parameter.EnemyArmour))
}
