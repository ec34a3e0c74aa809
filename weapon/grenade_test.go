package weapon

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

func floorGrid(w, h int) *world.Grid {
	g := world.NewGrid(w, h)
	g.Fill(0, 0, w-1, h-1, world.Floor)
	return g
}

func newActor(pos vmath.Vec2, rot float64) *core.Actor {
	return &core.Actor{
		Obj:    core.Object{Pos: pos, Rot: rot},
		Health: core.NewHealth(0),
	}
}

// trigger is held until releaseTick (1-based), forever when releaseTick <= 0
type trigger struct {
	tick, releaseTick int
}

func (t *trigger) TriggerHeld() bool {
	return t.releaseTick <= 0 || t.tick < t.releaseTick
}

type recordingPlayer struct {
	played []core.SoundType
	err    error
}

func (r *recordingPlayer) Play(s core.SoundType) error {
	r.played = append(r.played, s)
	return r.err
}

func armedGrenade(t *testing.T, wielder *core.Actor, tu *parameter.Tuning) *Grenade {
	t.Helper()
	u := Utilities{Grenades: 1}
	maker, ok := u.CockGrenade(nil, tu)
	if !ok {
		t.Fatal("CockGrenade failed with supply available")
	}
	return maker.Make(wielder.Obj, tu)
}

// runUntilDetonation ticks until an explosion and returns the tick it happened on
func runUntilDetonation(t *testing.T, g *Grenade, env *Env, trig *trigger, maxTicks int) (int, *UpdateThrown) {
	t.Helper()
	var thrown *UpdateThrown
	prevFuse := math.Inf(1)
	for tick := 1; tick <= maxTicks; tick++ {
		if trig != nil {
			trig.tick = tick
		}
		u := g.Update(env)
		switch u := u.(type) {
		case UpdateExplosion:
			if _, ok := g.State.(Detonated); !ok {
				t.Fatalf("tick %d: explosion reported in state %T", tick, g.State)
			}
			return tick, thrown
		case UpdateThrown:
			if thrown != nil {
				t.Fatalf("tick %d: thrown twice", tick)
			}
			thrown = &u
		case UpdateDead:
			t.Fatalf("tick %d: dead before detonation", tick)
		}
		fuse, ok := g.Fuse()
		if !ok {
			t.Fatalf("tick %d: fuse unavailable in state %T", tick, g.State)
		}
		if fuse > prevFuse {
			t.Fatalf("tick %d: fuse rose from %f to %f", tick, prevFuse, fuse)
		}
		prevFuse = fuse
		if g.Obj.IsOnSolid(env.Grid) {
			t.Fatalf("tick %d: grenade at %v inside a solid cell", tick, g.Obj.Pos)
		}
	}
	t.Fatalf("no detonation within %d ticks", maxTicks)
	return 0, nil
}

func TestGrenadeHeldDetonatesAtFuse(t *testing.T) {
	tu := parameter.DefaultTuning()
	grid := floorGrid(20, 20)
	player := newActor(world.CellCenter(10, 10), 0)
	g := armedGrenade(t, player, &tu)

	env := &Env{Grid: grid, Player: player, Trigger: core.HeldTrigger(true), Rand: rand.New(rand.NewPCG(1, 2)), DT: parameter.Delta}
	tick, thrown := runUntilDetonation(t, g, env, nil, 200)
	if tick != 90 {
		t.Errorf("detonated at tick %d (%.4fs), want 90 (1.5s)", tick, float64(tick)*parameter.Delta)
	}
	if thrown != nil {
		t.Error("held grenade reported a throw")
	}
	want := player.Obj.Pos.Add(vmath.Vec(parameter.GrenadeHoldDistance, 0))
	if !g.Obj.Pos.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("held grenade at %v, want %v", g.Obj.Pos, want)
	}
	if !player.Health.IsDead() {
		t.Errorf("wielder at 20 units should take lethal damage, HP %f", player.Health.HP)
	}
}

func TestGrenadeReleasedDetonatesAtFuse(t *testing.T) {
	tu := parameter.DefaultTuning()

	tests := []struct {
		name string
		grid *world.Grid
		pos  vmath.Vec2
		rot  float64
	}{
		{"open field", floorGrid(40, 40), world.CellCenter(20, 20), 0},
		{"bouncing in a box", floorGrid(6, 6), world.CellCenter(3, 3), 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newActor(tt.pos, tt.rot)
			g := armedGrenade(t, player, &tu)
			trig := &trigger{releaseTick: 12}
			env := &Env{Grid: tt.grid, Player: player, Trigger: trig, Rand: rand.New(rand.NewPCG(3, 4)), DT: parameter.Delta}

			tick, thrown := runUntilDetonation(t, g, env, trig, 200)
			if thrown == nil {
				t.Fatal("release was not reported")
			}
			if math.Abs(thrown.Fuse-1.3) > 1e-9 {
				t.Errorf("thrown fuse = %f, want 1.3", thrown.Fuse)
			}
			if tick != 90 {
				t.Errorf("detonated at tick %d, want 90", tick)
			}
		})
	}
}

func TestGrenadeFuseMonotonicRandomThrows(t *testing.T) {
	tu := parameter.DefaultTuning()
	rng := rand.New(rand.NewPCG(9, 9))
	grid := floorGrid(12, 12)
	grid.Fill(5, 2, 5, 8, world.Concrete)

	for i := 0; i < 25; i++ {
		player := newActor(world.CellCenter(2, 5), rng.Float64()*2*math.Pi)
		g := armedGrenade(t, player, &tu)
		trig := &trigger{releaseTick: 1 + rng.IntN(80)}
		enemies := []core.Actor{*newActor(world.CellCenter(8, 5), 0), *newActor(world.CellCenter(3, 9), 0)}
		env := &Env{Grid: grid, Player: player, Enemies: enemies, Trigger: trig, Rand: rng, DT: parameter.Delta}

		if tick, _ := runUntilDetonation(t, g, env, trig, 200); tick != 90 {
			t.Fatalf("throw %d: detonated at tick %d, want 90", i, tick)
		}
	}
}

func TestGrenadeBouncesOffCharacter(t *testing.T) {
	tu := parameter.DefaultTuning()
	grid := floorGrid(20, 20)
	start := world.CellCenter(5, 5)
	target := start.Add(vmath.Vec(20, 0))
	// 600 units/s covers just under 10 units in one tick
	vel := vmath.Vec(600, 0)

	tests := []struct {
		name    string
		player  *core.Actor
		enemies []core.Actor
	}{
		{"player", newActor(target, 0), nil},
		{"enemy", newActor(world.CellCenter(15, 15), 0), []core.Actor{*newActor(target, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GrenadeMaker{speed: 600}.Make(core.NewObject(start), &tu)
			g.State = Flying{Fuse: 1}
			env := &Env{Grid: grid, Player: tt.player, Enemies: tt.enemies, DT: parameter.Delta}

			u := g.Update(env)
			if n, ok := u.(UpdateNone); !ok || !n.Bounced {
				t.Fatalf("update = %#v, want bounce", u)
			}
			if g.Vel[0] >= 0 {
				t.Fatalf("velocity %v not reversed", g.Vel)
			}
			if wantSpeed := vel[0] * (1 - tu.Grenade.Drag*parameter.Delta); math.Abs(g.Vel.Len()-wantSpeed) > 1e-9 {
				t.Errorf("speed %f, want %f preserved by reflection", g.Vel.Len(), wantSpeed)
			}
			if g.Obj.Pos[0] >= target[0] {
				t.Errorf("grenade at %v passed through character at %v", g.Obj.Pos, target)
			}

			// Moving away on the next tick must not catch the same character again
			if u := g.Update(env); u != (UpdateNone{}) {
				t.Errorf("second tick = %#v, want quiet", u)
			}
			if g.Vel[0] >= 0 {
				t.Errorf("velocity flipped back to %v", g.Vel)
			}
		})
	}
}

func TestGrenadeBouncesOffWall(t *testing.T) {
	tu := parameter.DefaultTuning()
	grid := floorGrid(8, 8)
	grid.Insert(4, 2, world.Wall)
	start := world.CellCenter(3, 2)

	g := GrenadeMaker{speed: 1200}.Make(core.NewObject(start), &tu)
	g.State = Flying{Fuse: 1}
	env := &Env{Grid: grid, Player: newActor(world.CellCenter(0, 7), 0), DT: parameter.Delta}

	u := g.Update(env)
	if n, ok := u.(UpdateNone); !ok || !n.Bounced {
		t.Fatalf("update = %#v, want wall bounce", u)
	}
	if g.Vel[0] >= 0 || math.Abs(g.Vel[1]) > 1e-12 {
		t.Errorf("velocity %v, want reversed along x", g.Vel)
	}
	if g.Obj.Pos[0] >= 128 || g.Obj.Pos[0] <= start[0] {
		t.Errorf("pos %v, want between start and wall face", g.Obj.Pos)
	}
	if g.Obj.IsOnSolid(grid) {
		t.Error("grenade inside wall")
	}
}

func TestExplosionExpires(t *testing.T) {
	tu := parameter.DefaultTuning()
	grid := floorGrid(10, 10)
	player := newActor(world.CellCenter(1, 1), 0)
	g := GrenadeMaker{speed: 0}.Make(core.NewObject(world.CellCenter(7, 7)), &tu)
	g.State = Flying{Fuse: parameter.Delta / 2}
	env := &Env{Grid: grid, Player: player, Rand: rand.New(rand.NewPCG(5, 6)), DT: parameter.Delta}

	if _, ok := g.Update(env).(UpdateExplosion); !ok {
		t.Fatalf("expected detonation, state %T", g.State)
	}
	for tick := 1; tick <= 40; tick++ {
		u := g.Update(env)
		if _, dead := u.(UpdateDead); dead {
			if tick != 30 {
				t.Errorf("dead after %d ticks, want 30 (0.5s)", tick)
			}
			return
		}
	}
	t.Fatal("explosion never expired")
}

func TestGrenadeDrawable(t *testing.T) {
	tu := parameter.DefaultTuning()
	g := GrenadeMaker{speed: 620}.Make(core.Object{Pos: vmath.Vec(50, 60), Rot: 1}, &tu)

	d := g.Drawable()
	if d.Sprite != parameter.GrenadeSprite || d.Mesh != nil || d.Rot != 0 {
		t.Errorf("armed drawable = %+v", d)
	}

	mesh := &core.Mesh{}
	tests := []struct {
		age       float64
		wantScale float64
		wantTint  core.Tint
	}{
		{0, 0, core.White},
		{0.05, 0.5, core.White},
		{0.1, 1, core.White},
		{0.3, 1, core.Tint{R: math.Sqrt2 / 2, G: math.Sqrt2 / 2, B: math.Sqrt2 / 2, A: 0.5 + math.Sqrt2/4}},
	}
	for _, tt := range tests {
		g.State = Detonated{Age: tt.age, Mesh: mesh}
		d := g.Drawable()
		if d.Mesh != mesh || d.Pos != g.Obj.Pos {
			t.Errorf("age %f: drawable = %+v", tt.age, d)
		}
		if math.Abs(d.Scale-tt.wantScale) > 1e-9 {
			t.Errorf("age %f: scale %f, want %f", tt.age, d.Scale, tt.wantScale)
		}
		if math.Abs(d.Tint.R-tt.wantTint.R) > 1e-9 || math.Abs(d.Tint.A-tt.wantTint.A) > 1e-9 {
			t.Errorf("age %f: tint %+v, want %+v", tt.age, d.Tint, tt.wantTint)
		}
	}
}

func TestCockGrenade(t *testing.T) {
	tu := parameter.DefaultTuning()
	snd := &recordingPlayer{err: errors.New("no device")}
	u := Utilities{Grenades: 1}

	maker, ok := u.CockGrenade(snd, &tu)
	if !ok || u.Grenades != 0 || len(snd.played) != 0 {
		t.Fatalf("first cock: ok=%v supply=%d sounds=%v", ok, u.Grenades, snd.played)
	}
	g := maker.Make(core.Object{Pos: vmath.Vec(10, 10), Rot: math.Pi / 2}, &tu)
	if math.Abs(g.Vel[0]) > 1e-9 || math.Abs(g.Vel[1]-620) > 1e-9 {
		t.Errorf("Vel = %v, want 620 along heading", g.Vel)
	}
	if g.Obj.Rot != 0 {
		t.Errorf("Rot = %f, want reset to 0", g.Obj.Rot)
	}
	if s, ok := g.State.(Armed); !ok || s.Fuse != 1.5 {
		t.Errorf("State = %#v, want Armed{1.5}", g.State)
	}

	if _, ok := u.CockGrenade(snd, &tu); ok {
		t.Fatal("cocked with empty supply")
	}
	if len(snd.played) != 1 || snd.played[0] != core.SoundCock {
		t.Errorf("played %v, want [cock]", snd.played)
	}
}
