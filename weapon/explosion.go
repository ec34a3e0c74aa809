package weapon

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// Blast reports which characters a detonation damaged
type Blast struct {
	PlayerHit bool
	// EnemyHits holds enemy indices in descending order
	EnemyHits []int
}

// Hits returns the total number of characters damaged
func (b Blast) Hits() int {
	n := len(b.EnemyHits)
	if b.PlayerHit {
		n++
	}
	return n
}

// ResolveExplosion damages every character within range that has a clear line to center
// Enemies are walked back to front so callers can remove hits by index in order
func ResolveExplosion(center vmath.Vec2, g *world.Grid, player *core.Actor, enemies []core.Actor, t *parameter.ExplosionTuning) Blast {
	var blast Blast
	if player != nil {
		blast.PlayerHit = applyBlast(center, g, player, t)
	}
	for i := len(enemies) - 1; i >= 0; i-- {
		if applyBlast(center, g, &enemies[i], t) {
			blast.EnemyHits = append(blast.EnemyHits, i)
		}
	}
	return blast
}

func applyBlast(center vmath.Vec2, g *world.Grid, a *core.Actor, t *parameter.ExplosionTuning) bool {
	d := a.Obj.Pos.Sub(center)
	dist := d.Len()
	if dist >= t.Range || !g.RayCast(center, d, true).Full() {
		return false
	}
	damage := t.LowDamage
	if dist <= t.LethalRange {
		damage = t.HighDamage
	}
	a.Health.WeaponDamage(damage, t.Penetration)
	return true
}

// BuildBlastMesh fans MeshRays stop-early casts of length Range around center
// Vertex positions are relative to center; the centre vertex is last
// rng only rotates and jitters texture coordinates, nil disables both
func BuildBlastMesh(center vmath.Vec2, g *world.Grid, t *parameter.ExplosionTuning, rng *rand.Rand) *core.Mesh {
	n := t.MeshRays
	step := 2 * math.Pi / float64(n)

	var offset float64
	if rng != nil {
		offset = rng.Float64() * 2 * math.Pi
	}

	uvCenter := vmath.Vec(0.5, 0.5)
	vertices := make([]core.Vertex, 0, n+1)
	for i := 0; i < n; i++ {
		angle := float64(i) * step
		cast := g.RayCast(center, vmath.AngleToVec(angle).Mul(t.Range), true)
		rel := cast.Point.Sub(center)

		var jitter float64
		if rng != nil {
			jitter = (rng.Float64()*2 - 1) * t.UVJitter
		}
		uvDir := vmath.AngleToVec(angle + offset + jitter)
		vertices = append(vertices, core.Vertex{
			Pos: rel,
			UV:  uvCenter.Add(uvDir.Mul(0.5 * rel.Len() / t.Range)),
		})
	}
	vertices = append(vertices, core.Vertex{UV: uvCenter})

	indices := make([]uint16, 0, 3*n)
	for i := 0; i < n; i++ {
		indices = append(indices, uint16(n), uint16(i), uint16((i+1)%n))
	}

	return &core.Mesh{
		Vertices: vertices,
		Indices:  indices,
		Texture:  parameter.ExplosionTexture,
	}
}
